// Package errors defines the error type and exit codes for omnihost-ctl.
//
// Commands return an OmniError carrying an exit code; main maps the
// error back to a process exit status via GetExitCode. Plain errors from
// lower layers map to ExitGeneralError.
package errors
