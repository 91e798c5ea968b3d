package config

// DefaultServer returns the configured default server, or "" when none
// is set.
func (s *Store) DefaultServer() string {
	doc, _ := s.Load()
	return doc.DefaultServer
}

// SetDefaultServer sets the server used when a command omits a target.
func (s *Store) SetDefaultServer(server string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.DefaultServer = server
	return s.Save(doc)
}

// OutputMode returns the output mode preference, defaulting to "normal".
func (s *Store) OutputMode() string {
	doc, _ := s.Load()
	if doc.OutputMode == "" {
		return OutputModeNormal
	}
	return doc.OutputMode
}

// SetOutputMode stores the output mode. Values outside
// normal/compact/silent are stored as-is; enforcement is left to the
// front end.
func (s *Store) SetOutputMode(mode string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.OutputMode = mode
	return s.Save(doc)
}

// ParallelConnections returns the fan-out limit preference.
func (s *Store) ParallelConnections() int {
	doc, _ := s.Load()
	if doc.ParallelConnections == 0 {
		return DefaultParallelConnections
	}
	return doc.ParallelConnections
}

// SetParallelConnections stores the fan-out limit preference.
func (s *Store) SetParallelConnections(n int) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.ParallelConnections = n
	return s.Save(doc)
}

// Timeout returns the per-connection timeout preference in seconds.
func (s *Store) Timeout() int {
	doc, _ := s.Load()
	if doc.Timeout == 0 {
		return DefaultTimeout
	}
	return doc.Timeout
}

// SetTimeout stores the per-connection timeout preference in seconds.
func (s *Store) SetTimeout(seconds int) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Timeout = seconds
	return s.Save(doc)
}

// AuditEnabled reports whether mutations should be recorded to the
// audit trail. Defaults to true.
func (s *Store) AuditEnabled() bool {
	doc, _ := s.Load()
	return doc.AuditEnabled
}

// SetAuditEnabled toggles audit trail recording.
func (s *Store) SetAuditEnabled(enabled bool) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.AuditEnabled = enabled
	return s.Save(doc)
}
