package cmd

import (
	goerrors "errors"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
	"github.com/omnihost-tools/omnihost-ctl/internal/config"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
	"github.com/omnihost-tools/omnihost-ctl/internal/logging"
)

// openStore constructs the store, honoring --config-dir, and warns once
// when the existing file is corrupt (the next mutation will replace it).
func openStore() (*config.Store, error) {
	var s *config.Store
	if configDir != "" {
		s = config.NewStore(configDir)
	} else {
		var err error
		s, err = config.DefaultStore()
		if err != nil {
			return nil, errors.ConfigError("failed to locate config directory", err)
		}
	}

	if _, err := s.Load(); goerrors.Is(err, config.ErrCorrupt) {
		logWarning("Config file %s is corrupt; starting from defaults (next change overwrites it)", s.Path())
		logging.Debug("corrupt config", "path", s.Path(), "error", err)
	}

	return s, nil
}

// recordAudit appends a mutation event to the trail when the
// audit_enabled preference is on. Audit failures are logged, not fatal.
func recordAudit(s *config.Store, eventType audit.EventType, target, details string) {
	if !s.AuditEnabled() {
		return
	}

	logger := audit.NewLogger(s.Dir())
	if err := logger.LogEvent(eventType, target, details); err != nil {
		logging.Debug("failed to record audit event", "type", eventType, "error", err)
	}
}
