// Package telemetry builds the structured logger every pipeline stage logs
// through. Grounded on noah-isme-sma-adp-api's pkg/logger/logger.go (the
// development/production zap.Config switch, the console/json encoding
// switch, and the ISO8601 timestamp key), with the gin middleware stripped
// — this is a batch CLI, not an HTTP service — and a run_id field from
// google/uuid standing in for that package's per-request request_id.
package telemetry

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls how the logger is built.
type Options struct {
	// Format is "console" or "json"; anything else defaults to "json".
	Format string
	// Development enables zap's development config (caller, stacktrace on
	// warn); the encoding still follows Format.
	Development bool
}

// New builds a zap.Logger and a fresh run ID, logged on every subsequent
// line via With so every message from one invocation of `timetabler run`
// can be correlated in aggregated log output.
func New(opts Options) (*zap.Logger, string, error) {
	var cfg zap.Config
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	switch opts.Format {
	case "console":
		cfg.Encoding = "console"
	default:
		cfg.Encoding = "json"
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := cfg.Build()
	if err != nil {
		return nil, "", err
	}

	runID := uuid.NewString()
	return base.With(zap.String("run_id", runID)), runID, nil
}
