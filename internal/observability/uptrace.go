package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/clonkbot/cricket-auction-hub/internal/config"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/logging"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.UptraceServiceName),
		uptrace.WithDeploymentEnvironment(cfg.Env),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.UptraceServiceName,
		"environment", cfg.Env,
	)

	return uptrace.Shutdown, nil
}
