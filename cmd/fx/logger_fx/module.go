package logger_fx

import (
	"tripplanner/internal/config"
	"tripplanner/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(ProvideLogger),
	fx.Invoke(registerLoggerLifecycle),
)

// ProvideLogger builds the application logger and installs it as the zap
// global so package-level helpers log through it too.
func ProvideLogger(cfg config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

func registerLoggerLifecycle(lc fx.Lifecycle, l *zap.Logger) {
	lc.Append(fx.StopHook(func() {
		_ = l.Sync()
	}))
}
