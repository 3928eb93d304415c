package main

import (
	"github.com/genricoloni/wallfetch/internal/config"
	"github.com/genricoloni/wallfetch/internal/display"
	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/genricoloni/wallfetch/internal/engine"
	"github.com/genricoloni/wallfetch/internal/executor"
	"github.com/genricoloni/wallfetch/internal/notify"
	"github.com/genricoloni/wallfetch/internal/processor"
	"github.com/genricoloni/wallfetch/internal/store"
	"github.com/genricoloni/wallfetch/internal/supplier"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AppOptions wires every component of a fetch run
func AppOptions(opts Options) fx.Option {
	return fx.Options(
		fx.Supply(opts),

		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		// Provide dependencies
		fx.Provide(
			newLogger,
			func(o Options) *viper.Viper { return config.NewViper(o.ConfigFile) },
			config.Load,
			func(c *config.AppConfig) domain.Config { return c },
			processor.NewConverter,
			fx.Annotate(store.NewFileStore, fx.As(new(domain.Store))),
			fx.Annotate(supplier.NewRandomPicker, fx.As(new(domain.Picker))),
			fx.Annotate(supplier.NewLoader, fx.As(new(domain.SupplierLoader))),
			fx.Annotate(executor.NewExecutor, fx.As(new(domain.Executor))),
			fx.Annotate(notify.NewDesktopNotifier, fx.As(new(domain.Notifier))),
			fx.Annotate(display.NewScreenshotProbe, fx.As(new(domain.ScreenProbe))),
			engine.NewEngine,
		),

		fx.Invoke(applyLogLevel),
	)
}

// newApp builds the graph and fills targets, running only the constructors
// they need
func newApp(opts Options, targets ...any) (*fx.App, error) {
	app := fx.New(
		AppOptions(opts),
		fx.Populate(targets...),
	)
	return app, app.Err()
}

// newLogger creates a new zap logger instance.
// --verbose switches to the development encoder at debug level; --simple
// keeps everything below error out of the terminal.
func newLogger(opts Options) (*zap.Logger, zap.AtomicLevel, error) {
	var cfg zap.Config
	switch {
	case opts.Verbose:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case opts.Simple:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}
	return logger, cfg.Level, nil
}

// applyLogLevel honours log_level from the config unless a flag already
// decided the level
func applyLogLevel(opts Options, level zap.AtomicLevel, cfg *config.AppConfig, logger *zap.Logger) {
	if opts.Verbose || opts.Simple || cfg.LogLevel() == "" {
		return
	}
	parsed, err := zapcore.ParseLevel(cfg.LogLevel())
	if err != nil {
		logger.Warn("Invalid log_level, keeping default", zap.String("log_level", cfg.LogLevel()), zap.Error(err))
		return
	}
	level.SetLevel(parsed)
}
