package main

import (
	"log/slog"
	"os"

	"pwaudit/config"
	"pwaudit/internal/domain/service"
	"pwaudit/internal/infra/auth"
	"pwaudit/internal/infra/digest"
	"pwaudit/internal/infra/generator"
	logs "pwaudit/internal/infra/log"
	"pwaudit/internal/infra/pwned"
	"pwaudit/internal/usecase"
	"pwaudit/internal/usecase/impl"

	"github.com/pkg/errors"
)

// app holds the components the subcommands run against.
type app struct {
	breachUC   usecase.BreachUsecase
	passwordUC usecase.PasswordUsecase
	tokenSvc   service.TokenService
}

// loadConfig reads config.yaml when present and falls back to defaults, so
// the CLI works outside the repository.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrConfigNotFound) {
		return nil, err
	}

	cfg = &config.Config{}
	cfg.Env.Log.Level = "warn"
	config.ApplyDefaults(cfg)

	return cfg, nil
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	lookup := pwned.New(pwned.Params{Config: cfg, Logger: logger})
	breachUC := impl.NewBreachService(digest.NewSHA1Digester(), lookup, logger)

	gen, err := generator.NewRandomGenerator(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{
		breachUC:   breachUC,
		passwordUC: impl.NewPasswordService(gen, cfg),
	}

	// Token issuing needs the signing secret; other commands do not.
	if cfg.SecretKey.Access != "" {
		a.tokenSvc, err = auth.NewJWTService(cfg)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Debug("No access secret configured, token command disabled", slog.String("env", cfg.Env.Env))
	}

	return a, nil
}
