package subject

import (
	"sync"

	"golang.org/x/text/language"

	"digital.vasic.truthext/pkg/config"
	"digital.vasic.truthext/pkg/logging"
	"digital.vasic.truthext/pkg/metrics"
	"digital.vasic.truthext/pkg/report"
)

type environment struct {
	logger   logging.Logger
	recorder metrics.Recorder
	reporter report.Reporter
	locale   language.Tag
}

func fromConfig(cfg config.Config) (environment, error) {
	if err := cfg.Validate(); err != nil {
		return environment{}, err
	}
	logger, err := logging.Shared(cfg.Logging)
	if err != nil {
		return environment{}, err
	}
	recorder, err := metrics.New(cfg.Metrics)
	if err != nil {
		return environment{}, err
	}
	reporter, err := report.New(
		report.Format(cfg.Report.Format), cfg.Report.MaxValueLength,
	)
	if err != nil {
		return environment{}, err
	}
	return environment{
		logger:   logger,
		recorder: recorder,
		reporter: reporter,
		locale:   cfg.LocaleTag(),
	}, nil
}

// loadDefaults reads the TRUTHEXT_ environment once. A broken
// environment is reported on stderr and replaced by
// config.Default.
var loadDefaults = sync.OnceValue(func() environment {
	cfg, err := config.FromEnv(config.NewEnvLoader())
	if err == nil {
		var env environment
		if env, err = fromConfig(cfg); err == nil {
			return env
		}
	}
	logging.NewConsoleLogger(nil, logging.LevelWarn).Warn(
		"ignoring truthext environment configuration",
		logging.ErrorField(err),
	)
	env, _ := fromConfig(config.Default())
	return env
})
