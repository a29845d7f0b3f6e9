package longrange

import (
	"github.com/go-logr/logr"
	"github.com/hammal/longrange/config"
	"github.com/hammal/longrange/coupling"
	"github.com/hammal/longrange/expfit"
	"github.com/hammal/longrange/logging"
	"github.com/hammal/longrange/signal"
	"github.com/pkg/errors"
)

// Experiment fits the configured decay and derives the couplings of a long
// range Hamiltonian from it.
type Experiment struct {
	cfg    config.Config
	logger logr.Logger
}

// Result of an experiment.
type Result struct {
	Approximation *expfit.Approximation
	Couplings     *coupling.Couplings
}

// NewExperiment validates cfg and returns an experiment logging to logger.
// The configuration is copied.
func NewExperiment(cfg *config.Config, logger logr.Logger) (*Experiment, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return &Experiment{cfg: *cfg, logger: logger}, nil
}

// Setup loads the configuration at path (may be empty), see config.Load, and
// builds a zap logger at the configured level.
func Setup(path string) (*Experiment, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return NewExperiment(cfg, logger)
}

// Config returns a copy of the configuration.
func (e *Experiment) Config() config.Config {
	return e.cfg
}

// Options returns the fit options matching the configuration.
func (e *Experiment) Options() []expfit.Option {
	return []expfit.Option{
		expfit.WithRCond(e.cfg.RCond),
		expfit.WithLstsqRCond(e.cfg.LstsqRCond),
		expfit.WithLogger(e.logger.WithName("expfit")),
	}
}

// Run fits r^(-alpha) and builds the couplings.
func (e *Experiment) Run() (*Result, error) {
	approx, err := expfit.LongRangeCoeffs(signal.PolyDecay, e.cfg.Alpha, e.cfg.Sites, e.cfg.Components, e.Options()...)
	if err != nil {
		return nil, errors.WithMessage(err, "fit")
	}
	couplings, err := coupling.Build(approx, e.cfg.XY, e.cfg.Z)
	if err != nil {
		return nil, errors.WithMessage(err, "couplings")
	}
	e.logger.Info("experiment finished",
		"alpha", e.cfg.Alpha, "sites", e.cfg.Sites, "components", e.cfg.Components,
		"maxError", approx.MaxAbsError(1))
	return &Result{Approximation: approx, Couplings: couplings}, nil
}
