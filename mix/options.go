package mix

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvmix/ratio"
	"github.com/katalvlaran/lvmix/schedule"
)

// Option customizes a mix before construction.
type Option func(*config)

// config is the resolved construction input shared by both mix shapes.
type config struct {
	weights        []float64
	maxDenominator int64
	logger         *slog.Logger
}

// WithWeights sets the proportion of each source, in source order. The
// slice is copied. Validation happens in the constructor.
func WithWeights(weights ...float64) Option {
	w := make([]float64, len(weights))
	copy(w, weights)

	return func(c *config) { c.weights = w }
}

// WithMaxDenominator bounds the denominators used to turn float weights into
// integer ratios. Panics if d < 1.
func WithMaxDenominator(d int64) Option {
	if d < 1 {
		panic("mix: WithMaxDenominator(d < 1)")
	}

	return func(c *config) { c.maxDenominator = d }
}

// WithLogger routes Debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mix: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// plan is everything both mix shapes derive from their options.
type plan struct {
	weights []float64
	sched   *schedule.Scheduler
	logger  *slog.Logger
}

// resolve applies opts for n parents and builds the scheduler.
func resolve(n int, opts []Option) (plan, error) {
	cfg := config{maxDenominator: ratio.DefaultMaxDenominator}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	if n == 0 {
		return plan{}, ErrNoSources
	}
	if cfg.weights == nil {
		cfg.weights = make([]float64, n)
		for i := range cfg.weights {
			cfg.weights[i] = 1
		}
	}
	if len(cfg.weights) != n {
		return plan{}, fmt.Errorf("%w: %d weights for %d sources", ErrArityMismatch, len(cfg.weights), n)
	}

	v, err := ratio.Normalize(cfg.weights, cfg.maxDenominator)
	if err != nil {
		return plan{}, err
	}
	sched, err := schedule.New(v)
	if err != nil {
		return plan{}, err
	}

	return plan{weights: cfg.weights, sched: sched, logger: cfg.logger}, nil
}
