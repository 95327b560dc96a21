package solver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bclarenc/garam/logger"
)

// Option defines option for altering the behavior of the solver (Solve()
// method). See the descriptions of functions returning instances of this
// type for implemented options.
type Option func(*Config) error

// Config is the configuration for the solver with the options applied.
type Config struct {
	Logger    zerolog.Logger // defaults to garam logger
	NodeLimit uint64         // maximum number of search nodes, 0 means unlimited
	Deadline  time.Time      // wall-clock cutoff, zero value means none
}

// WithLogger is a solver option that specifies a zerolog.Logger as a
// destination for the solver logs. By default, uses garam/logger.
// zerolog.Nop() will disable logging.
func WithLogger(l zerolog.Logger) Option {
	return func(opt *Config) error {
		opt.Logger = l
		return nil
	}
}

// WithNodeLimit bounds the number of tentative assignments the search may
// explore. When the limit is hit the solve returns StatusTimeout. The search
// space of a Garam puzzle is small, so this is only a guard against
// pathological inputs.
func WithNodeLimit(n uint64) Option {
	return func(opt *Config) error {
		if n == 0 {
			return fmt.Errorf("invalid node limit: %d", n)
		}
		opt.NodeLimit = n
		return nil
	}
}

// WithDeadline sets a wall-clock cutoff for the search, reported as
// StatusTimeout when exceeded.
func WithDeadline(t time.Time) Option {
	return func(opt *Config) error {
		opt.Deadline = t
		return nil
	}
}

// NewConfig returns a default Config with the given options applied.
func NewConfig(opts ...Option) (Config, error) {
	opt := Config{Logger: logger.For("solver")}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return Config{}, err
		}
	}
	return opt, nil
}
