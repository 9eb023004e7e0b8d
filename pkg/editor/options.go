package editor

import (
	"log/slog"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
)

// config carries the knobs shared by the editing sessions.
type config struct {
	logger        *slog.Logger
	hooks         domain.LifecycleHooks
	activeState   func() string
	reserved      []string
	forbidden     []string
	maxNameLength int
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:        logging.NewNop(),
		reserved:      DefaultReservedStateNames,
		forbidden:     DefaultForbiddenSubstrings,
		maxNameLength: MaxStateNameLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures an editing session.
type Option func(*config)

// WithLogger configures a logger for session events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers lifecycle callbacks fired on successful commits.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithActiveState injects the accessor for the state the author currently
// has open. New gadget sessions start visible in exactly that state.
func WithActiveState(fn func() string) Option {
	return func(c *config) {
		c.activeState = fn
	}
}

// WithReservedStateNames overrides the reserved-name set (compared
// case-insensitively).
func WithReservedStateNames(names []string) Option {
	return func(c *config) {
		c.reserved = names
	}
}

// WithForbiddenSubstrings overrides the set of character sequences no name
// may contain.
func WithForbiddenSubstrings(subs []string) Option {
	return func(c *config) {
		c.forbidden = subs
	}
}
