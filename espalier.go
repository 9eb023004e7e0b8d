package espalier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/editor"
	"github.com/aretw0/espalier/pkg/ports"
	"github.com/aretw0/espalier/pkg/registry"
)

// Editor is the high-level entry point for the Espalier library.
// It binds one exploration document to a gadget-type registry and hands out
// editing sessions configured consistently (logger, hooks, naming rules).
type Editor struct {
	exp    *domain.Exploration
	reg    *registry.Registry
	store  ports.ExplorationStore
	id     string
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	reserved  []string
	forbidden []string

	mu     sync.Mutex
	active string
}

// Option defines a functional option for configuring the Editor.
type Option func(*Editor)

// WithLogger configures the logger used by the editor and its sessions.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithHooks registers observability callbacks for commits and renames.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Editor) {
		e.hooks = hooks
	}
}

// WithStore configures save-through persistence for the document under the
// given ID.
func WithStore(store ports.ExplorationStore, id string) Option {
	return func(e *Editor) {
		e.store = store
		e.id = id
	}
}

// WithReservedStateNames overrides the reserved state names (compared
// case-insensitively).
func WithReservedStateNames(names []string) Option {
	return func(e *Editor) {
		e.reserved = names
	}
}

// WithForbiddenSubstrings overrides the character sequences no name may
// contain.
func WithForbiddenSubstrings(subs []string) Option {
	return func(e *Editor) {
		e.forbidden = subs
	}
}

// New creates an Editor over the given exploration and gadget-type
// registry. The active authoring state starts at the exploration's initial
// state.
func New(exp *domain.Exploration, reg *registry.Registry, opts ...Option) *Editor {
	e := &Editor{
		exp:       exp,
		reg:       reg,
		logger:    logging.NewNop(),
		reserved:  editor.DefaultReservedStateNames,
		forbidden: editor.DefaultForbiddenSubstrings,
		active:    exp.InitStateName(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Exploration returns the document under edit.
func (e *Editor) Exploration() *domain.Exploration { return e.exp }

// Registry returns the gadget-type registry.
func (e *Editor) Registry() *registry.Registry { return e.reg }

// ActiveState returns the state the author currently has open.
func (e *Editor) ActiveState() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// SetActiveState switches the author's open state.
// Fails with domain.ErrUnknownState if the name does not resolve.
func (e *Editor) SetActiveState(name string) error {
	if !e.exp.HasState(name) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownState, name)
	}
	e.mu.Lock()
	e.active = name
	e.mu.Unlock()
	return nil
}

// NewGadgetSession opens a session for adding a gadget.
func (e *Editor) NewGadgetSession() *editor.GadgetSession {
	return editor.NewGadgetSession(e.exp, e.reg, e.sessionOptions()...)
}

// EditGadget opens a session preloaded with an existing gadget.
func (e *Editor) EditGadget(name string) (*editor.GadgetSession, error) {
	return editor.EditGadgetSession(e.exp, e.reg, name, e.sessionOptions()...)
}

// StateNameEditor opens a rename session for the named state.
func (e *Editor) StateNameEditor(stateName string) (*editor.StateNameEditor, error) {
	if !e.exp.HasState(stateName) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownState, stateName)
	}
	sne := editor.NewStateNameEditor(e.exp, stateName, e.sessionOptions()...)
	sne.Init()
	return sne, nil
}

// RenameState renames a state through the full validation pipeline,
// returning the refusal reason on failure. The active-state pointer follows
// the rename.
func (e *Editor) RenameState(oldName, newName string) error {
	sne, err := e.StateNameEditor(oldName)
	if err != nil {
		return err
	}
	if err := sne.Validate(newName); err != nil {
		return err
	}
	if !sne.SaveStateName(newName) {
		return fmt.Errorf("state %q was not renamed", oldName)
	}

	e.mu.Lock()
	if e.active == oldName {
		e.active = sne.ActiveState()
	}
	e.mu.Unlock()
	return nil
}

// CommitGadget drives a full add-gadget session in one call: select the
// type, stage the given fields, confirm. Empty name, panel, or visibility
// keep the session defaults (generated name, bottom panel, the active
// state).
func (e *Editor) CommitGadget(typeID, name, panel string, args map[string]any, visibleIn []string) (*domain.Gadget, error) {
	session := e.NewGadgetSession()
	if err := session.SelectGadgetType(typeID); err != nil {
		return nil, err
	}
	if name != "" {
		session.SetName(name)
	}
	if panel != "" {
		if err := session.SetPanel(panel); err != nil {
			return nil, err
		}
	}
	for key, value := range args {
		if err := session.SetArg(key, value); err != nil {
			return nil, err
		}
	}
	if visibleIn != nil {
		if err := setVisibility(session, visibleIn); err != nil {
			return nil, err
		}
	}
	return session.Confirm()
}

// DeleteGadget removes a gadget from the document.
func (e *Editor) DeleteGadget(name string) error {
	if err := e.exp.Gadgets().DeleteGadget(name); err != nil {
		return err
	}
	e.logger.Debug("gadget deleted", "gadget", name)
	if e.hooks.OnGadgetDeleted != nil {
		e.hooks.OnGadgetDeleted(name)
	}
	return nil
}

// Save persists the document through the configured store.
func (e *Editor) Save(ctx context.Context) error {
	if e.store == nil {
		return fmt.Errorf("no exploration store configured")
	}
	if err := e.store.Save(ctx, e.id, e.exp); err != nil {
		return fmt.Errorf("failed to save exploration %q: %w", e.id, err)
	}
	e.logger.Debug("exploration saved", "exploration", e.id)
	return nil
}

func (e *Editor) sessionOptions() []editor.Option {
	return []editor.Option{
		editor.WithLogger(e.logger),
		editor.WithHooks(e.hooks),
		editor.WithActiveState(e.ActiveState),
		editor.WithReservedStateNames(e.reserved),
		editor.WithForbiddenSubstrings(e.forbidden),
	}
}

// setVisibility toggles the session's visibility set until it matches
// exactly the requested states.
func setVisibility(session *editor.GadgetSession, want []string) error {
	wanted := make(map[string]bool, len(want))
	for _, st := range want {
		wanted[st] = true
	}

	for _, st := range session.VisibleStates() {
		if !wanted[st] {
			if err := session.ToggleStateVisibility(st); err != nil {
				return err
			}
		}
	}
	for st := range wanted {
		on := false
		for _, cur := range session.VisibleStates() {
			if cur == st {
				on = true
			}
		}
		if !on {
			if err := session.ToggleStateVisibility(st); err != nil {
				return err
			}
		}
	}
	return nil
}
