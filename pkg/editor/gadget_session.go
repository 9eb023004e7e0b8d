package editor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/draft"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/aretw0/espalier/pkg/schema"
)

// GadgetSession is the transactional aggregate for one in-progress gadget
// add or edit. The UI mutates its draft fields freely; nothing reaches the
// exploration's gadget collection until Confirm, and Cancel provably leaves
// the document unchanged.
type GadgetSession struct {
	exp   *domain.Exploration
	reg   *registry.Registry
	names *NameRegistry
	cfg   config

	// typeID is the selected gadget type. It is not a draft field:
	// selecting a type restages every other field's displayed value.
	typeID string

	// original is the committed name of the gadget being edited, or ""
	// when the session is adding a new gadget.
	original string

	name    *draft.Field[string]
	args    *draft.Field[map[string]any]
	panel   *draft.Field[string]
	visible *draft.Field[map[string]bool]
}

// NewGadgetSession opens a session for adding a new gadget.
func NewGadgetSession(exp *domain.Exploration, reg *registry.Registry, opts ...Option) *GadgetSession {
	return &GadgetSession{
		exp:     exp,
		reg:     reg,
		names:   NewNameRegistry(exp),
		cfg:     newConfig(opts...),
		name:    draft.New(""),
		args:    draft.New(map[string]any(nil)),
		panel:   draft.New(domain.PanelBottom),
		visible: draft.New(map[string]bool(nil)),
	}
}

// EditGadgetSession opens a session preloaded with an existing gadget's
// committed values. Confirm will update that gadget in place (including
// renames and panel moves).
func EditGadgetSession(exp *domain.Exploration, reg *registry.Registry, gadgetName string, opts ...Option) (*GadgetSession, error) {
	g, panel, err := exp.Gadgets().Gadget(gadgetName)
	if err != nil {
		return nil, err
	}

	s := NewGadgetSession(exp, reg, opts...)
	s.typeID = g.TypeID
	s.original = g.Name
	s.name.Reset(g.Name)
	s.args.Reset(g.CustomizationArgs)
	s.panel.Reset(panel)

	vis := make(map[string]bool, len(g.VisibleInStates))
	for _, st := range g.VisibleInStates {
		vis[st] = true
	}
	s.visible.Reset(vis)
	return s, nil
}

// TypeID returns the selected gadget type, or "" if none is selected yet.
func (s *GadgetSession) TypeID() string { return s.typeID }

// Name returns the live-edited gadget name.
func (s *GadgetSession) Name() string { return s.name.Displayed() }

// SetName replaces the live-edited gadget name.
func (s *GadgetSession) SetName(name string) { s.name.SetDisplayed(name) }

// Panel returns the live-edited target panel.
func (s *GadgetSession) Panel() string { return s.panel.Displayed() }

// Args returns a copy of the live-edited customization arguments.
func (s *GadgetSession) Args() map[string]any {
	out := make(map[string]any, len(s.args.Displayed()))
	for k, v := range s.args.Displayed() {
		out[k] = v
	}
	return out
}

// VisibleStates returns the live-edited visibility set, sorted.
func (s *GadgetSession) VisibleStates() []string {
	vis := s.visible.Displayed()
	out := make([]string, 0, len(vis))
	for st, on := range vis {
		if on {
			out = append(out, st)
		}
	}
	sort.Strings(out)
	return out
}

// SelectGadgetType selects the type of the gadget under edit and restages
// every other draft to that type's starting point: a freshly generated
// unique name, visibility in exactly the active authoring state, and one
// deep-copied default per declared customization argument. The restaged
// values are displayed only; committed snapshots are untouched, so Cancel
// still rolls the session back to where it was before the selection.
// Fails with domain.ErrUnknownGadgetType; the session is untouched on error.
func (s *GadgetSession) SelectGadgetType(typeID string) error {
	defaults, err := s.reg.DefaultArgs(typeID)
	if err != nil {
		return err
	}

	s.typeID = typeID
	s.name.SetDisplayed(s.names.NewGadgetName(typeID))
	s.args.SetDisplayed(defaults)
	s.visible.SetDisplayed(map[string]bool{s.activeState(): true})
	return nil
}

// SetArg stages a new value for one customization argument. The argument
// must be declared by the selected type; value types are checked at
// Confirm time so partially typed input never blocks the UI.
func (s *GadgetSession) SetArg(name string, value any) error {
	if s.typeID == "" {
		return &schema.ValidationError{Field: name, Reason: "no gadget type selected"}
	}
	spec, err := s.reg.Get(s.typeID)
	if err != nil {
		return err
	}
	if _, ok := spec.ArgSpecFor(name); !ok {
		return &schema.ValidationError{Field: name, Reason: "not declared by the gadget type", Value: value}
	}

	// Copy-on-write keeps the committed snapshot isolated.
	next := make(map[string]any, len(s.args.Displayed())+1)
	for k, v := range s.args.Displayed() {
		next[k] = v
	}
	next[name] = value
	s.args.SetDisplayed(next)
	return nil
}

// ToggleStateVisibility toggles the gadget's visibility in the given
// state. Toggling twice restores the original membership. Fails with
// domain.ErrUnknownState for names not in the graph.
func (s *GadgetSession) ToggleStateVisibility(stateName string) error {
	if !s.exp.HasState(stateName) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownState, stateName)
	}

	next := make(map[string]bool, len(s.visible.Displayed())+1)
	for k, v := range s.visible.Displayed() {
		next[k] = v
	}
	if next[stateName] {
		delete(next, stateName)
	} else {
		next[stateName] = true
	}
	s.visible.SetDisplayed(next)
	return nil
}

// SetPanel stages the target layout panel.
// Fails with domain.ErrInvalidPanel for unknown panel names.
func (s *GadgetSession) SetPanel(panelName string) error {
	if !domain.IsValidPanel(panelName) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidPanel, panelName)
	}
	s.panel.SetDisplayed(panelName)
	return nil
}

// Confirm validates the staged edits and, if they pass, commits every
// draft field atomically, builds the finalized gadget, and hands it to the
// exploration's gadget collection (add for new sessions, update for edit
// sessions). The session is cleared afterwards.
//
// On validation failure nothing is committed and the session stays open
// for the author to fix and resubmit.
func (s *GadgetSession) Confirm() (*domain.Gadget, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	s.name.Commit()
	s.args.Commit()
	s.panel.Commit()
	s.visible.Commit()

	g := &domain.Gadget{
		TypeID:            s.typeID,
		Name:              strings.TrimSpace(s.name.Committed()),
		CustomizationArgs: s.Args(),
		VisibleInStates:   s.VisibleStates(),
	}
	panel := s.panel.Committed()

	var err error
	if s.original == "" {
		err = s.exp.Gadgets().AddGadget(g, panel)
	} else {
		err = s.exp.Gadgets().UpdateGadget(s.original, g, panel)
	}
	if err != nil {
		// Validation already vetted the commit; reaching this means the
		// document changed underneath the session.
		s.cfg.logger.Error("gadget commit rejected by collection", "gadget", g.Name, "err", err)
		return nil, err
	}

	s.cfg.logger.Debug("gadget committed", "gadget", g.Name, "panel", panel)
	if s.cfg.hooks.OnGadgetCommitted != nil {
		s.cfg.hooks.OnGadgetCommitted(g.Clone(), panel)
	}

	s.clear()
	return g, nil
}

// Cancel discards all staged edits. The exploration document is untouched.
func (s *GadgetSession) Cancel() {
	s.name.Rollback()
	s.args.Rollback()
	s.panel.Rollback()
	s.visible.Rollback()
}

func (s *GadgetSession) validate() error {
	if s.typeID == "" {
		return &schema.ValidationError{Field: "gadget_type", Reason: "no gadget type selected"}
	}
	spec, err := s.reg.Get(s.typeID)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(s.name.Displayed())
	if name == "" {
		return &schema.ValidationError{Field: "name", Reason: "gadget name must not be empty"}
	}
	for _, sub := range s.cfg.forbidden {
		if strings.Contains(name, sub) {
			return &schema.ValidationError{
				Field:  "name",
				Reason: fmt.Sprintf("gadget name must not contain %q", sub),
				Value:  name,
			}
		}
	}
	if name != s.original && s.names.IsGadgetNameTaken(name) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateGadgetName, name)
	}

	if err := spec.ValidateArgs(s.args.Displayed()); err != nil {
		return err
	}

	// Visibility was checked on toggle, but states may have been deleted
	// since; the committed document must satisfy the invariant now.
	for _, st := range s.VisibleStates() {
		if !s.exp.HasState(st) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownState, st)
		}
	}
	return nil
}

func (s *GadgetSession) clear() {
	s.typeID = ""
	s.original = ""
	s.name.Reset("")
	s.args.Reset(nil)
	s.panel.Reset(domain.PanelBottom)
	s.visible.Reset(nil)
}

func (s *GadgetSession) activeState() string {
	if s.cfg.activeState != nil {
		return s.cfg.activeState()
	}
	return s.exp.InitStateName()
}
