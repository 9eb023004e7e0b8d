package editor

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/draft"
	"github.com/aretw0/espalier/pkg/schema"
)

// errNameUnchanged marks a candidate equal to the state's current name.
// Saving it changes nothing, and the observed editor behavior is to report
// that as "not saved" rather than silently succeed.
var errNameUnchanged = errors.New("state name unchanged")

// StateNameEditor is the session for renaming a single state. It validates
// a typed candidate and, on acceptance, asks the exploration to perform the
// rename with full reference rewriting.
type StateNameEditor struct {
	exp *domain.Exploration
	cfg config

	// active is the name of the state whose name is being edited. It is
	// updated to the new name after a successful save.
	active string

	editing bool
	field   *draft.Field[string]
}

// NewStateNameEditor creates an editor for the named state.
func NewStateNameEditor(exp *domain.Exploration, stateName string, opts ...Option) *StateNameEditor {
	return &StateNameEditor{
		exp:    exp,
		cfg:    newConfig(opts...),
		active: stateName,
		field:  draft.New(stateName),
	}
}

// Init enters editing mode, snapshotting the current name as the rollback
// memento. Repeated Init calls while editing re-snapshot from the
// authoritative name, discarding typed-but-unsaved input.
func (e *StateNameEditor) Init() {
	e.field.Reset(e.active)
	e.editing = true
}

// Editing reports whether the editor is in editing mode.
func (e *StateNameEditor) Editing() bool { return e.editing }

// Displayed returns the candidate name as typed so far.
func (e *StateNameEditor) Displayed() string { return e.field.Displayed() }

// SetDisplayed replaces the typed candidate.
func (e *StateNameEditor) SetDisplayed(name string) { e.field.SetDisplayed(name) }

// ActiveState returns the authoritative name of the state under edit.
func (e *StateNameEditor) ActiveState() string { return e.active }

// Validate runs the candidate through the full validation pipeline without
// renaming anything, returning the reason a save would be refused (nil if
// it would be accepted). UIs use this for inline feedback.
func (e *StateNameEditor) Validate(candidate string) error {
	_, err := e.vet(candidate)
	return err
}

// SaveStateName validates the candidate and, if every check passes, renames
// the state and rewrites all references to it. Returns true only when the
// document actually changed; any refusal (including saving the unchanged
// current name) returns false and leaves both the session and the graph
// untouched.
func (e *StateNameEditor) SaveStateName(candidate string) bool {
	normalized, err := e.vet(candidate)
	if err != nil {
		e.cfg.logger.Debug("state name not saved",
			"state", e.active, "candidate", candidate, "err", err)
		return false
	}

	oldName := e.active
	if err := e.exp.RenameState(oldName, normalized); err != nil {
		// vet checked everything the graph rechecks, so this indicates a
		// concurrent edit; surface it loudly.
		e.cfg.logger.Error("state rename rejected",
			"state", oldName, "candidate", normalized, "err", err)
		return false
	}

	e.active = normalized
	e.field.Reset(normalized)
	e.editing = false

	e.cfg.logger.Debug("state renamed", "from", oldName, "to", normalized)
	if e.cfg.hooks.OnStateRenamed != nil {
		e.cfg.hooks.OnStateRenamed(oldName, normalized)
	}
	return true
}

// Cancel discards the typed candidate and leaves editing mode.
func (e *StateNameEditor) Cancel() {
	e.field.Rollback()
	e.editing = false
}

// vet runs the validation pipeline: normalize, length cap, emptiness,
// reserved keywords (case-insensitive), forbidden substrings, then
// duplicate/unchanged detection against the live graph. Each check
// short-circuits; nothing is mutated.
func (e *StateNameEditor) vet(candidate string) (string, error) {
	normalized := NormalizeStateName(candidate)

	if utf8.RuneCountInString(normalized) > e.cfg.maxNameLength {
		return "", &schema.ValidationError{
			Field:  "state_name",
			Reason: fmt.Sprintf("state name must be at most %d characters", e.cfg.maxNameLength),
			Value:  normalized,
		}
	}

	if normalized == "" {
		return "", &schema.ValidationError{Field: "state_name", Reason: "state name must not be empty"}
	}
	for _, reserved := range e.cfg.reserved {
		if strings.EqualFold(normalized, reserved) {
			return "", &schema.ValidationError{
				Field:  "state_name",
				Reason: fmt.Sprintf("%q is a reserved name", reserved),
				Value:  normalized,
			}
		}
	}
	for _, sub := range e.cfg.forbidden {
		if strings.Contains(normalized, sub) {
			return "", &schema.ValidationError{
				Field:  "state_name",
				Reason: fmt.Sprintf("state name must not contain %q", sub),
				Value:  normalized,
			}
		}
	}

	if normalized == e.active {
		return "", errNameUnchanged
	}
	if e.exp.HasState(normalized) {
		return "", fmt.Errorf("%w: %s", domain.ErrDuplicateStateName, normalized)
	}
	return normalized, nil
}
