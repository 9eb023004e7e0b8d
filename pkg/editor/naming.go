package editor

import (
	"strconv"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// MaxStateNameLength caps the length of a state name after normalization,
// counted in runes.
const MaxStateNameLength = 50

// DefaultReservedStateNames are names no state may take, compared
// case-insensitively. "END" is the terminal pseudo-state every rule may
// route to.
var DefaultReservedStateNames = []string{"END"}

// DefaultForbiddenSubstrings are character sequences no state or gadget
// name may contain. The set is configuration; these defaults cover the
// characters that collide with URL escaping and document markup.
var DefaultForbiddenSubstrings = []string{
	":", "#", "/", "|", "\"", "<", ">", "{", "}", "[", "]", "\\", "�",
}

// NormalizeStateName collapses runs of internal whitespace to single
// spaces and trims leading and trailing whitespace. Pure and idempotent.
func NormalizeStateName(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// NameRegistry is a read-through view of the names currently in use by an
// exploration. It is derived, never persisted: uniqueness checks and
// default-name generation always consult the live document.
type NameRegistry struct {
	exp *domain.Exploration
}

// NewNameRegistry creates a registry backed by the given exploration.
func NewNameRegistry(exp *domain.Exploration) *NameRegistry {
	return &NameRegistry{exp: exp}
}

// IsStateName reports whether name currently names a state.
func (r *NameRegistry) IsStateName(name string) bool {
	return r.exp.HasState(name)
}

// IsGadgetNameTaken reports whether name currently names a gadget.
func (r *NameRegistry) IsGadgetNameTaken(name string) bool {
	return r.exp.Gadgets().Has(name)
}

// NewGadgetName generates a unique default name for a gadget of the given
// type: the type ID itself, then the type ID with an increasing suffix.
func (r *NameRegistry) NewGadgetName(typeID string) string {
	if !r.IsGadgetNameTaken(typeID) {
		return typeID
	}
	for i := 2; ; i++ {
		candidate := typeID + strconv.Itoa(i)
		if !r.IsGadgetNameTaken(candidate) {
			return candidate
		}
	}
}
