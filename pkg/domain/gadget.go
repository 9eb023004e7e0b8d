package domain

import "sort"

// Layout panels a gadget can be docked into.
const (
	PanelBottom = "bottom"
	PanelLeft   = "left"
	PanelRight  = "right"
)

// Panels lists the known layout panels in display order.
func Panels() []string {
	return []string{PanelBottom, PanelLeft, PanelRight}
}

// IsValidPanel reports whether name is one of the known layout panels.
func IsValidPanel(name string) bool {
	switch name {
	case PanelBottom, PanelLeft, PanelRight:
		return true
	}
	return false
}

// Gadget is a decorative or interactive widget attached to a layout panel.
// It is shown only while the learner is in one of VisibleInStates.
type Gadget struct {
	TypeID            string         `json:"type_id" yaml:"type_id"`
	Name              string         `json:"name" yaml:"name"`
	CustomizationArgs map[string]any `json:"customization_args,omitempty" yaml:"customization_args,omitempty"`
	VisibleInStates   []string       `json:"visible_in_states" yaml:"visible_in_states"`
}

// Clone returns a deep copy of the gadget.
func (g *Gadget) Clone() *Gadget {
	return &Gadget{
		TypeID:            g.TypeID,
		Name:              g.Name,
		CustomizationArgs: copyAnyMap(g.CustomizationArgs),
		VisibleInStates:   append([]string(nil), g.VisibleInStates...),
	}
}

// VisibleIn reports whether the gadget is shown in the given state.
func (g *Gadget) VisibleIn(stateName string) bool {
	for _, s := range g.VisibleInStates {
		if s == stateName {
			return true
		}
	}
	return false
}

// normalizeVisibility sorts the visibility set so serialized output and
// comparisons are stable.
func (g *Gadget) normalizeVisibility() {
	sort.Strings(g.VisibleInStates)
}
