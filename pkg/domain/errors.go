package domain

import "errors"

// ErrUnknownState is returned when an operation references a state name that
// does not exist in the exploration.
var ErrUnknownState = errors.New("unknown state")

// ErrDuplicateStateName is returned when a state name is already taken.
var ErrDuplicateStateName = errors.New("duplicate state name")

// ErrInitialState is returned when an operation would remove the initial state.
var ErrInitialState = errors.New("cannot delete the initial state")

// ErrGadgetNotFound is returned when a gadget name cannot be resolved.
var ErrGadgetNotFound = errors.New("gadget not found")

// ErrDuplicateGadgetName is returned when a gadget name is already taken.
var ErrDuplicateGadgetName = errors.New("duplicate gadget name")

// ErrUnknownGadgetType is returned when a gadget type ID is not registered.
var ErrUnknownGadgetType = errors.New("unknown gadget type")

// ErrInvalidPanel is returned when a panel name is not one of the known
// layout panels.
var ErrInvalidPanel = errors.New("invalid panel")

// ErrExplorationNotFound is returned when an exploration ID cannot be found
// in the store.
var ErrExplorationNotFound = errors.New("exploration not found")
