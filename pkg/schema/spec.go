package schema

// ArgSpec declares one customization argument of a gadget type: its name,
// the type its value must conform to, and the default a fresh edit session
// starts from.
type ArgSpec struct {
	Name         string
	Type         Type
	DefaultValue any
}

// GadgetSpec declares a gadget type: a fixed identity plus the schema of
// its customization arguments. Specs are registered once at startup and
// treated as immutable; edit sessions only ever see deep copies of the
// default values.
type GadgetSpec struct {
	TypeID                string
	Description           string
	CustomizationArgSpecs []ArgSpec
}

// ArgSpecFor returns the spec of the named argument, if declared.
func (s GadgetSpec) ArgSpecFor(name string) (ArgSpec, bool) {
	for _, a := range s.CustomizationArgSpecs {
		if a.Name == name {
			return a, true
		}
	}
	return ArgSpec{}, false
}

// ValidateArgs checks a customization-argument map against the spec.
// Every declared argument must be present and well-typed, and no undeclared
// argument may appear. All failures are aggregated.
func (s GadgetSpec) ValidateArgs(args map[string]any) error {
	var errs []error

	for _, spec := range s.CustomizationArgSpecs {
		value, ok := args[spec.Name]
		if !ok {
			errs = append(errs, &ValidationError{Field: spec.Name, Reason: "required"})
			continue
		}
		if spec.Type == nil {
			continue
		}
		if err := spec.Type.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Field:  spec.Name,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	for name := range args {
		if _, ok := s.ArgSpecFor(name); !ok {
			errs = append(errs, &ValidationError{
				Field:  name,
				Reason: "not declared by the gadget type",
				Value:  args[name],
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
