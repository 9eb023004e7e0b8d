package schema

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeArgs decodes a customization-argument map into a typed struct.
// Gadget implementations use this to move from the generic wire shape to
// their own config type. Unknown keys are rejected so typos surface early.
func DecodeArgs(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		TagName:     "arg",
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("failed to decode customization args: %w", err)
	}
	return nil
}
