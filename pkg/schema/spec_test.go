package schema

import (
	"errors"
	"testing"
)

func sampleSpec() GadgetSpec {
	return GadgetSpec{
		TypeID: "ScoreBar",
		CustomizationArgSpecs: []ArgSpec{
			{Name: "title", Type: String(), DefaultValue: "Score"},
			{Name: "max_value", Type: Int(), DefaultValue: 100},
			{Name: "labels", Type: Slice(String()), DefaultValue: []string{}},
		},
	}
}

func TestValidateArgs_Success(t *testing.T) {
	err := sampleSpec().ValidateArgs(map[string]any{
		"title":     "Progress",
		"max_value": 10,
		"labels":    []string{"a", "b"},
	})
	if err != nil {
		t.Errorf("ValidateArgs() error = %v, want nil", err)
	}
}

func TestValidateArgs_MissingArg(t *testing.T) {
	err := sampleSpec().ValidateArgs(map[string]any{
		"title":  "Progress",
		"labels": []string{},
	})
	if err == nil {
		t.Fatal("ValidateArgs() should return error for missing arg")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}
	if len(aggr.Errors) != 1 {
		t.Errorf("ValidateArgs() = %d errors, want 1", len(aggr.Errors))
	}

	var ve *ValidationError
	if !errors.As(aggr.Errors[0], &ve) {
		t.Fatalf("error should be *ValidationError, got %T", aggr.Errors[0])
	}
	if ve.Field != "max_value" {
		t.Errorf("error Field = %q, want max_value", ve.Field)
	}
}

func TestValidateArgs_TypeMismatch(t *testing.T) {
	err := sampleSpec().ValidateArgs(map[string]any{
		"title":     42,
		"max_value": "lots",
		"labels":    []string{},
	})
	if err == nil {
		t.Fatal("ValidateArgs() should return error for type mismatches")
	}
	if got := len(ValidationErrors(err)); got != 2 {
		t.Errorf("ValidateArgs() = %d errors, want 2", got)
	}
}

func TestValidateArgs_UndeclaredArg(t *testing.T) {
	err := sampleSpec().ValidateArgs(map[string]any{
		"title":     "Progress",
		"max_value": 10,
		"labels":    []string{},
		"typo":      true,
	})
	if err == nil {
		t.Fatal("ValidateArgs() should reject undeclared args")
	}
}

func TestIntType_AcceptsWholeFloats(t *testing.T) {
	// JSON unmarshaling delivers numbers as float64.
	if err := Int().Validate(float64(3)); err != nil {
		t.Errorf("Int().Validate(3.0) error = %v, want nil", err)
	}
	if err := Int().Validate(3.5); err == nil {
		t.Error("Int().Validate(3.5) should fail")
	}
}
