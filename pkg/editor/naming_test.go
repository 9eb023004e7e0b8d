package editor

import (
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
)

func TestNormalizeStateName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"   First     State  ", "First State"},
		{"    ", ""},
		{"    .", "."},
		{"First State", "First State"},
		{"a\t b\n c", "a b c"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeStateName(tc.in); got != tc.want {
			t.Errorf("NormalizeStateName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeStateName_Idempotent(t *testing.T) {
	inputs := []string{"   First     State  ", "x", "", " a  b ", "已经  规范"}
	for _, in := range inputs {
		once := NormalizeStateName(in)
		if twice := NormalizeStateName(once); twice != once {
			t.Errorf("NormalizeStateName not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNameRegistry_NewGadgetName(t *testing.T) {
	exp := domain.NewExploration("First State")
	names := NewNameRegistry(exp)

	if got := names.NewGadgetName("ScoreBar"); got != "ScoreBar" {
		t.Errorf("NewGadgetName = %q, want ScoreBar", got)
	}

	if err := exp.Gadgets().AddGadget(&domain.Gadget{TypeID: "ScoreBar", Name: "ScoreBar"}, domain.PanelBottom); err != nil {
		t.Fatalf("AddGadget: %v", err)
	}
	if got := names.NewGadgetName("ScoreBar"); got != "ScoreBar2" {
		t.Errorf("NewGadgetName = %q, want ScoreBar2", got)
	}

	if err := exp.Gadgets().AddGadget(&domain.Gadget{TypeID: "ScoreBar", Name: "ScoreBar2"}, domain.PanelBottom); err != nil {
		t.Fatalf("AddGadget: %v", err)
	}
	if got := names.NewGadgetName("ScoreBar"); got != "ScoreBar3" {
		t.Errorf("NewGadgetName = %q, want ScoreBar3", got)
	}
}

func TestNameRegistry_IsReadThrough(t *testing.T) {
	exp := domain.NewExploration("First State")
	names := NewNameRegistry(exp)

	if names.IsStateName("Second State") {
		t.Error("Second State should not exist yet")
	}
	if err := exp.AddStates("Second State"); err != nil {
		t.Fatalf("AddStates: %v", err)
	}
	if !names.IsStateName("Second State") {
		t.Error("registry should see states added after its creation")
	}
}
