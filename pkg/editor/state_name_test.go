package editor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/editor"
)

func newGraph(t *testing.T) *domain.Exploration {
	t.Helper()
	exp := domain.NewExploration("First State")
	require.NoError(t, exp.AddStates("Second State"))

	// First State routes to Second State.
	st, err := exp.GetState("First State")
	require.NoError(t, err)
	st.Interaction.Handlers[0].RuleSpecs[0].Dest = "Second State"
	return exp
}

func TestSaveStateName_Success(t *testing.T) {
	exp := newGraph(t)
	sne := editor.NewStateNameEditor(exp, "Second State")
	sne.Init()
	require.True(t, sne.Editing())

	assert.True(t, sne.SaveStateName("  Renamed   State "))

	assert.False(t, sne.Editing())
	assert.Equal(t, "Renamed State", sne.ActiveState(), "active pointer follows the rename")
	assert.True(t, exp.HasState("Renamed State"))
	assert.False(t, exp.HasState("Second State"))

	// The incoming reference was rewritten.
	st, err := exp.GetState("First State")
	require.NoError(t, err)
	assert.Equal(t, "Renamed State", st.Interaction.Handlers[0].RuleSpecs[0].Dest)
}

func TestSaveStateName_RefusalsLeaveEverythingUntouched(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
	}{
		{"too long", strings.Repeat("x", 51)},
		{"too long after normalization", "  " + strings.Repeat("y", 51) + "  "},
		{"empty", ""},
		{"whitespace only", "    "},
		{"reserved END", "END"},
		{"reserved mixed case", "enD"},
		{"reserved lowercase", "end"},
		{"forbidden character", "What: a state"},
		{"forbidden slash", "a/b"},
		{"duplicate of another state", "First State"},
		{"own current name", "Second State"},
		{"own name with extra whitespace", "  Second   State "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exp := newGraph(t)
			sne := editor.NewStateNameEditor(exp, "Second State")
			sne.Init()

			assert.False(t, sne.SaveStateName(tc.candidate))
			assert.Equal(t, "Second State", sne.ActiveState())
			assert.Equal(t, []string{"First State", "Second State"}, exp.StateNames())
		})
	}
}

func TestSaveStateName_BoundaryLength(t *testing.T) {
	exp := newGraph(t)
	sne := editor.NewStateNameEditor(exp, "Second State")
	sne.Init()

	fifty := strings.Repeat("z", 50)
	assert.True(t, sne.SaveStateName(fifty))
	assert.True(t, exp.HasState(fifty))
}

func TestValidate_ReportsReasonWithoutMutating(t *testing.T) {
	exp := newGraph(t)
	sne := editor.NewStateNameEditor(exp, "Second State")
	sne.Init()

	assert.Error(t, sne.Validate("END"))
	assert.Error(t, sne.Validate("First State"))
	assert.NoError(t, sne.Validate("Third State"))
	assert.Equal(t, []string{"First State", "Second State"}, exp.StateNames())
}

func TestStateNameEditor_CancelRestoresSnapshot(t *testing.T) {
	exp := newGraph(t)
	sne := editor.NewStateNameEditor(exp, "Second State")
	sne.Init()

	sne.SetDisplayed("half typed na")
	sne.Cancel()

	assert.False(t, sne.Editing())
	assert.Equal(t, "Second State", sne.Displayed())
}

func TestSaveStateName_ChainedRenames(t *testing.T) {
	exp := newGraph(t)
	sne := editor.NewStateNameEditor(exp, "First State")
	sne.Init()

	require.True(t, sne.SaveStateName("Fourth State"))
	assert.True(t, exp.HasState("Fourth State"))
	assert.False(t, exp.HasState("First State"))

	sne.Init()
	require.True(t, sne.SaveStateName("Fifth State"))
	assert.True(t, exp.HasState("Fifth State"))
	assert.False(t, exp.HasState("Fourth State"))
	assert.Len(t, exp.StateNames(), 2)
}

func TestSaveStateName_CustomRules(t *testing.T) {
	exp := newGraph(t)
	sne := editor.NewStateNameEditor(exp, "Second State",
		editor.WithReservedStateNames([]string{"FIN"}),
		editor.WithForbiddenSubstrings([]string{"!"}),
	)
	sne.Init()

	assert.False(t, sne.SaveStateName("fin"))
	assert.False(t, sne.SaveStateName("surprise!"))
	// The default reserved word is no longer special.
	assert.True(t, sne.SaveStateName("END"))
}

func TestSaveStateName_FiresHook(t *testing.T) {
	exp := newGraph(t)

	var gotOld, gotNew string
	sne := editor.NewStateNameEditor(exp, "Second State",
		editor.WithHooks(domain.LifecycleHooks{
			OnStateRenamed: func(oldName, newName string) {
				gotOld, gotNew = oldName, newName
			},
		}),
	)
	sne.Init()

	require.True(t, sne.SaveStateName("Third State"))
	assert.Equal(t, "Second State", gotOld)
	assert.Equal(t, "Third State", gotNew)
}
