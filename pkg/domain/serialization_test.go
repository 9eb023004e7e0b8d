package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExploration_YAMLRoundTrip(t *testing.T) {
	exp := buildExploration(t)
	exp.SetTitle("A title")
	exp.SetObjective("The objective")
	require.NoError(t, exp.Gadgets().AddGadget(&Gadget{
		TypeID:            "ScoreBar",
		Name:              "ScoreBar",
		CustomizationArgs: map[string]any{"title": "Score"},
		VisibleInStates:   []string{"First State"},
	}, PanelBottom))

	data, err := exp.ToYAML()
	require.NoError(t, err)

	loaded, err := LoadExplorationYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "A title", loaded.Title())
	assert.Equal(t, "The objective", loaded.Objective())
	assert.Equal(t, exp.InitStateName(), loaded.InitStateName())
	assert.Equal(t, exp.StateNames(), loaded.StateNames())
	assert.Equal(t, "Second State", destOf(t, loaded, "First State"))

	g, panel, err := loaded.Gadgets().Gadget("ScoreBar")
	require.NoError(t, err)
	assert.Equal(t, PanelBottom, panel)
	assert.Equal(t, "Score", g.CustomizationArgs["title"])

	assert.NoError(t, loaded.Validate())
}

func TestExploration_JSONRoundTrip(t *testing.T) {
	exp := buildExploration(t)

	data, err := json.Marshal(exp)
	require.NoError(t, err)

	var loaded Exploration
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.Equal(t, exp.StateNames(), loaded.StateNames())
	assert.Equal(t, exp.InitStateName(), loaded.InitStateName())

	// State names are re-derived from the map keys.
	st, err := loaded.GetState("Third State")
	require.NoError(t, err)
	assert.Equal(t, "Third State", st.Name())
}

func TestExploration_UnmarshalJSONReplacesExistingDocument(t *testing.T) {
	data, err := json.Marshal(buildExploration(t))
	require.NoError(t, err)

	// Decoding into a document that has already been edited must replace
	// its content wholesale and leave it fully operable afterwards.
	target := NewExploration("Old Init")
	require.NoError(t, target.AddStates("Old Extra"))
	require.NoError(t, json.Unmarshal(data, target))

	assert.Equal(t, "First State", target.InitStateName())
	assert.False(t, target.HasState("Old Init"))
	assert.False(t, target.HasState("Old Extra"))

	require.NoError(t, target.RenameState("Third State", "Replacement"))
	assert.True(t, target.HasState("Replacement"))
}

func TestLoadExplorationYAML_RejectsStructurallyBrokenDocs(t *testing.T) {
	t.Run("missing init state name", func(t *testing.T) {
		_, err := LoadExplorationYAML([]byte("states:\n  Intro:\n    content: []\n"))
		assert.Error(t, err)
	})

	t.Run("no states", func(t *testing.T) {
		_, err := LoadExplorationYAML([]byte("init_state_name: Intro\n"))
		assert.Error(t, err)
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := LoadExplorationYAML([]byte("\t{{{"))
		assert.Error(t, err)
	})
}
