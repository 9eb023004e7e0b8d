/*
Package espalier is the editing core of an exploration authoring system: a
branching lesson made of named states, with decorative/interactive gadgets
docked to layout panels.

It provides two guarantees the authoring surface is built on:

  - Transactional editing: gadget add/edit sessions stage every field
    (name, customization arguments, panel, per-state visibility) as
    displayed/committed draft pairs. The authoritative document changes
    only on a validated Confirm; Cancel always leaves it untouched.
  - Referential integrity under rename: rule destinations reference states
    by name, so renaming a state rewrites every reference atomically, and
    unsafe renames (too long, reserved, forbidden characters, duplicates)
    are refused before anything mutates.

# Usage

	exp := domain.NewExploration("First State")

	reg := registry.NewRegistry()
	reg.Register(schema.GadgetSpec{
		TypeID: "ScoreBar",
		CustomizationArgSpecs: []schema.ArgSpec{
			{Name: "title", Type: schema.String(), DefaultValue: "Score"},
		},
	})

	ed := espalier.New(exp, reg)

	session := ed.NewGadgetSession()
	session.SelectGadgetType("ScoreBar")
	session.SetArg("title", "Progress")
	gadget, err := session.Confirm()

Persistence is a host concern: wire a ports.ExplorationStore (memory,
redis) via WithStore and call Save after successful commits.
*/
package espalier
