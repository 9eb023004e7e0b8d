package domain

// LifecycleHooks defines optional callbacks fired after authoring
// operations land in the authoritative document. Nil fields are skipped.
// Hooks run synchronously in the mutating call; keep them cheap.
type LifecycleHooks struct {
	// OnStateRenamed fires after a state rename and its reference rewrite.
	OnStateRenamed func(oldName, newName string)

	// OnGadgetCommitted fires after an edit session commits a gadget
	// (add or update) into the collection.
	OnGadgetCommitted func(gadget *Gadget, panel string)

	// OnGadgetDeleted fires after a gadget is removed.
	OnGadgetDeleted func(name string)
}
