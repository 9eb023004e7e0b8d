// Package editor implements the authoring sessions of an exploration: the
// gadget add/edit session and the state-name editor.
//
// Sessions stage their edits in draft fields and touch the authoritative
// document only on an explicit, validated confirm; cancellation always
// reverts the displayed values to the last committed snapshot.
package editor
