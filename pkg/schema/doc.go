// Package schema declares gadget types and the type system used to
// validate their customization arguments before an edit session is allowed
// to commit.
package schema
