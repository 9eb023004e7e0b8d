// Package tests provides reusable contract suites that verify adapter
// implementations of the ports interfaces.
package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// RunExplorationStoreContract verifies that a store complies with
// ports.ExplorationStore.
func RunExplorationStoreContract(t *testing.T, store ports.ExplorationStore) {
	t.Helper()
	ctx := context.Background()

	newDoc := func() *domain.Exploration {
		exp := domain.NewExploration("First State")
		if err := exp.AddStates("Second State"); err != nil {
			t.Fatalf("failed to build fixture: %v", err)
		}
		return exp
	}

	t.Run("SaveAndLoad", func(t *testing.T) {
		exp := newDoc()
		if err := store.Save(ctx, "exp-1", exp); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}

		loaded, err := store.Load(ctx, "exp-1")
		if err != nil {
			t.Fatalf("unexpected load error: %v", err)
		}
		if loaded.InitStateName() != "First State" {
			t.Errorf("init state = %q, want %q", loaded.InitStateName(), "First State")
		}
		if !loaded.HasState("Second State") {
			t.Error("loaded exploration is missing Second State")
		}
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		if !errors.Is(err, domain.ErrExplorationNotFound) {
			t.Errorf("error = %v, want ErrExplorationNotFound", err)
		}
	})

	t.Run("Isolation", func(t *testing.T) {
		exp := newDoc()
		if err := store.Save(ctx, "exp-iso", exp); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}

		// Mutating the saved document must not leak into the store.
		if err := exp.RenameState("Second State", "Mutated"); err != nil {
			t.Fatalf("unexpected rename error: %v", err)
		}

		loaded, err := store.Load(ctx, "exp-iso")
		if err != nil {
			t.Fatalf("unexpected load error: %v", err)
		}
		if loaded.HasState("Mutated") {
			t.Error("mutation after save leaked into the store")
		}
		if !loaded.HasState("Second State") {
			t.Error("stored exploration lost Second State")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Save(ctx, "exp-del", newDoc()); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}
		if err := store.Delete(ctx, "exp-del"); err != nil {
			t.Fatalf("unexpected delete error: %v", err)
		}
		if _, err := store.Load(ctx, "exp-del"); !errors.Is(err, domain.ErrExplorationNotFound) {
			t.Errorf("error after delete = %v, want ErrExplorationNotFound", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		if err := store.Save(ctx, "exp-list", newDoc()); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("unexpected list error: %v", err)
		}
		found := false
		for _, id := range ids {
			if id == "exp-list" {
				found = true
			}
		}
		if !found {
			t.Errorf("exp-list missing from %v", ids)
		}
	})
}
