package draft

import "testing"

func TestField_CommitMakesDisplayedAuthoritative(t *testing.T) {
	f := New("alpha")

	f.SetDisplayed("beta")
	if f.Committed() != "alpha" {
		t.Errorf("Committed() = %q before commit, want alpha", f.Committed())
	}

	f.Commit()
	if f.Committed() != "beta" {
		t.Errorf("Committed() = %q after commit, want beta", f.Committed())
	}
	if f.Displayed() != "beta" {
		t.Errorf("Displayed() = %q after commit, want beta", f.Displayed())
	}
}

func TestField_RollbackDiscardsUnsavedEdits(t *testing.T) {
	f := New(41)

	f.SetDisplayed(99)
	f.Rollback()

	if f.Displayed() != 41 {
		t.Errorf("Displayed() = %d after rollback, want 41", f.Displayed())
	}
	if f.Committed() != 41 {
		t.Errorf("Committed() = %d after rollback, want 41", f.Committed())
	}
}

func TestField_RollbackReturnsToLastCommit(t *testing.T) {
	f := New("a")

	f.SetDisplayed("b")
	f.Commit()
	f.SetDisplayed("c")
	f.Rollback()

	if f.Displayed() != "b" {
		t.Errorf("Displayed() = %q, want last committed value b", f.Displayed())
	}
}

func TestField_ResetSetsBothValues(t *testing.T) {
	f := New("old")

	f.SetDisplayed("typing...")
	f.Reset("fresh")

	if f.Displayed() != "fresh" || f.Committed() != "fresh" {
		t.Errorf("after Reset: displayed=%q committed=%q, want fresh/fresh",
			f.Displayed(), f.Committed())
	}
}

func TestField_CommitIsUnconditional(t *testing.T) {
	// Commit has no validation responsibility; even a zero value lands.
	f := New("something")
	f.SetDisplayed("")
	f.Commit()

	if f.Committed() != "" {
		t.Errorf("Committed() = %q, want empty string", f.Committed())
	}
}
