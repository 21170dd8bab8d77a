package service

import (
	"os"
	"path/filepath"
	"testing"
)

var _ SoloStore = (*FileSoloStore)(nil)

func newSoloService(t *testing.T) (*SoloService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solo.json")
	return NewSoloService(NewFileSoloStore(path)), path
}

func TestSoloStartAndSubmit(t *testing.T) {
	svc, _ := newSoloService(t)

	state, err := svc.Start("hsk", "hsk1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if len(state.ItemOrder) != 30 {
		t.Errorf("Expected 30 items, got %d", len(state.ItemOrder))
	}

	item, err := svc.CurrentItem()
	if err != nil {
		t.Fatalf("CurrentItem failed: %v", err)
	}
	if item.ID != state.CurrentItemID() {
		t.Errorf("CurrentItem = %q, want %q", item.ID, state.CurrentItemID())
	}

	// hsk1: reading 2 + meaning 1 + usage 2 = 5 base, +1 bonus.
	state, result, err := svc.Submit(true, true, true)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.BaseScore != 5 || result.BonusScore != 1 || result.TotalScore != 6 {
		t.Errorf("Scores = %d/%d/%d, want 5/1/6", result.BaseScore, result.BonusScore, result.TotalScore)
	}
	if state.TotalScore != 6 || state.Streak != 1 || state.MaxStreak != 1 {
		t.Errorf("State = %d/%d/%d, want 6/1/1", state.TotalScore, state.Streak, state.MaxStreak)
	}

	// Repeat submission for the same item changes nothing.
	state, result, err = svc.Submit(true, true, true)
	if err != nil {
		t.Fatalf("Repeat submit errored: %v", err)
	}
	if result != nil {
		t.Error("Expected no result for repeat submission")
	}
	if state.TotalScore != 6 {
		t.Errorf("TotalScore = %d, want 6", state.TotalScore)
	}

	// A failed meaning mark breaks the streak on the next item.
	if _, err := svc.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	state, result, err = svc.Submit(true, false, true)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.BonusScore != 0 {
		t.Errorf("BonusScore = %d, want 0", result.BonusScore)
	}
	if state.Streak != 0 || state.MaxStreak != 1 {
		t.Errorf("Streak = %d/%d, want 0/1", state.Streak, state.MaxStreak)
	}
}

func TestSoloMoveClamps(t *testing.T) {
	svc, _ := newSoloService(t)

	if _, err := svc.Start("mufradat", "low"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	state, err := svc.Retreat()
	if err != nil {
		t.Fatalf("Retreat failed: %v", err)
	}
	if state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", state.CurrentIndex)
	}

	last := len(state.ItemOrder) - 1
	for i := 0; i < last+5; i++ {
		if state, err = svc.Advance(); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}
	if state.CurrentIndex != last {
		t.Errorf("CurrentIndex = %d, want %d", state.CurrentIndex, last)
	}
}

func TestSoloResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solo.json")

	svc := NewSoloService(NewFileSoloStore(path))
	started, err := svc.Start("mufradat", "all")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := svc.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if _, _, err := svc.Submit(true, true, false); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// A new service instance picks up where the old one stopped.
	resumed, err := NewSoloService(NewFileSoloStore(path)).Resume()
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if resumed == nil {
		t.Fatal("Expected a saved drill")
	}
	if resumed.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", resumed.CurrentIndex)
	}
	if len(resumed.Results) != 1 {
		t.Errorf("Results = %d, want 1", len(resumed.Results))
	}
	if resumed.Catalog != "mufradat" || resumed.Tier != "all" {
		t.Errorf("Resumed %s/%s, want mufradat/all", resumed.Catalog, resumed.Tier)
	}
	if len(resumed.ItemOrder) != len(started.ItemOrder) {
		t.Error("Item order length changed across resume")
	}
	for i := range resumed.ItemOrder {
		if resumed.ItemOrder[i] != started.ItemOrder[i] {
			t.Fatalf("Item order changed across resume at %d", i)
		}
	}
}

func TestSoloResumeMissingOrCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, path string)
	}{
		{
			name:    "missing file",
			prepare: func(t *testing.T, path string) {},
		},
		{
			name: "corrupt file",
			prepare: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "empty drill",
			prepare: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "solo.json")
			tt.prepare(t, path)

			state, err := NewSoloService(NewFileSoloStore(path)).Resume()
			if err != nil {
				t.Fatalf("Resume errored: %v", err)
			}
			if state != nil {
				t.Error("Expected no drill to resume")
			}
		})
	}
}

func TestSoloReset(t *testing.T) {
	svc, path := newSoloService(t)

	if _, err := svc.Start("hsk", "hsk3"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := svc.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if svc.State() != nil {
		t.Error("Expected no state after reset")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected state file to be removed")
	}

	// Operations without a drill report ErrNoDrill.
	if _, err := svc.Advance(); err != ErrNoDrill {
		t.Errorf("Expected ErrNoDrill, got %v", err)
	}
	if _, _, err := svc.Submit(true, true, true); err != ErrNoDrill {
		t.Errorf("Expected ErrNoDrill, got %v", err)
	}
}

func TestSoloFinished(t *testing.T) {
	svc, _ := newSoloService(t)

	state, err := svc.Start("mufradat", "high")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if svc.Finished() {
		t.Error("Fresh drill reported finished")
	}

	for i := range state.ItemOrder {
		if _, _, err := svc.Submit(true, true, true); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
		if i < len(state.ItemOrder)-1 {
			if _, err := svc.Advance(); err != nil {
				t.Fatalf("Advance %d failed: %v", i, err)
			}
		}
	}
	if !svc.Finished() {
		t.Error("Completed drill not reported finished")
	}

	if svc.State().TotalScore == 0 {
		t.Error("Expected non-zero total after a full drill")
	}
}
