package timeline

import (
	"errors"
	"fmt"
	"testing"

	"cubanimate/internal/cube"
)

var size = cube.NewSize(2, 2, 2)

func names(t *Timeline) []string {
	out := make([]string, t.Len())
	for i, e := range t.Entries() {
		out[i] = e.Name
	}
	return out
}

func checkContiguous(t *testing.T, tl *Timeline) {
	t.Helper()
	for i, e := range tl.Entries() {
		if want := fmt.Sprintf("#%d", i+1); e.Name != want {
			t.Fatalf("frame %d named %q, want %q (names %v)", i, e.Name, want, names(tl))
		}
	}
}

func TestAddSelectsAndNames(t *testing.T) {
	tl := New()
	if tl.Selected() != nil || tl.SelectedIndex() != -1 {
		t.Fatal("empty timeline should have no selection")
	}
	a := tl.Add(size, nil)
	b := tl.Add(size, nil)
	if a.Name != "#1" || b.Name != "#2" {
		t.Errorf("names %q %q", a.Name, b.Name)
	}
	if tl.Selected() != b {
		t.Error("Add should select the new frame")
	}
	if a.ID == b.ID {
		t.Error("frames share an ID")
	}
	if a.Data == b.Data {
		t.Error("frames share data")
	}
}

func TestDeleteLastFrameRefused(t *testing.T) {
	tl := New()
	tl.Add(size, nil)
	if _, err := tl.DeleteSelected(); !errors.Is(err, ErrLastFrame) {
		t.Fatalf("expected ErrLastFrame, got %v", err)
	}
	if tl.Len() != 1 {
		t.Errorf("timeline length %d, want 1", tl.Len())
	}
}

func TestDeleteRenumbersAndSelectsNeighbor(t *testing.T) {
	tests := []struct {
		n, del, wantSel int
	}{
		{5, 0, 0},
		{5, 2, 2},
		{5, 4, 3},
		{2, 1, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n%d_del%d", tt.n, tt.del), func(t *testing.T) {
			tl := New()
			for i := 0; i < tt.n; i++ {
				tl.Add(size, nil)
			}
			victim := tl.At(tt.del)
			if err := tl.Select(tt.del); err != nil {
				t.Fatal(err)
			}
			removed, err := tl.DeleteSelected()
			if err != nil {
				t.Fatalf("DeleteSelected: %v", err)
			}
			if removed != victim {
				t.Error("wrong frame removed")
			}
			if tl.Len() != tt.n-1 {
				t.Errorf("length %d, want %d", tl.Len(), tt.n-1)
			}
			if tl.SelectedIndex() != tt.wantSel {
				t.Errorf("selected %d, want %d", tl.SelectedIndex(), tt.wantSel)
			}
			checkContiguous(t, tl)
		})
	}
}

func TestClear(t *testing.T) {
	tl := New()
	tl.Add(size, nil)
	tl.Add(size, nil)
	tl.Clear()
	if tl.Len() != 0 || tl.Selected() != nil {
		t.Error("Clear left frames behind")
	}
	if _, err := tl.DeleteSelected(); !errors.Is(err, ErrNoFrame) {
		t.Errorf("expected ErrNoFrame, got %v", err)
	}
}

func TestSelect(t *testing.T) {
	tl := New()
	a := tl.Add(size, nil)
	tl.Add(size, nil)
	if err := tl.SelectEntry(a); err != nil || tl.Selected() != a {
		t.Fatalf("SelectEntry failed: %v", err)
	}
	if err := tl.Select(2); !errors.Is(err, ErrNoFrame) {
		t.Errorf("expected ErrNoFrame, got %v", err)
	}
	if tl.Find(a.ID) != a {
		t.Error("Find did not return the entry")
	}
}

func TestMoveKeepsSelection(t *testing.T) {
	tl := New()
	var entries []*Entry
	for i := 0; i < 4; i++ {
		entries = append(entries, tl.Add(size, nil))
	}
	tl.Select(1)
	if err := tl.Move(0, 3); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if tl.At(3) != entries[0] || tl.At(0) != entries[1] {
		t.Error("frame not moved")
	}
	if tl.Selected() != entries[1] || tl.SelectedIndex() != 0 {
		t.Errorf("selection lost, index %d", tl.SelectedIndex())
	}
	checkContiguous(t, tl)

	if err := tl.Move(0, 4); !errors.Is(err, ErrNoFrame) {
		t.Errorf("expected ErrNoFrame, got %v", err)
	}
}
