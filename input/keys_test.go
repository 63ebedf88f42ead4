package input

import "testing"

func TestKeySetNoDuplicates(t *testing.T) {
	s := NewKeySet()
	s.Press(KeyLeft)
	s.Press(KeyLeft)
	if s.Len() != 1 {
		t.Fatalf("expected one held key, got %d", s.Len())
	}
	s.Release(KeyLeft)
	if s.Held(KeyLeft) || s.Len() != 0 {
		t.Fatalf("expected key released")
	}
	s.Release(KeyLeft)
}

func TestSnapshotMoveX(t *testing.T) {
	tests := []struct {
		name     string
		held     []Key
		want     float64
		conflict bool
	}{
		{"none", nil, 0, false},
		{"left", []Key{KeyLeft}, -1, false},
		{"right", []Key{KeyRight}, 1, false},
		{"both_cancel", []Key{KeyLeft, KeyRight}, 0, true},
		{"jump_only", []Key{KeyJump}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewKeySet()
			for _, k := range tc.held {
				s.Press(k)
			}
			snap := s.Snapshot(false)
			if got := snap.MoveX(); got != tc.want {
				t.Fatalf("MoveX() = %v, want %v", got, tc.want)
			}
			if snap.Conflict() != tc.conflict {
				t.Fatalf("Conflict() = %v, want %v", snap.Conflict(), tc.conflict)
			}
		})
	}
}

func TestSnapshotIsDetachedFromSet(t *testing.T) {
	s := NewKeySet()
	s.Press(KeyRight)
	snap := s.Snapshot(true)
	s.Release(KeyRight)

	if !snap.Right || !snap.AttackPressed {
		t.Fatalf("snapshot should keep values at time of capture: %+v", snap)
	}
}
