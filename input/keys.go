// Package input tracks logical keys held by the player and resolves them
// once per tick into a movement/attack intent snapshot.
package input

// Key is a logical game key, independent of the physical binding.
type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	KeyJump
	KeyAttack
	KeyPause
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyAttack:
		return "attack"
	case KeyPause:
		return "pause"
	default:
		return "unknown"
	}
}

// KeySet is the set of currently held logical keys.
type KeySet struct {
	held map[Key]struct{}
}

func NewKeySet() *KeySet {
	return &KeySet{held: make(map[Key]struct{}, 4)}
}

// Press records a key-down. Repeated presses are idempotent.
func (s *KeySet) Press(k Key) {
	if s.held == nil {
		s.held = make(map[Key]struct{}, 4)
	}
	s.held[k] = struct{}{}
}

// Release records a key-up.
func (s *KeySet) Release(k Key) {
	delete(s.held, k)
}

func (s *KeySet) Held(k Key) bool {
	_, ok := s.held[k]
	return ok
}

func (s *KeySet) Len() int {
	return len(s.held)
}

// Clear drops every held key, e.g. when the window loses focus.
func (s *KeySet) Clear() {
	clear(s.held)
}

// Snapshot is the per-tick input intent. It is passed by value.
type Snapshot struct {
	Left          bool
	Right         bool
	Jump          bool
	AttackPressed bool
}

// Snapshot resolves the held keys into an intent. attackClicked carries a
// pointer click seen since the previous tick.
func (s *KeySet) Snapshot(attackClicked bool) Snapshot {
	return Snapshot{
		Left:          s.Held(KeyLeft),
		Right:         s.Held(KeyRight),
		Jump:          s.Held(KeyJump),
		AttackPressed: attackClicked,
	}
}

// MoveX returns -1, 0 or 1. Holding both directions cancels out.
func (s Snapshot) MoveX() float64 {
	switch {
	case s.Left && s.Right:
		return 0
	case s.Left:
		return -1
	case s.Right:
		return 1
	default:
		return 0
	}
}

// Conflict reports whether opposite directions are held together.
func (s Snapshot) Conflict() bool {
	return s.Left && s.Right
}
