package component

type SessionState int

const (
	SessionPlaying SessionState = iota
	SessionComplete
	SessionGameOver
)

func (s SessionState) String() string {
	switch s {
	case SessionComplete:
		return "complete"
	case SessionGameOver:
		return "game_over"
	default:
		return "playing"
	}
}

// Session tracks whether the level is still running. Complete and
// GameOver are terminal.
type Session struct {
	State   SessionState
	EndTick uint64
}

var SessionComponent = NewComponent[Session]()

func (s *Session) Over() bool {
	return s != nil && s.State != SessionPlaying
}

// End moves the session to a terminal state once; later calls are ignored.
func (s *Session) End(state SessionState, tick uint64) bool {
	if s == nil || s.Over() || state == SessionPlaying {
		return false
	}
	s.State = state
	s.EndTick = tick
	return true
}
