package falldown

// Loop is the scheduler side of the session lifecycle. Each Tick is one
// scheduled frame: an active session advances, and a session that ended on
// the previous frame is restarted instead.
type Loop struct {
	session  *Session
	restarts int
}

// NewLoop wraps a session.
func NewLoop(s *Session) *Loop {
	return &Loop{session: s}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Restarts returns how many sessions have ended so far.
func (l *Loop) Restarts() int {
	return l.restarts
}

// Tick runs one scheduled frame.
func (l *Loop) Tick() FrameResult {
	if l.session.GameOver() {
		final := l.session.Score()
		l.session.Restart()
		l.restarts++
		return FrameResult{
			State:      l.session.State(),
			Signal:     Continue,
			Restarted:  true,
			FinalScore: final,
		}
	}
	return l.session.Advance()
}
