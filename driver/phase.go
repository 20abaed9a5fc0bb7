package driver

import "gloom/model"

type Phase int

const (
	NotStarted Phase = iota
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

func phaseOf(s *model.GameState) Phase {
	switch {
	case !s.Started:
		return NotStarted
	case s.Over:
		return GameOver
	default:
		return Running
	}
}

// Summary is what the host shell learns about a session.
type Summary struct {
	Session string
	Score   int
	Outcome model.Outcome
}
