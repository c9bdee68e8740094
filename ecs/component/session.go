package component

// Session is the game-state resource. Active is false in the menu and while
// paused; GameOver is terminal until the loop resets.
type Session struct {
	Active   bool
	GameOver bool
	// Started is set once the player has locked the pointer for the first time.
	Started bool
	// StartedAt is the timestamp (ms) of the current run, used by the director.
	StartedAt float64
}

// Simulating reports whether the per-frame simulation should run.
func (s Session) Simulating() bool {
	return s.Active && !s.GameOver
}
