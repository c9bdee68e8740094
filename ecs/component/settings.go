package component

// Settings are the runtime-adjustable parameters. They are never persisted.
type Settings struct {
	Sensitivity         float64
	MoveSpeedMultiplier float64
}
