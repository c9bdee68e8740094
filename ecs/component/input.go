package component

// Input is one frame of sampled player intent. Fire, Jump and weapon select
// are edges (true only on the frame they were pressed).
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	Jump         bool
	Fire         bool
	SelectWeapon WeaponID // 0 = no change

	LookDX float64
	LookDY float64

	PointerLocked bool
}

// Moving reports whether any movement key is held.
func (in Input) Moving() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}
