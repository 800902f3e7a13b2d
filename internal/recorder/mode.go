package recorder

// Mode is the recorder's current interaction state. Exactly one mode is
// active at a time.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAwaitingSecondPoint
	ModeFreehand
	ModePlacingController
	ModePlacingPowerSupply
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAwaitingSecondPoint:
		return "awaiting-second-point"
	case ModeFreehand:
		return "freehand"
	case ModePlacingController:
		return "placing-controller"
	case ModePlacingPowerSupply:
		return "placing-power-supply"
	default:
		return "unknown"
	}
}

// Drawing reports whether a stroke is in progress.
func (m Mode) Drawing() bool {
	return m == ModeAwaitingSecondPoint || m == ModeFreehand
}

// Placing reports whether the next pointer-down places a fixture.
func (m Mode) Placing() bool {
	return m == ModePlacingController || m == ModePlacingPowerSupply
}
