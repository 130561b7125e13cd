package model

// Direction is the per-bar breakout signal: +1 long, -1 short, 0 flat.
type Direction int

const (
	Short Direction = -1
	Flat  Direction = 0
	Long  Direction = 1
)

// Action is a human-friendly label for a direction.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionShort Action = "SHORT"
	ActionFlat  Action = "FLAT"
	ActionLong  Action = "LONG"
)

func ActionFromDirection(d Direction) Action {
	switch {
	case d < 0:
		return ActionShort
	case d > 0:
		return ActionLong
	default:
		return ActionFlat
	}
}

// SignalPoint is the derived channel state for one bar. BoxHigh and BoxLow
// are meaningful only when HasBox is true, i.e. the trailing window before
// the bar is complete. A point without a box is always flat.
type SignalPoint struct {
	BoxHigh   float64
	BoxLow    float64
	HasBox    bool
	Direction Direction
}
