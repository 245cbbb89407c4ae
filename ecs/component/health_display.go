package component

type HeartState uint8

const (
	HeartEmpty HeartState = iota
	HeartHalf
	HeartFull
)

func (s HeartState) String() string {
	switch s {
	case HeartFull:
		return "full"
	case HeartHalf:
		return "half"
	default:
		return "empty"
	}
}

// HeartSlots is the number of hearts shown; each heart is two health points.
const HeartSlots = 3

// HeartDisplay is derived from Player.Health and never read back into it.
type HeartDisplay struct {
	Slots [HeartSlots]HeartState
}

var HeartDisplayComponent = NewComponent[HeartDisplay]()
