package component

type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (s DoorState) String() string {
	if s == DoorOpen {
		return "open"
	}
	return "closed"
}

// Door gates progression out of the room.
type Door struct {
	State DoorState
}

var DoorComponent = NewComponent[Door]()
