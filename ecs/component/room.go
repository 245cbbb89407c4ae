package component

// Room is the singleton encounter state. Active holds from load until the
// enemy set is empty; Loading guards against re-entrant loads.
type Room struct {
	ID      string
	Active  bool
	Loading bool
	Loads   int
}

var RoomComponent = NewComponent[Room]()
