package component

// Player holds the vitality of the player. Health moves only downward within
// a life; Defeated is terminal.
type Player struct {
	Health         int
	MaxHealth      int
	LastDamageTime int64
	Speed          float64
	Defeated       bool
	DefeatedAt     int64
}

var PlayerComponent = NewComponent[Player]()
