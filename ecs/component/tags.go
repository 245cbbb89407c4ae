package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Obstacle marks a static barrier placed inside the room.
type Obstacle struct{}

var ObstacleComponent = NewComponent[Obstacle]()

// Wall marks a segment of the outer perimeter.
type Wall struct{}

var WallComponent = NewComponent[Wall]()

// CoinSparkle marks the transient visual spawned by a coin drop.
type CoinSparkle struct{}

var CoinSparkleComponent = NewComponent[CoinSparkle]()
