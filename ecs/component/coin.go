package component

type CoinCounter struct {
	Count int
}

var CoinCounterComponent = NewComponent[CoinCounter]()
