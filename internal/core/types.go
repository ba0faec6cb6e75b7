package core

// Ticker is anything that advances by one generation per call.
type Ticker interface {
	Tick()
}
