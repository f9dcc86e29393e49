package services

// InvalidationBus carries the single "meals listing changed" event to
// whatever fronts the listing — the in-process cache, the websocket hub.
// The event has no payload by contract; consumers refetch, they don't diff.
type InvalidationBus struct {
	consumers []func()
}

func NewInvalidationBus() *InvalidationBus {
	return &InvalidationBus{}
}

// Subscribe registers a consumer. Wiring happens once in main, before the
// router serves; the bus takes no lock for that reason.
func (b *InvalidationBus) Subscribe(fn func()) {
	b.consumers = append(b.consumers, fn)
}

// Notify tells every consumer the meals listing changed.
func (b *InvalidationBus) Notify() {
	for _, fn := range b.consumers {
		fn()
	}
}
