package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second int
	bus.Subscribe(StoreChanged, func() { first++ })
	bus.Subscribe(StoreChanged, func() { second++ })

	bus.Publish(StoreChanged)
	bus.Publish(StoreChanged)

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	var calls int
	unsubscribe := bus.Subscribe(StoreChanged, func() { calls++ })

	bus.Publish(StoreChanged)
	unsubscribe()
	bus.Publish(StoreChanged)

	assert.Equal(t, 1, calls)
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() {
		bus.Publish(StoreChanged)
	})
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	var survived int
	bus.Subscribe(StoreChanged, func() { panic("boom") })
	bus.Subscribe(StoreChanged, func() { survived++ })

	assert.NotPanics(t, func() {
		bus.Publish(StoreChanged)
	})
	assert.Equal(t, 1, survived)
}

func TestBus_TopicsAreIndependent(t *testing.T) {
	bus := NewBus()

	var calls int
	bus.Subscribe(Topic("other"), func() { calls++ })

	bus.Publish(StoreChanged)

	assert.Zero(t, calls)
}
