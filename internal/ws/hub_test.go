package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishQueuesEncodedEvent(t *testing.T) {
	hub := NewHub()
	hub.Publish(Event{Type: "stock_update", Action: "product_created", Data: map[string]int{"pid": 3}})

	msg := <-hub.Broadcast
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(msg, &got))
	require.Equal(t, "stock_update", got["type"])
	require.Equal(t, "product_created", got["action"])
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	hub := NewHub()
	for i := 0; i < cap(hub.Broadcast)+10; i++ {
		hub.Publish(Event{Type: "stock_update", Action: "noise"})
	}
	require.Len(t, hub.Broadcast, cap(hub.Broadcast))
}

func TestStopEndsRun(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()
	hub.Stop()
	<-done
	require.Zero(t, hub.ClientCount())
}

func TestLeaveAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	hub.Stop()

	returned := make(chan struct{})
	go func() {
		hub.Leave(nil)
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Leave blocked after Stop")
	}
}
