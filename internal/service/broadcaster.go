package service

import "go-ims/internal/ws"

// Broadcaster pushes stock events to live clients. *ws.Hub satisfies it.
type Broadcaster interface {
	Publish(event ws.Event)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Publish(ws.Event) {}

// NopBroadcaster discards every event.
func NopBroadcaster() Broadcaster {
	return nopBroadcaster{}
}
