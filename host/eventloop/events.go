// Package eventloop holds the single-threaded key event source and
// animation frame scheduler shared by the wirecube hosts.
package eventloop

import "github.com/smasonuk/wirecube"

type listener struct {
	id wirecube.ListenerID
	fn func(*wirecube.KeyEvent)
}

// Events is a synchronous key event source.
type Events struct {
	nextID    wirecube.ListenerID
	listeners map[string][]listener
}

func NewEvents() *Events {
	return &Events{listeners: make(map[string][]listener)}
}

func (e *Events) AddEventListener(kind string, fn func(*wirecube.KeyEvent)) wirecube.ListenerID {
	e.nextID++
	e.listeners[kind] = append(e.listeners[kind], listener{id: e.nextID, fn: fn})
	return e.nextID
}

func (e *Events) RemoveEventListener(kind string, id wirecube.ListenerID) {
	list := e.listeners[kind]
	for i, l := range list {
		if l.id == id {
			e.listeners[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// ListenerCount reports how many listeners are subscribed to kind.
func (e *Events) ListenerCount(kind string) int {
	return len(e.listeners[kind])
}

// Dispatch delivers ev to every listener of kind.
func (e *Events) Dispatch(kind string, ev *wirecube.KeyEvent) {
	list := append([]listener(nil), e.listeners[kind]...)
	for _, l := range list {
		l.fn(ev)
	}
}

// KeyDown dispatches a key-down for key and returns the event so callers
// can check whether its default was prevented.
func (e *Events) KeyDown(key string) *wirecube.KeyEvent {
	ev := wirecube.NewKeyEvent(key)
	e.Dispatch(wirecube.EventKeyDown, ev)
	return ev
}

func (e *Events) KeyUp(key string) *wirecube.KeyEvent {
	ev := wirecube.NewKeyEvent(key)
	e.Dispatch(wirecube.EventKeyUp, ev)
	return ev
}
