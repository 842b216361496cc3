package wirecube

// Lifecycle notification names.
const (
	// EventRunning fires on both Idle->Running and Running->Idle. Listeners
	// read Game.IsRunning to tell them apart.
	EventRunning = "running"
	// EventFrame fires once per tick before drawing.
	EventFrame = "frame"
)

type lifecycleListener struct {
	id ListenerID
	fn func(*Game)
}

type lifecycleEvents struct {
	nextID    ListenerID
	listeners map[string][]lifecycleListener
}

func (e *lifecycleEvents) add(name string, fn func(*Game)) ListenerID {
	if e.listeners == nil {
		e.listeners = make(map[string][]lifecycleListener)
	}
	e.nextID++
	e.listeners[name] = append(e.listeners[name], lifecycleListener{id: e.nextID, fn: fn})
	return e.nextID
}

func (e *lifecycleEvents) remove(name string, id ListenerID) {
	list := e.listeners[name]
	for i, l := range list {
		if l.id == id {
			e.listeners[name] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

func (e *lifecycleEvents) dispatch(name string, g *Game) {
	// copy so listeners may unsubscribe while being called
	list := append([]lifecycleListener(nil), e.listeners[name]...)
	for _, l := range list {
		l.fn(g)
	}
}
