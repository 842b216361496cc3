package wirecube

// EventHandler is a key listener subscription. It subscribes when created
// and unsubscribes on Close.
type EventHandler struct {
	target EventSource
	kind   string
	id     ListenerID
	closed bool
}

func NewEventHandler(target EventSource, kind string, fn func(*KeyEvent)) *EventHandler {
	return &EventHandler{
		target: target,
		kind:   kind,
		id:     target.AddEventListener(kind, fn),
	}
}

// Close removes the listener. Further calls do nothing.
func (h *EventHandler) Close() {
	if h == nil || h.closed {
		return
	}
	h.closed = true
	h.target.RemoveEventListener(h.kind, h.id)
}
