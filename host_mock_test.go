package wirecube

// In-memory host doubles for controller tests.

type fakeHost struct {
	win *fakeWindow
}

func (h *fakeHost) Window() Window {
	if h.win == nil {
		return nil
	}
	return h.win
}

type fakeWindow struct {
	doc    *fakeDocument
	events *fakeEvents
	frames *fakeScheduler
}

func (w *fakeWindow) Document() Document {
	if w.doc == nil {
		return nil
	}
	return w.doc
}

func (w *fakeWindow) Events() EventSource  { return w.events }
func (w *fakeWindow) Scheduler() Scheduler { return w.frames }

type fakeDocument struct {
	body      *fakeContainer
	createErr error
	created   []*fakeCanvas
}

func (d *fakeDocument) CreateCanvas(width, height int) (Canvas, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	c := &fakeCanvas{width: width, height: height}
	d.created = append(d.created, c)
	return c, nil
}

func (d *fakeDocument) Body() Container {
	if d.body == nil {
		return nil
	}
	return d.body
}

type fakeContainer struct {
	appendErr error
	children  []*fakeCanvas
}

func (c *fakeContainer) AppendChild(child Canvas) error {
	if c.appendErr != nil {
		return c.appendErr
	}
	fc := child.(*fakeCanvas)
	fc.parent = c
	c.children = append(c.children, fc)
	return nil
}

type fakeCanvas struct {
	recordingSurface
	width, height int
	parent        *fakeContainer
	removeCalls   int
}

func (c *fakeCanvas) Width() int  { return c.width }
func (c *fakeCanvas) Height() int { return c.height }

func (c *fakeCanvas) Remove() {
	c.removeCalls++
	if c.parent == nil {
		return
	}
	for i, child := range c.parent.children {
		if child == c {
			c.parent.children = append(c.parent.children[:i], c.parent.children[i+1:]...)
			break
		}
	}
	c.parent = nil
}

type fakeListener struct {
	id ListenerID
	fn func(*KeyEvent)
}

type fakeEvents struct {
	nextID    ListenerID
	listeners map[string][]fakeListener
}

func (e *fakeEvents) AddEventListener(kind string, fn func(*KeyEvent)) ListenerID {
	if e.listeners == nil {
		e.listeners = make(map[string][]fakeListener)
	}
	e.nextID++
	e.listeners[kind] = append(e.listeners[kind], fakeListener{id: e.nextID, fn: fn})
	return e.nextID
}

func (e *fakeEvents) RemoveEventListener(kind string, id ListenerID) {
	list := e.listeners[kind]
	for i, l := range list {
		if l.id == id {
			e.listeners[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

func (e *fakeEvents) dispatch(kind, key string) *KeyEvent {
	ev := NewKeyEvent(key)
	for _, l := range append([]fakeListener(nil), e.listeners[kind]...) {
		l.fn(ev)
	}
	return ev
}

func (e *fakeEvents) count() int {
	return len(e.listeners[EventKeyDown]) + len(e.listeners[EventKeyUp])
}

type fakeFrame struct {
	id FrameID
	fn func()
}

// fakeScheduler queues frames until step. With ignoreCancel it keeps
// cancelled frames queued, like a host that fires a stale callback.
type fakeScheduler struct {
	nextID       FrameID
	queue        []fakeFrame
	requests     int
	cancels      []FrameID
	ignoreCancel bool
}

func (s *fakeScheduler) RequestAnimationFrame(fn func()) FrameID {
	s.nextID++
	s.requests++
	s.queue = append(s.queue, fakeFrame{id: s.nextID, fn: fn})
	return s.nextID
}

func (s *fakeScheduler) CancelAnimationFrame(id FrameID) {
	s.cancels = append(s.cancels, id)
	if s.ignoreCancel {
		return
	}
	for i, f := range s.queue {
		if f.id == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

func (s *fakeScheduler) step() {
	batch := s.queue
	s.queue = nil
	for _, f := range batch {
		f.fn()
	}
}

func newFakeHost() *fakeHost {
	return &fakeHost{win: &fakeWindow{
		doc:    &fakeDocument{body: &fakeContainer{}},
		events: &fakeEvents{},
		frames: &fakeScheduler{},
	}}
}
