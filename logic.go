package wirecube

// Logic is the per-frame behaviour driven by a Game.
type Logic interface {
	// Setup is called on every (re)start of the loop.
	Setup()
	OnKeyDown(e *KeyEvent)
	OnKeyUp(e *KeyEvent)
	// Update runs once per tick before Draw.
	Update()
	Draw(s Surface)
}

// CubeLogic spins the cube wireframe under arrow key control.
type CubeLogic struct {
	motion    *Motion
	projector *Projector
	model     Wireframe

	// scratch space for projected vertices
	xs, ys []float64
}

func NewCubeLogic(cfg ProjectionConfig) *CubeLogic {
	model := Cube()
	return &CubeLogic{
		motion:    NewMotion(),
		projector: NewProjector(cfg),
		model:     model,
		xs:        make([]float64, len(model.Vertices)),
		ys:        make([]float64, len(model.Vertices)),
	}
}

func (c *CubeLogic) Motion() *Motion       { return c.motion }
func (c *CubeLogic) Projector() *Projector { return c.projector }

func (c *CubeLogic) Setup()                { c.motion.Reset() }
func (c *CubeLogic) OnKeyDown(e *KeyEvent) { c.motion.OnKeyDown(e) }
func (c *CubeLogic) OnKeyUp(e *KeyEvent)   { c.motion.OnKeyUp(e) }
func (c *CubeLogic) Update()               { c.motion.Update() }

// Draw clears the surface then draws every edge followed by every vertex
// marker at the current angles.
func (c *CubeLogic) Draw(s Surface) {
	cfg := c.projector.Config()
	ClearSurface(s, cfg.Width, cfg.Height)

	a := c.motion.Angles()
	for i, v := range c.model.Vertices {
		c.xs[i], c.ys[i] = c.projector.Project(v, a.X, a.Y, a.Z)
	}

	for _, e := range c.model.Edges {
		s.StrokeLine(c.xs[e[0]], c.ys[e[0]], c.xs[e[1]], c.ys[e[1]], ColorLine)
	}
	for i := range c.model.Vertices {
		s.FillCircle(c.xs[i], c.ys[i], PointRadius, ColorPoint)
	}
}
