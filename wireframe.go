package wirecube

// Wireframe is a vertex list plus edges given as vertex index pairs.
type Wireframe struct {
	Vertices []Vec4
	Edges    [][2]int
}

var cubeCorners = [8][3]int{
	{-1, -1, -1}, // 0
	{1, -1, -1},  // 1
	{1, 1, -1},   // 2
	{-1, 1, -1},  // 3
	{-1, -1, 1},  // 4
	{1, -1, 1},   // 5
	{1, 1, 1},    // 6
	{-1, 1, 1},   // 7
}

var cubeEdges = [12][2]int{
	// back face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// connecting edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Cube returns the cube wireframe. Each call returns fresh slices so callers
// cannot change the shared model.
func Cube() Wireframe {
	w := Wireframe{
		Vertices: make([]Vec4, len(cubeCorners)),
		Edges:    make([][2]int, len(cubeEdges)),
	}
	for i, c := range cubeCorners {
		w.Vertices[i] = NewPointInt(c[0], c[1], c[2])
	}
	copy(w.Edges, cubeEdges[:])
	return w
}
