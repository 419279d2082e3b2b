package lessons

import (
	"fmt"
	"structs"

	"github.com/oliverbestmann/learnwebgpu/glm"
)

// Vertex is the layout of a single vertex in the vertex buffer,
// matching VertexInput in the shaders.
type Vertex struct {
	_ structs.HostLayout

	Position glm.Vec2f
	Color    glm.Vec3f
}

type Geometry struct {
	Vertices []Vertex

	// optional, vertices are drawn in order if empty
	Indices []uint16
}

// Validate checks that the geometry describes a list of triangles.
func (g Geometry) Validate() error {
	if len(g.Vertices) == 0 {
		return fmt.Errorf("geometry has no vertices")
	}

	if len(g.Indices) == 0 {
		if len(g.Vertices)%3 != 0 {
			return fmt.Errorf("vertex count %d is not a multiple of 3", len(g.Vertices))
		}

		return nil
	}

	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(g.Indices))
	}

	for pos, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			return fmt.Errorf("index %d at position %d out of range, have %d vertices", idx, pos, len(g.Vertices))
		}
	}

	return nil
}

func vertex(x, y, r, g, b float32) Vertex {
	return Vertex{
		Position: glm.Vec2f{x, y},
		Color:    glm.Vec3f{r, g, b},
	}
}

// TwoTriangles are drawn without an index buffer.
var TwoTriangles = Geometry{
	Vertices: []Vertex{
		vertex(-0.5, -0.5, 1.0, 0.0, 0.0),
		vertex(+0.5, -0.5, 0.0, 1.0, 0.0),
		vertex(+0.0, +0.5, 0.0, 0.0, 1.0),

		vertex(-0.55, -0.5, 1.0, 1.0, 0.0),
		vertex(-0.05, +0.5, 1.0, 0.0, 1.0),
		vertex(-0.55, +0.5, 0.0, 1.0, 1.0),
	},
}

// House shares the corners of its walls between the triangles. It has
// nine indices, 18 bytes that are padded to the copy alignment on upload.
var House = Geometry{
	Vertices: []Vertex{
		vertex(-0.5, -0.5, 1.0, 0.0, 0.0),
		vertex(+0.5, -0.5, 0.0, 1.0, 0.0),
		vertex(+0.5, +0.2, 0.0, 0.0, 1.0),
		vertex(-0.5, +0.2, 1.0, 1.0, 0.0),
		vertex(+0.0, +0.7, 1.0, 0.5, 0.0),
	},

	Indices: []uint16{
		0, 1, 2,
		0, 2, 3,
		3, 2, 4,
	},
}
