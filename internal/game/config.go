package game

import "time"

// OpenGL context.
const (
	GLMajor = 4
	GLMinor = 1
)

// Frame loop.
const (
	MaxFrameDt    = 0.1 // seconds; longer frames are clamped
	StatsInterval = 5 * time.Second
)

// Vertex layout shared by the tile and line batches:
// pos(2) + uv(2) + colour(4) floats, six vertices per quad.
const (
	vertexFloats = 8
	quadVertices = 6
	quadFloats   = vertexFloats * quadVertices

	batchQuads = 4096 // initial capacity of each streamed batch
)
