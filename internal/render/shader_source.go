package render

// cellShaderSource is the Kage program painting alive cells. Each cell is
// drawn as one quad; the fragment stage returns the CellColor uniform.
var cellShaderSource = []byte(`//go:build ignore

package main

var CellColor vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return CellColor
}
`)

// CellShaderSource returns the Kage source of the cell program.
func CellShaderSource() []byte {
	return append([]byte(nil), cellShaderSource...)
}

// cellColorUniform is CellColor as premultiplied floats in [0, 1].
func cellColorUniform() []float32 {
	r, g, b, a := CellColor.RGBA()
	return []float32{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(b) / 0xffff,
		float32(a) / 0xffff,
	}
}
