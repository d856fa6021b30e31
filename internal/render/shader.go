//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// NewCellShader compiles the cell program.
func NewCellShader() (*ebiten.Shader, error) {
	return newShader(CellShaderSource())
}

func newShader(src []byte) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, errors.Wrapf(ErrShaderSetup, "compile cell shader: %v", err)
	}
	return s, nil
}
