//go:build !ebiten

package render

import "github.com/pkg/errors"

func init() {
	Register("window", func(w, h int, opts map[string]string) (Surface, error) {
		return nil, errors.Wrap(ErrContextUnavailable, "window surface requires building with the 'ebiten' tag")
	})
}
