// Package window runs the snake game in a desktop window with Ebitengine.
// Each logical pixel is one texel; the window stretches the image to its
// physical size.
package window

import (
	"encoding/binary"

	"github.com/vovakirdan/snake-pixels/internal/core"
)

// Presenter keeps the last presented frame as RGBA bytes ready for upload.
type Presenter struct {
	width  int
	height int
	pix    []byte

	// Physical window size, in device-independent pixels.
	outW int
	outH int

	presented uint64
}

// NewPresenter creates an empty presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Present copies f into the RGBA buffer.
func (p *Presenter) Present(f core.Frame) error {
	if n := f.Width * f.Height * 4; len(p.pix) != n {
		p.pix = make([]byte, n)
	}
	p.width = f.Width
	p.height = f.Height
	for i, c := range f.Pix {
		binary.LittleEndian.PutUint32(p.pix[i*4:], uint32(c))
	}
	p.presented++
	return nil
}

// Resize records the physical window size; the logical size is unchanged.
func (p *Presenter) Resize(width, height int) {
	p.outW = width
	p.outH = height
}

// Pixels returns the RGBA bytes of the last frame, row 0 at the top.
func (p *Presenter) Pixels() []byte {
	return p.pix
}

// Size returns the logical size of the last frame.
func (p *Presenter) Size() (int, int) {
	return p.width, p.height
}

// OutputSize returns the last physical size reported by Resize.
func (p *Presenter) OutputSize() (int, int) {
	return p.outW, p.outH
}

// Presented returns how many frames have been presented.
func (p *Presenter) Presented() uint64 {
	return p.presented
}
