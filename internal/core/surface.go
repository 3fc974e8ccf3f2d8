package core

import (
	"errors"
	"fmt"
	"time"
)

// Frame is a read-only view of a surface's pixels handed to a presenter.
// Pix is row-major; row 0 is the top of the display.
type Frame struct {
	Width  int
	Height int
	Pix    []Color
}

// At returns the pixel at physical column x, row y (row 0 = top).
func (f Frame) At(x, y int) Color {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Width+x]
}

// Presenter pushes frames to a display. Implementations must not retain
// Frame.Pix after Present returns.
type Presenter interface {
	// Present displays the frame. An error is fatal for the frame loop.
	Present(f Frame) error

	// Resize tells the presenter the physical output size changed.
	Resize(width, height int)
}

// Surface is a fixed-size logical pixel grid, independent of the physical
// window size. Logical coordinates have the origin at the bottom-left.
type Surface struct {
	width      int
	height     int
	pix        []Color
	presenter  Presenter
	frameTimes []time.Time
	clock      func() time.Time
}

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithClock overrides the time source used for frame timing.
func WithClock(clock func() time.Time) SurfaceOption {
	return func(s *Surface) {
		s.clock = clock
	}
}

// NewSurface allocates a width x height surface presented through p.
func NewSurface(width, height int, p Presenter, opts ...SurfaceOption) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface size %dx%d must be positive", width, height)
	}
	if p == nil {
		return nil, errors.New("surface needs a presenter")
	}
	s := &Surface{
		width:     width,
		height:    height,
		pix:       make([]Color, width*height),
		presenter: p,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Width returns the logical width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the logical height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Clear sets every pixel to c.
func (s *Surface) Clear(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// SetPixel writes one pixel in logical coordinates.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pix[s.width*(s.height-y-1)+x] = c
}

// Pixel returns the pixel at logical (x, y), or 0 when out of bounds.
func (s *Surface) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.pix[s.width*(s.height-y-1)+x]
}

// FillRectangle fills h rows of w pixels, starting at logical row y0 and
// walking down the display. x0 and y0 are clamped into the surface and h is
// clamped to y0, so a rectangle anchored near the top edge is truncated.
// Rows and columns past the buffer edges are clipped.
func (s *Surface) FillRectangle(x0, y0, w, h int, c Color) {
	x0 = Clamp(x0, 0, s.width)
	y0 = Clamp(y0, 0, s.height)
	if h > y0 {
		h = y0
	}
	if w > s.width-x0 {
		w = s.width - x0
	}
	if w <= 0 || h <= 0 {
		return
	}

	row := s.height - y0 - 1
	for i := 0; i < h; i++ {
		if row >= 0 && row < s.height {
			off := row*s.width + x0
			line := s.pix[off : off+w]
			for j := range line {
				line[j] = c
			}
		}
		row++
	}
}

// ResizeSurface changes how the logical grid is stretched onto the physical
// output. The logical size never changes.
func (s *Surface) ResizeSurface(physicalWidth, physicalHeight int) {
	s.presenter.Resize(physicalWidth, physicalHeight)
}

// Present pushes the current pixels to the presenter and records the
// presentation time for FPS tracking.
func (s *Surface) Present() error {
	s.recordFrame()
	if err := s.presenter.Present(s.Frame()); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// FPS returns the number of presentations within the trailing second.
func (s *Surface) FPS() float32 {
	s.prune(s.clock())
	return float32(len(s.frameTimes))
}

// Frame returns the current pixel buffer. The slice is shared with the surface.
func (s *Surface) Frame() Frame {
	return Frame{Width: s.width, Height: s.height, Pix: s.pix}
}

func (s *Surface) recordFrame() {
	now := s.clock()
	s.frameTimes = append(s.frameTimes, now)
	s.prune(now)
}

// prune drops frame times older than one second before now.
func (s *Surface) prune(now time.Time) {
	cutoff := now.Add(-time.Second)
	drop := 0
	for drop < len(s.frameTimes) && s.frameTimes[drop].Before(cutoff) {
		drop++
	}
	if drop > 0 {
		s.frameTimes = append(s.frameTimes[:0], s.frameTimes[drop:]...)
	}
}
