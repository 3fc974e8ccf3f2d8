package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/snake-pixels/internal/config"
	"github.com/vovakirdan/snake-pixels/internal/core"
	"github.com/vovakirdan/snake-pixels/internal/driver"
)

func TestPresenterRGBA(t *testing.T) {
	p := NewPresenter()
	f := core.Frame{
		Width:  2,
		Height: 1,
		Pix:    []core.Color{core.RGB(0x48, 0xB2, 0xE8), core.RGB(1, 2, 3)},
	}

	if err := p.Present(f); err != nil {
		t.Fatalf("Present() error: %v", err)
	}

	expected := []byte{0x48, 0xB2, 0xE8, 0xFF, 1, 2, 3, 0xFF}
	pix := p.Pixels()
	if len(pix) != len(expected) {
		t.Fatalf("len(Pixels()) = %d, expected %d", len(pix), len(expected))
	}
	for i := range expected {
		if pix[i] != expected[i] {
			t.Errorf("Pixels()[%d] = %#x, expected %#x", i, pix[i], expected[i])
		}
	}
	if w, h := p.Size(); w != 2 || h != 1 {
		t.Errorf("Size() = %dx%d, expected 2x1", w, h)
	}
	if p.Presented() != 1 {
		t.Errorf("Presented() = %d, expected 1", p.Presented())
	}
}

func TestPresenterResizeKeepsFrame(t *testing.T) {
	p := NewPresenter()
	if err := p.Present(core.Frame{Width: 1, Height: 1, Pix: []core.Color{core.RGB(9, 9, 9)}}); err != nil {
		t.Fatal(err)
	}

	p.Resize(640, 480)

	if w, h := p.OutputSize(); w != 640 || h != 480 {
		t.Errorf("OutputSize() = %dx%d, expected 640x480", w, h)
	}
	if w, h := p.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, expected 1x1 after resize", w, h)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key      ebiten.Key
		expected core.Key
	}{
		{ebiten.KeyArrowUp, core.KeyUp},
		{ebiten.KeyW, core.KeyUp},
		{ebiten.KeyArrowDown, core.KeyDown},
		{ebiten.KeyS, core.KeyDown},
		{ebiten.KeyArrowLeft, core.KeyLeft},
		{ebiten.KeyA, core.KeyLeft},
		{ebiten.KeyArrowRight, core.KeyRight},
		{ebiten.KeyD, core.KeyRight},
		{ebiten.KeyEscape, core.KeyEscape},
		{ebiten.KeySpace, core.KeyOther},
	}

	for _, tc := range tests {
		if got := translateKey(tc.key); got != tc.expected {
			t.Errorf("translateKey(%v) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestLayoutReportsResize(t *testing.T) {
	p := NewPresenter()
	d, err := driver.Build(config.DefaultSnakeConfig(), core.RuntimeConfig{Seed: 1}, p, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := newHostGame(d, p)

	w, h := g.Layout(800, 600)
	if w != 15 || h != 15 {
		t.Errorf("Layout() = %dx%d, expected logical 15x15", w, h)
	}
	if ow, oh := p.OutputSize(); ow != 800 || oh != 600 {
		t.Errorf("OutputSize() = %dx%d, expected 800x600", ow, oh)
	}

	p.Resize(0, 0)
	g.Layout(800, 600)
	if ow, _ := p.OutputSize(); ow != 0 {
		t.Error("Layout() should only report changed sizes")
	}
	if d.Flow() != driver.FlowContinue {
		t.Errorf("Flow() = %v, expected continue", d.Flow())
	}
}
