package scenes

import (
	"image"
	"image/color"
	"testing"

	"github.com/rook-computer/solarvis/internal/render"
	"github.com/rook-computer/solarvis/internal/space"
	"github.com/rook-computer/solarvis/internal/state"
	"github.com/rook-computer/solarvis/internal/vis"
)

func TestSystemSceneCreatesThenMoves(t *testing.T) {
	canvas := render.NewCanvas(800, 800, nil)
	scene := NewSystemScene(vis.DefaultConfig(), 1.0, nil)

	snap := state.State{
		SystemName: "Solar System",
		Bodies: []space.Body{
			{Name: "star-0", Kind: space.Star, R: 5, Fill: color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}},
			{Name: "planet-1", Kind: space.Planet, R: 2, X: 100},
		},
	}
	if err := scene.Update(canvas, snap); err != nil {
		t.Fatalf("first Update() error = %v", err)
	}
	// Two circles and the header.
	if canvas.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", canvas.Len())
	}

	snap.Bodies[1].X = 0
	snap.Bodies[1].Y = 100
	snap.SystemName = "Renamed"
	if err := scene.Update(canvas, snap); err != nil {
		t.Fatalf("second Update() error = %v", err)
	}
	if canvas.Len() != 3 {
		t.Fatalf("Len() after move = %d, want 3", canvas.Len())
	}
	h, ok := scene.Adapter().Handle(&snap.Bodies[1])
	if !ok {
		t.Fatal("planet has no handle")
	}
	if got, _ := canvas.Bounds(h); got != image.Rect(398, 298, 402, 302) {
		t.Fatalf("planet box = %v", got)
	}
	if got, _ := canvas.Text(vis.HeaderTag); got != "Renamed" {
		t.Fatalf("header = %q", got)
	}
}

func TestSystemSceneNeedsCanvas(t *testing.T) {
	scene := NewSystemScene(vis.DefaultConfig(), 1.0, nil)
	if err := scene.Update(nil, state.State{}); err == nil {
		t.Fatal("expected error without canvas")
	}
}
