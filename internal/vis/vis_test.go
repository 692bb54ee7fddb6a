package vis

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"
)

type testBody struct {
	id    string
	x, y  float64
	r     int
	color color.Color
}

func (b *testBody) ID() string                   { return b.id }
func (b *testBody) Position() (float64, float64) { return b.x, b.y }
func (b *testBody) Radius() int                  { return b.r }
func (b *testBody) Color() color.Color           { return b.color }

type call struct {
	op  string
	h   Handle
	box image.Rectangle
}

type textItem struct {
	x, y int
	text string
	font Font
}

// recordingSurface keeps the latest box per shape and every call made.
type recordingSurface struct {
	calls  []call
	boxes  map[Handle]image.Rectangle
	fills  map[Handle]color.Color
	texts  map[string]textItem
	next   Handle
	failOn string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{boxes: map[Handle]image.Rectangle{}, fills: map[Handle]color.Color{}, texts: map[string]textItem{}}
}

func (s *recordingSurface) CreateOval(box image.Rectangle, fill color.Color) (Handle, error) {
	if s.failOn == "oval" {
		return 0, errors.New("boom")
	}
	s.next++
	s.boxes[s.next] = box
	s.fills[s.next] = fill
	s.calls = append(s.calls, call{op: "oval", h: s.next, box: box})
	return s.next, nil
}

func (s *recordingSurface) CreateText(tag string, x, y int, text string, font Font) (Handle, error) {
	if s.failOn == "text" {
		return 0, errors.New("boom")
	}
	s.texts[tag] = textItem{x: x, y: y, text: text, font: font}
	s.calls = append(s.calls, call{op: "text"})
	return 0, nil
}

func (s *recordingSurface) Coords(h Handle, box image.Rectangle) error {
	if _, ok := s.boxes[h]; !ok {
		return fmt.Errorf("unknown handle %d", h)
	}
	s.boxes[h] = box
	s.calls = append(s.calls, call{op: "coords", h: h, box: box})
	return nil
}

func square800() Config {
	return Config{Width: 800, Height: 800, HeaderFont: Font{Family: "Arial", Size: 16}}
}

type captureLogger struct{ lines []string }

func (l *captureLogger) Infof(component, format string, args ...interface{}) {
	l.lines = append(l.lines, component+": "+fmt.Sprintf(format, args...))
}

func TestCalculateScaleFactor(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		maxDst float64
		want   float64
	}{
		{"square", square800(), 400, 0.8},
		{"wide window uses height", Config{Width: 1200, Height: 600}, 1.5e11, 0.4 * 600 / 1.5e11},
		{"tall window uses width", Config{Width: 300, Height: 900}, 2, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &captureLogger{}
			got, err := CalculateScaleFactor(tt.cfg, tt.maxDst, log)
			if err != nil {
				t.Fatalf("CalculateScaleFactor() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12*math.Abs(tt.want) {
				t.Fatalf("CalculateScaleFactor() = %v, want %v", got, tt.want)
			}
			if len(log.lines) != 1 || log.lines[0] != fmt.Sprintf("vis: scale factor: %v", got) {
				t.Fatalf("log lines = %q", log.lines)
			}
		})
	}
}

func TestCalculateScaleFactorRejectsBadInput(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := CalculateScaleFactor(square800(), d, nil); !errors.Is(err, ErrInvalidDistance) {
			t.Errorf("CalculateScaleFactor(%v) error = %v, want ErrInvalidDistance", d, err)
		}
	}
	if _, err := CalculateScaleFactor(Config{Width: 0, Height: 10}, 1, nil); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("zero width error = %v, want ErrInvalidWindow", err)
	}
}

func TestNewViewportRejectsBadScale(t *testing.T) {
	for _, s := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		if _, err := NewViewport(800, 800, s); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("NewViewport(scale=%v) error = %v, want ErrInvalidScale", s, err)
		}
	}
}

func TestScaleTruncatesTowardZero(t *testing.T) {
	v, err := NewViewport(801, 600, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		model float64
		wantX int
		wantY int
	}{
		{0, 400, 300},
		{3, 401, 299},    // 1.5 -> 1
		{-3, 399, 301},   // -1.5 -> -1
		{-0.9, 400, 300}, // -0.45 -> 0
		{4000, 2400, -1700},
	}
	for _, tt := range tests {
		if got := v.ScaleX(tt.model); got != tt.wantX {
			t.Errorf("ScaleX(%v) = %d, want %d", tt.model, got, tt.wantX)
		}
		if got := v.ScaleY(tt.model); got != tt.wantY {
			t.Errorf("ScaleY(%v) = %d, want %d", tt.model, got, tt.wantY)
		}
	}
}

func TestCreateStarImageCentre(t *testing.T) {
	surface := newRecordingSurface()
	a, err := NewAdapter(square800(), 1.0, surface)
	if err != nil {
		t.Fatal(err)
	}
	sun := &testBody{id: "sun", r: 5, color: color.RGBA{R: 255, G: 255, A: 255}}
	if err := a.CreateStarImage(sun); err != nil {
		t.Fatalf("CreateStarImage() error = %v", err)
	}
	h, ok := a.Handle(sun)
	if !ok {
		t.Fatal("no handle recorded for star")
	}
	if got, want := surface.boxes[h], image.Rect(395, 395, 405, 405); got != want {
		t.Fatalf("box = %v, want %v", got, want)
	}
	if surface.fills[h] != sun.color {
		t.Fatalf("fill = %v, want %v", surface.fills[h], sun.color)
	}
}

func TestCreateTwiceFails(t *testing.T) {
	surface := newRecordingSurface()
	a, _ := NewAdapter(square800(), 1.0, surface)
	earth := &testBody{id: "earth", x: 100, r: 3}
	if err := a.CreatePlanetImage(earth); err != nil {
		t.Fatal(err)
	}
	if err := a.CreatePlanetImage(earth); !errors.Is(err, ErrAlreadyDrawn) {
		t.Fatalf("second CreatePlanetImage() error = %v, want ErrAlreadyDrawn", err)
	}
	if len(surface.boxes) != 1 {
		t.Fatalf("shapes = %d, want 1", len(surface.boxes))
	}
}

func TestCreateSurfaceErrorLeavesNoHandle(t *testing.T) {
	surface := newRecordingSurface()
	surface.failOn = "oval"
	a, _ := NewAdapter(square800(), 1.0, surface)
	b := &testBody{id: "b", r: 1}
	if err := a.CreatePlanetImage(b); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := a.Handle(b); ok {
		t.Fatal("handle recorded despite failure")
	}
}

func TestUpdateObjectPositionMovesSameShape(t *testing.T) {
	surface := newRecordingSurface()
	a, _ := NewAdapter(square800(), 1.0, surface)
	sun := &testBody{id: "sun", r: 5}
	if err := a.CreateStarImage(sun); err != nil {
		t.Fatal(err)
	}
	h, _ := a.Handle(sun)

	sun.x = 50
	if err := a.UpdateObjectPosition(sun); err != nil {
		t.Fatalf("UpdateObjectPosition() error = %v", err)
	}
	if len(surface.boxes) != 1 {
		t.Fatalf("shapes = %d, want 1", len(surface.boxes))
	}
	if got, want := surface.boxes[h], image.Rect(445, 395, 455, 405); got != want {
		t.Fatalf("box = %v, want %v", got, want)
	}
}

func TestUpdateObjectPositionIdempotent(t *testing.T) {
	surface := newRecordingSurface()
	a, _ := NewAdapter(square800(), 2.0, surface)
	p := &testBody{id: "mars", x: 12.3, y: -45.6, r: 4}
	if err := a.CreatePlanetImage(p); err != nil {
		t.Fatal(err)
	}
	h, _ := a.Handle(p)
	if err := a.UpdateObjectPosition(p); err != nil {
		t.Fatal(err)
	}
	first := surface.boxes[h]
	if err := a.UpdateObjectPosition(p); err != nil {
		t.Fatal(err)
	}
	if second := surface.boxes[h]; second != first {
		t.Fatalf("second box = %v, first = %v", second, first)
	}
}

func TestUpdateObjectPositionOffScreen(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"left", -500, 0},
		{"right", 500, 0},
		{"top", 0, 500},
		{"bottom", 0, -500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newRecordingSurface()
			a, _ := NewAdapter(square800(), 1.0, surface)
			b := &testBody{id: "comet", r: 5}
			if err := a.CreatePlanetImage(b); err != nil {
				t.Fatal(err)
			}
			h, _ := a.Handle(b)
			surface.calls = nil

			b.x, b.y = tt.x, tt.y
			if err := a.UpdateObjectPosition(b); err != nil {
				t.Fatal(err)
			}
			want := image.Rect(400+int(tt.x)-5, 400-int(tt.y)-5, 400+int(tt.x)+5, 400-int(tt.y)+5)
			if len(surface.calls) != 2 {
				t.Fatalf("calls = %v, want park then move", surface.calls)
			}
			if got := surface.calls[0].box; got != image.Rect(805, 805, 810, 810) {
				t.Errorf("park box = %v", got)
			}
			if got := surface.boxes[h]; got != want {
				t.Fatalf("final box = %v, want %v", got, want)
			}
		})
	}
}

func TestUpdateObjectPositionOnScreenSingleMove(t *testing.T) {
	surface := newRecordingSurface()
	a, _ := NewAdapter(square800(), 1.0, surface)
	// Touching the left edge is still visible.
	b := &testBody{id: "edge", x: -405, r: 5}
	if err := a.CreatePlanetImage(b); err != nil {
		t.Fatal(err)
	}
	surface.calls = nil
	if err := a.UpdateObjectPosition(b); err != nil {
		t.Fatal(err)
	}
	if len(surface.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(surface.calls))
	}
}

func TestUpdateObjectPositionNotDrawn(t *testing.T) {
	a, _ := NewAdapter(square800(), 1.0, newRecordingSurface())
	if err := a.UpdateObjectPosition(&testBody{id: "ghost"}); !errors.Is(err, ErrNotDrawn) {
		t.Fatalf("error = %v, want ErrNotDrawn", err)
	}
}

func TestUpdateSystemNameReplaces(t *testing.T) {
	surface := newRecordingSurface()
	a, _ := NewAdapter(square800(), 1.0, surface)
	if err := a.UpdateSystemName("Solar System"); err != nil {
		t.Fatal(err)
	}
	if err := a.UpdateSystemName("Double Star"); err != nil {
		t.Fatal(err)
	}
	if len(surface.texts) != 1 {
		t.Fatalf("text elements = %d, want 1", len(surface.texts))
	}
	got := surface.texts[HeaderTag]
	want := textItem{x: 30, y: 80, text: "Double Star", font: Font{Family: "Arial", Size: 16}}
	if got != want {
		t.Fatalf("header = %+v, want %+v", got, want)
	}
}

func TestNewAdapterRequiresSurface(t *testing.T) {
	if _, err := NewAdapter(square800(), 1.0, nil); err == nil {
		t.Fatal("expected error for nil surface")
	}
}
