package space

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// LoadSystemFile reads bodies from the system file at path.
func LoadSystemFile(path string) ([]*Body, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	bodies, err := LoadSystem(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bodies, nil
}

// LoadSystem parses one body per line:
//
//	Star   <R> <color> <mass> <x> <y> <Vx> <Vy>
//	Planet <R> <color> <mass> <x> <y> <Vx> <Vy>
//
// Blank lines and lines starting with # are ignored. Bodies are named
// "<kind>-<n>" in file order.
func LoadSystem(r io.Reader) ([]*Body, error) {
	var bodies []*Body
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		body, err := parseBody(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		body.Name = fmt.Sprintf("%s-%d", body.Kind, len(bodies))
		bodies = append(bodies, body)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bodies, nil
}

func parseBody(fields []string) (*Body, error) {
	if len(fields) != 8 {
		return nil, fmt.Errorf("want 8 fields, got %d", len(fields))
	}

	body := &Body{}
	switch strings.ToLower(fields[0]) {
	case "star":
		body.Kind = Star
	case "planet":
		body.Kind = Planet
	default:
		return nil, fmt.Errorf("unknown body kind %q", fields[0])
	}

	radius, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("radius: %w", err)
	}
	if radius < 0 {
		return nil, fmt.Errorf("radius must not be negative (got %d)", radius)
	}
	body.R = radius

	fill, err := ParseColor(fields[2])
	if err != nil {
		return nil, err
	}
	body.Fill = fill

	nums := make([]float64, 5)
	for i, name := range []string{"mass", "x", "y", "Vx", "Vy"} {
		v, err := strconv.ParseFloat(fields[3+i], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		nums[i] = v
	}
	body.Mass, body.X, body.Y, body.Vx, body.Vy = nums[0], nums[1], nums[2], nums[3], nums[4]
	return body, nil
}

// ParseColor accepts an SVG/Tk colour name ("yellow", "DarkBlue") or a
// "#rrggbb" literal.
func ParseColor(raw string) (color.RGBA, error) {
	if strings.HasPrefix(raw, "#") {
		b, err := hex.DecodeString(raw[1:])
		if err != nil || len(b) != 3 {
			return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", raw)
		}
		return color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
	}
	c, ok := colornames.Map[strings.ToLower(raw)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", raw)
	}
	return c, nil
}
