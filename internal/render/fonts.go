package render

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontSet measures and draws labels with the embedded Go Regular font,
// whatever family is requested. If the font cannot be parsed it falls back
// to basicfont at its single size.
type fontSet struct {
	otFont *opentype.Font
	ttFont *truetype.Font
	faces  map[int]font.Face
	logger logger
}

func newFontSet(l logger) *fontSet {
	fs := &fontSet{faces: make(map[int]font.Face), logger: l}
	otFont, err := opentype.Parse(goregular.TTF)
	if err != nil {
		fs.errorf("font parse failed, using basicfont: %v", err)
	} else {
		fs.otFont = otFont
	}
	// Also parse with truetype for the freetype context.
	if tt, err := truetype.Parse(goregular.TTF); err != nil {
		fs.errorf("truetype parse failed: %v", err)
	} else {
		fs.ttFont = tt
	}
	return fs
}

func (fs *fontSet) face(size int) font.Face {
	if face, ok := fs.faces[size]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	if fs.otFont != nil {
		f, err := opentype.NewFace(fs.otFont, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			fs.errorf("font face create failed at %dpt, using basicfont: %v", size, err)
		} else {
			face = f
		}
	}
	fs.faces[size] = face
	return face
}

// drawCentered draws text centred horizontally and vertically on (x, y).
func (fs *fontSet) drawCentered(dst *image.RGBA, text string, x, y, size int, fg color.Color) {
	face := fs.face(size)
	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	left := x - width/2
	baseline := y + (metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2

	if fs.ttFont == nil {
		drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face, Dot: fixed.P(left, baseline)}
		drawer.DrawString(text)
		return
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(fs.ttFont)
	ctx.SetFontSize(float64(size))
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(fg))
	if _, err := ctx.DrawString(text, freetype.Pt(left, baseline)); err != nil {
		fs.errorf("draw label failed: %v", err)
	}
}

func (fs *fontSet) errorf(format string, args ...interface{}) {
	if fs.logger != nil {
		fs.logger.Errorf("font", format, args...)
	}
}
