package ui

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type glyph struct {
	advance  float32
	bearingX float32
	bearingY float32 // baseline to glyph top
	w, h     float32
	u0, v0   float32
	u1, v1   float32
}

// fontAtlas rasterises printable ASCII into a single texture. Texel (0,0) is
// opaque white so solid fills can share the atlas.
type fontAtlas struct {
	glyphs     map[rune]glyph
	ascent     float32
	lineHeight float32
	width      int
	height     int
	whiteUV    Pos2
	image      Image
}

const atlasPadding = 1

func newFontAtlas(face font.Face) (*fontAtlas, error) {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measure []meas
	for r := rune(32); r <= 126; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   r,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	// Shelf packer; the first shelf starts after the white texel.
	size := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := 2+atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+g.h+atlasPadding > size || g.w+2*atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > 2048 {
			return nil, fmt.Errorf("font atlas too large (>%d)", 2048)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, image.Rect(0, 0, 1, 1), image.White, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	fa := &fontAtlas{
		glyphs:     make(map[rune]glyph, len(measure)),
		ascent:     float32(m.Ascent.Round()),
		lineHeight: float32(m.Height.Round()),
		width:      size,
		height:     size,
		whiteUV:    Pos2{0.5 / float32(size), 0.5 / float32(size)},
	}
	fs := float32(size)
	for _, g := range measure {
		out := glyph{advance: g.adv, bearingX: g.bx, bearingY: g.by, w: float32(g.w), h: float32(g.h)}
		if p, ok := pos[g.r]; ok {
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			out.u0, out.v0 = float32(p.X)/fs, float32(p.Y)/fs
			out.u1, out.v1 = float32(p.X+g.w)/fs, float32(p.Y+g.h)/fs
		}
		fa.glyphs[g.r] = out
	}
	fa.image = Image{Width: size, Height: size, Pixels: dst.Pix}
	return fa, nil
}

// measure returns the size in points of text drawn at scale.
func (fa *fontAtlas) measure(text string, scale float32) Vec2 {
	var w, lineW float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			w = max(w, lineW)
			lineW = 0
			lines++
			continue
		}
		lineW += fa.lookup(r).advance
	}
	w = max(w, lineW)
	return Vec2{w * scale, fa.lineHeight * float32(lines) * scale}
}

func (fa *fontAtlas) lookup(r rune) glyph {
	if g, ok := fa.glyphs[r]; ok {
		return g
	}
	return fa.glyphs['?']
}
