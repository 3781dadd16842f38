package scenes

import (
	"fmt"
	"image"
	"image/color"

	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/engine"
	"github.com/automoto/shapegame/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawSnapshot paints shapes, then limbs, then flying texts and scores on top
func drawSnapshot(screen *ebiten.Image, snap engine.Snapshot) {
	for _, s := range snap.Shapes {
		drawShape(screen, s)
	}
	for _, l := range snap.Limbs {
		drawLimb(screen, l)
	}
	for _, t := range snap.Texts {
		drawFlyingText(screen, t)
	}
	drawScores(screen, snap)
}

func drawShape(screen *ebiten.Image, s engine.ShapeDescriptor) {
	fill := withOpacity(s.Fill, s.Opacity)
	stroke := withOpacity(s.Stroke, s.StrokeOpacity)
	cx, cy, r := float32(s.Center.X), float32(s.Center.Y), float32(s.Size)

	switch s.Kind {
	case cfg.PolyCircle:
		vector.FillCircle(screen, cx, cy, r, fill, true)
		if s.StrokeWidth > 0 {
			vector.StrokeCircle(screen, cx, cy, r, float32(s.StrokeWidth), stroke, true)
		}
		return
	case cfg.PolyBubble:
		width := float32(s.StrokeWidth)
		if width <= 0 {
			width = float32(cfg.Presentation.StrokeWidth)
		}
		vector.StrokeCircle(screen, cx, cy, r, width, fill, true)
		return
	}

	if len(s.Vertices) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(s.Vertices[0][0]), float32(s.Vertices[0][1]))
	for _, v := range s.Vertices[1:] {
		path.LineTo(float32(v[0]), float32(v[1]))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(screen, vs, is, fill)

	if s.StrokeWidth > 0 {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    float32(s.StrokeWidth),
			LineJoin: vector.LineJoinRound,
		})
		drawVertices(screen, vs, is, stroke)
	}
}

func drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.NRGBA) {
	a := float32(clr.A) / 0xff
	r := float32(clr.R) / 0xff * a
	g := float32(clr.G) / 0xff * a
	b := float32(clr.B) / 0xff * a
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func drawLimb(screen *ebiten.Image, l engine.LimbDescriptor) {
	seg := l.Segment
	clr := cfg.LimbColor
	if seg.IsCircle() {
		vector.FillCircle(screen, float32(seg.X1), float32(seg.Y1), float32(seg.Radius), clr, true)
		return
	}
	vector.StrokeLine(screen,
		float32(seg.X1), float32(seg.Y1), float32(seg.X2), float32(seg.Y2),
		float32(2*seg.Radius), clr, true)
}

func drawFlyingText(screen *ebiten.Image, t engine.TextDescriptor) {
	face := fonts.Face(t.FontSize)
	bounds, _ := font.BoundString(face, t.Text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := int(t.Center.X) - w/2
	y := int(t.Center.Y) + h/2
	text.Draw(screen, t.Text, face, x, y, withOpacity(t.Color, t.Opacity))
}

func drawScores(screen *ebiten.Image, snap engine.Snapshot) {
	face := fonts.Face(20)
	for i, s := range snap.Scores {
		clr := cfg.ScoreColors[i%len(cfg.ScoreColors)]
		text.Draw(screen, fmt.Sprintf("P%d  %d", s.PlayerID, s.Points), face, 16, 32+i*26, clr)
	}
}

func withOpacity(c color.RGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * opacity)}
}
