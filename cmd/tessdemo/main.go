// Command tessdemo renders a small fixed set of sample paths with the
// tessellator and shows the result in a live preview window. It exists
// to exercise the library end to end, not as a tool in its own right.
package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/vector"

	"github.com/hajimehoshi/tessellator"
)

type options struct {
	sample    string
	antiAlias bool
	wireframe bool
	width     int
	height    int
}

func main() {
	opts := &options{}
	root := &cobra.Command{
		Use:   "tessdemo",
		Short: "Preview the tessellator's output on a handful of sample paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	flags := root.Flags()
	flags.StringVar(&opts.sample, "sample", "star", "sample path: square, star, bowtie, ring")
	flags.BoolVar(&opts.antiAlias, "antialias", true, "snap intersections to quarter pixels (the preview does not draw the antialiasing band)")
	flags.BoolVar(&opts.wireframe, "wireframe", false, "accepted but not used by the preview, which always draws filled triangles")
	flags.IntVar(&opts.width, "width", 640, "window width")
	flags.IntVar(&opts.height, "height", 640, "window height")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	path, err := samplePath(opts.sample)
	if err != nil {
		return err
	}

	tris := tessellator.PathToVertices(path, tessellator.Options{
		AntiAlias: opts.antiAlias,
	})
	n := len(tris) * 3

	game := &demoGame{
		triangleVertexCount: n,
		width:               opts.width,
		height:              opts.height,
		img:                 rasterizeTriangles(tris, opts.width, opts.height),
	}
	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle(fmt.Sprintf("tessdemo: %s (%d vertices)", opts.sample, n))
	return ebiten.RunGame(game)
}

// rasterizeTriangles fills each triangle with golang.org/x/image/vector's
// scanline rasterizer into a software framebuffer tessdemo then blits
// every frame; it is not part of the tessellator's own output contract.
func rasterizeTriangles(tris []tessellator.WindingTriangle, w, h int) *image.RGBA {
	r := vector.NewRasterizer(w, h)
	for _, t := range tris {
		r.MoveTo(t.Points[0][0], t.Points[0][1])
		r.LineTo(t.Points[1][0], t.Points[1][1])
		r.LineTo(t.Points[2][0], t.Points[2][1])
		r.ClosePath()
	}
	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(alpha, alpha.Bounds(), image.NewUniform(color.White), image.Point{})

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := alpha.AlphaAt(x, y).A
			img.SetRGBA(x, y, color.RGBA{R: 32, G: 96 + a/4, B: 200, A: 255})
		}
	}
	return img
}

type demoGame struct {
	triangleVertexCount int
	width, height       int
	img                 *image.RGBA
}

func (g *demoGame) Update() error { return nil }

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	tile := ebiten.NewImageFromImage(g.img)
	screen.DrawImage(tile, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%d vertices", g.triangleVertexCount))
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func samplePath(name string) (*tessellator.Path, error) {
	switch name {
	case "square":
		p := tessellator.NewPath(tessellator.FillNonZero)
		p.MoveTo(100, 100)
		mustLine(p, 500, 100)
		mustLine(p, 500, 500)
		mustLine(p, 100, 500)
		mustClose(p)
		return p, nil
	case "ring":
		p := tessellator.NewPath(tessellator.FillEvenOdd)
		p.MoveTo(320, 100)
		mustQuad(p, 540, 100, 540, 320)
		mustQuad(p, 540, 540, 320, 540)
		mustQuad(p, 100, 540, 100, 320)
		mustQuad(p, 100, 100, 320, 100)
		mustClose(p)
		p.MoveTo(320, 200)
		mustQuad(p, 440, 200, 440, 320)
		mustQuad(p, 440, 440, 320, 440)
		mustQuad(p, 200, 440, 200, 320)
		mustQuad(p, 200, 200, 320, 200)
		mustClose(p)
		return p, nil
	case "bowtie":
		p := tessellator.NewPath(tessellator.FillNonZero)
		p.MoveTo(100, 100)
		mustLine(p, 500, 500)
		mustLine(p, 500, 100)
		mustLine(p, 100, 500)
		mustClose(p)
		return p, nil
	case "star":
		return starPath(), nil
	default:
		return nil, errors.Errorf("tessdemo: unknown sample %q", name)
	}
}

func starPath() *tessellator.Path {
	p := tessellator.NewPath(tessellator.FillNonZero)
	const (
		cx, cy = 320.0, 320.0
		outerR = 220.0
		innerR = 90.0
		points = 5
	)
	for i := 0; i < points*2; i++ {
		angle := float64(i) * 3.14159265 / points
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := float32(cx + r*cos(angle-3.14159265/2))
		y := float32(cy + r*sin(angle-3.14159265/2))
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			mustLine(p, x, y)
		}
	}
	mustClose(p)
	return p
}

func mustLine(p *tessellator.Path, x, y float32) {
	if err := p.LineTo(x, y); err != nil {
		panic(err)
	}
}

func mustQuad(p *tessellator.Path, cx, cy, x, y float32) {
	if err := p.QuadTo(cx, cy, x, y); err != nil {
		panic(err)
	}
}

func mustClose(p *tessellator.Path) {
	if err := p.Close(); err != nil {
		panic(err)
	}
}

func cos(r float64) float64 { return math.Cos(r) }
func sin(r float64) float64 { return math.Sin(r) }
