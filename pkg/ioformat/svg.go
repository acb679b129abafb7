package ioformat

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/gonest/pkg/geom"
	"github.com/dshills/gonest/pkg/spp"
)

// SVGOptions configures the rendered strip-packing visualization.
type SVGOptions struct {
	Width   int // canvas width in pixels
	Height  int // canvas height in pixels
	Margin  int // canvas margin in pixels
	Title   string
}

// DefaultSVGOptions returns sensible default rendering options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 900, Height: 900, Margin: 40, Title: "gonest solution"}
}

// RenderSVG draws the strip boundary, every placed item's transformed
// polygon, and outlines any item whose bound pokes outside the strip (a
// bin-edge hazard), scaling the instance's strip width and the
// solution's achieved height to fit the canvas.
func RenderSVG(inst *spp.Instance, sol *spp.Solution, opts SVGOptions) ([]byte, error) {
	if inst == nil || sol == nil {
		return nil, fmt.Errorf("ioformat: RenderSVG requires a non-nil instance and solution")
	}
	if opts.Width <= 0 {
		opts.Width = 900
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	byID := make(map[string]*spp.Item, len(inst.Items))
	for _, it := range inst.Items {
		byID[it.ID] = it
	}

	stripHeight := sol.Height
	if stripHeight <= 0 {
		stripHeight = inst.StripWidth
	}

	drawW := float64(opts.Width - 2*opts.Margin)
	drawH := float64(opts.Height - 2*opts.Margin)
	scale := drawW / inst.StripWidth
	if s := drawH / stripHeight; s < scale {
		scale = s
	}

	// toCanvas maps a strip-space point (y up, origin bottom-left) to an
	// SVG pixel (y down, origin top-left).
	toCanvas := func(p geom.Point) (int, int) {
		x := opts.Margin + int(p[0]*scale)
		y := opts.Margin + int((stripHeight-p[1])*scale)
		return x, y
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	if opts.Title != "" {
		canvas.Text(opts.Width/2, opts.Margin/2, opts.Title,
			"text-anchor:middle;font-size:16px;font-family:sans-serif;fill:#1a1a2e")
	}

	stripTL := geom.Point{0, stripHeight}
	x0, y0 := toCanvas(stripTL)
	canvas.Rect(x0, y0, int(inst.StripWidth*scale), int(stripHeight*scale),
		"fill:none;stroke:#1a1a2e;stroke-width:2")

	for _, p := range sol.Placements {
		item, ok := byID[p.ItemID]
		if !ok {
			continue
		}
		t := geom.NewTransform(p.X, p.Y, p.Rotation)
		shape := geom.ApplyTransform(t, item.ShapeCD, geom.ClonePolygon(item.ShapeCD))
		drawPolygon(canvas, shape, toCanvas, isBinEdgeHazard(shape, inst.StripWidth))
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders inst/sol and writes the SVG to path.
func SaveSVGToFile(inst *spp.Instance, sol *spp.Solution, path string, opts SVGOptions) error {
	data, err := RenderSVG(inst, sol, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ioformat: writing %s: %w", path, err)
	}
	return nil
}

func isBinEdgeHazard(shape geom.Polygon, stripWidth float64) bool {
	b := geom.BoundOf(shape)
	return b.Min[0] < 0 || b.Max[0] > stripWidth || b.Min[1] < 0
}

func drawPolygon(canvas *svg.SVG, shape geom.Polygon, toCanvas func(geom.Point) (int, int), hazard bool) {
	if len(shape) == 0 {
		return
	}
	ring := shape[0]
	xs := make([]int, 0, len(ring))
	ys := make([]int, 0, len(ring))
	for _, p := range ring {
		x, y := toCanvas(p)
		xs = append(xs, x)
		ys = append(ys, y)
	}

	style := "fill:#4299e1;fill-opacity:0.65;stroke:#2b6cb0;stroke-width:1"
	if hazard {
		style = "fill:#f56565;fill-opacity:0.5;stroke:#c53030;stroke-width:2"
	}
	canvas.Polygon(xs, ys, style)
}
