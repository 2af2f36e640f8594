package reports

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sort"
	"sync"
)

// Chart registry. The analytics export registers the charts it wants
// embedded, captures them as PNG data URLs, and clears the registry when
// the export ends; nothing here is persisted.

// ErrChartNotRegistered marks a capture request for an id that was never
// registered, as opposed to a rendering failure.
var ErrChartNotRegistered = errors.New("chart not registered")

type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// ChartSpec is the data behind one renderable chart.
type ChartSpec struct {
	Title  string
	Kind   ChartKind
	Labels []string
	Values []float64
	Color  color.NRGBA
}

// CaptureOptions control rasterization. Zero values fall back to a 2x
// scale, 480x280 base size and a white background.
type CaptureOptions struct {
	Scale      int
	Width      int
	Height     int
	Background color.Color
}

func (o CaptureOptions) withDefaults() CaptureOptions {
	if o.Scale <= 0 {
		o.Scale = 2
	}
	if o.Width <= 0 {
		o.Width = 480
	}
	if o.Height <= 0 {
		o.Height = 280
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// Registry maps chart ids to their specs for the duration of one export.
type Registry struct {
	mu     sync.RWMutex
	charts map[string]ChartSpec
}

func NewRegistry() *Registry {
	return &Registry{charts: make(map[string]ChartSpec)}
}

func (r *Registry) Register(id string, spec ChartSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.charts[id] = spec
}

func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.charts, id)
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.charts = make(map[string]ChartSpec)
}

// Get returns the spec registered under id.
func (r *Registry) Get(id string) (ChartSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.charts[id]
	return spec, ok
}

// IDs returns the registered chart ids in stable order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.charts))
	for id := range r.charts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Capture rasterizes one registered chart to a PNG data URL.
func (r *Registry) Capture(id string, opts CaptureOptions) (string, error) {
	r.mu.RLock()
	spec, ok := r.charts[id]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrChartNotRegistered, id)
	}

	img, err := renderChart(spec, opts.withDefaults())
	if err != nil {
		return "", fmt.Errorf("render chart %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode chart %s: %w", id, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// CaptureMultiple captures each id independently. Failures produce an
// empty entry for that id; the batch itself never aborts.
func (r *Registry) CaptureMultiple(ids []string, opts CaptureOptions) map[string]string {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		url, err := r.Capture(id, opts)
		if err != nil {
			out[id] = ""
			continue
		}
		out[id] = url
	}
	return out
}

// CaptureAll captures every registered chart, best effort.
func (r *Registry) CaptureAll(opts CaptureOptions) map[string]string {
	return r.CaptureMultiple(r.IDs(), opts)
}

// renderChart draws the spec onto a fresh raster. The drawing is
// deliberately plain: filled bars or a polyline over a baseline axis.
func renderChart(spec ChartSpec, opts CaptureOptions) (image.Image, error) {
	if len(spec.Values) == 0 {
		return nil, fmt.Errorf("chart has no values")
	}

	w := opts.Width * opts.Scale
	h := opts.Height * opts.Scale
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), opts.Background)

	pad := 20 * opts.Scale
	plot := image.Rect(pad, pad, w-pad, h-pad)

	maxVal := 0.0
	for _, v := range spec.Values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barColor := spec.Color
	if barColor == (color.NRGBA{}) {
		barColor = color.NRGBA{R: 52, G: 120, B: 246, A: 255}
	}

	axis := color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	fill(img, image.Rect(plot.Min.X, plot.Max.Y-opts.Scale, plot.Max.X, plot.Max.Y), axis)
	fill(img, image.Rect(plot.Min.X, plot.Min.Y, plot.Min.X+opts.Scale, plot.Max.Y), axis)

	switch spec.Kind {
	case ChartLine:
		drawLineSeries(img, plot, spec.Values, maxVal, barColor, opts.Scale)
	default:
		drawBarSeries(img, plot, spec.Values, maxVal, barColor)
	}
	return img, nil
}

func drawBarSeries(img *image.NRGBA, plot image.Rectangle, values []float64, maxVal float64, c color.NRGBA) {
	n := len(values)
	slot := plot.Dx() / n
	barW := slot * 6 / 10
	gap := (slot - barW) / 2

	for i, v := range values {
		if v < 0 {
			v = 0
		}
		barH := int(float64(plot.Dy()) * v / maxVal)
		x0 := plot.Min.X + i*slot + gap
		fill(img, image.Rect(x0, plot.Max.Y-barH, x0+barW, plot.Max.Y), c)
	}
}

func drawLineSeries(img *image.NRGBA, plot image.Rectangle, values []float64, maxVal float64, c color.NRGBA, scale int) {
	n := len(values)
	if n == 1 {
		fill(img, image.Rect(plot.Min.X, plot.Max.Y-scale, plot.Max.X, plot.Max.Y), c)
		return
	}
	prevX, prevY := 0, 0
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		x := plot.Min.X + i*plot.Dx()/(n-1)
		y := plot.Max.Y - int(float64(plot.Dy())*v/maxVal)
		if i > 0 {
			drawSegment(img, prevX, prevY, x, y, c, scale)
		}
		prevX, prevY = x, y
	}
}

// drawSegment draws a thick line by stepping along the longer axis.
func drawSegment(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA, thickness int) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		fill(img, image.Rect(x, y, x+thickness, y+thickness), c)
	}
}

func fill(img *image.NRGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, nrgba)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
