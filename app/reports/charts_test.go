package reports

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barSpec() ChartSpec {
	return ChartSpec{
		Title:  "Income vs Expenses",
		Kind:   ChartBar,
		Labels: []string{"Income", "Expenses", "Net"},
		Values: []float64{100000, 80000, 20000},
	}
}

func TestCaptureUnregisteredChart(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Capture("missing", CaptureOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChartNotRegistered))
	assert.Contains(t, err.Error(), "missing")
}

func TestCaptureProducesPNGDataURL(t *testing.T) {
	reg := NewRegistry()
	reg.Register("income-vs-expenses", barSpec())

	url, err := reg.Capture("income-vs-expenses", CaptureOptions{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	// The data URL must round-trip through the PDF image decoder.
	decoded, err := decodeImageDataURL(url)
	require.NoError(t, err)
	assert.Equal(t, "PNG", decoded.format)
}

func TestCaptureLineChart(t *testing.T) {
	reg := NewRegistry()
	reg.Register("trend", ChartSpec{
		Title:  "Trend",
		Kind:   ChartLine,
		Labels: []string{"Oct", "Nov", "Dec"},
		Values: []float64{50000, 65000, 100000},
		Color:  color.NRGBA{R: 30, G: 160, B: 90, A: 255},
	})

	url, err := reg.Capture("trend", CaptureOptions{Scale: 1, Width: 200, Height: 120})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestCaptureEmptyValues(t *testing.T) {
	reg := NewRegistry()
	reg.Register("empty", ChartSpec{Title: "Empty", Kind: ChartBar})

	_, err := reg.Capture("empty", CaptureOptions{})
	assert.Error(t, err)
}

func TestCaptureMultipleBestEffort(t *testing.T) {
	reg := NewRegistry()
	reg.Register("good", barSpec())
	reg.Register("bad", ChartSpec{Title: "Bad", Kind: ChartBar}) // no values

	out := reg.CaptureMultiple([]string{"good", "bad", "missing"}, CaptureOptions{})

	require.Len(t, out, 3)
	assert.NotEmpty(t, out["good"])
	assert.Empty(t, out["bad"])
	assert.Empty(t, out["missing"])
}

func TestRegistryLifecycle(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", barSpec())
	reg.Register("a", barSpec())

	assert.Equal(t, []string{"a", "b"}, reg.IDs())

	spec, ok := reg.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "Income vs Expenses", spec.Title)

	reg.Unregister("a")
	_, ok = reg.Get("a")
	assert.False(t, ok)

	reg.Clear()
	assert.Empty(t, reg.IDs())
}

func TestCaptureAll(t *testing.T) {
	reg := NewRegistry()
	reg.Register("one", barSpec())
	reg.Register("two", barSpec())

	out := reg.CaptureAll(CaptureOptions{})
	assert.Len(t, out, 2)
	for id, url := range out {
		assert.NotEmpty(t, url, id)
	}
}
