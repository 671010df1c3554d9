// Package stepcount measures how the number of steps a compute layout
// takes grows with the width of its input.
package stepcount

import (
	"errors"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/swansonk14/graphing-fleas/internal/compute"
	"github.com/swansonk14/graphing-fleas/internal/translate"
)

var f = translate.From

var (
	// ErrTooFewSamples reports a fit over fewer than two widths.
	ErrTooFewSamples = errors.New(f("need at least two samples"))
	// ErrSample reports a sample whose width or step count is not positive.
	ErrSample = errors.New(f("sample width and steps must be positive"))
)

// Pattern builds the input bit string for a width.
type Pattern func(width int) string

// Patterns maps the named input shapes the harness supports.
var Patterns = map[string]Pattern{
	"ones":  func(n int) string { return strings.Repeat("1", n) },
	"zeros": func(n int) string { return strings.Repeat("0", n) },
	"alternating": func(n int) string {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte("10"[i%2])
		}
		return sb.String()
	},
}

// Sample is the step count for one input width.
type Sample struct {
	Width int
	Input string
	Steps int
}

// Measure runs the layout for kind at each width from min to max.
func Measure(kind string, pattern Pattern, min, max, limit int) ([]Sample, error) {
	var out []Sample
	for w := min; w <= max; w++ {
		input := pattern(w)
		steps, err := compute.CountSteps(kind, input, limit)
		if err != nil {
			return out, err
		}
		out = append(out, Sample{Width: w, Input: input, Steps: steps})
	}
	return out, nil
}

// Exponent fits steps = a * width^k by least squares in log-log space and
// returns k: about 1 for linear growth, 2 for quadratic.
func Exponent(samples []Sample) (float64, error) {
	if len(samples) < 2 {
		return 0, ErrTooFewSamples
	}
	var sx, sy, sxx, sxy float64
	n := float64(len(samples))
	for _, s := range samples {
		if s.Width <= 0 || s.Steps <= 0 {
			return 0, ErrSample
		}
		x := math.Log(float64(s.Width))
		y := math.Log(float64(s.Steps))
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return 0, ErrTooFewSamples
	}
	return (n*sxy - sx*sy) / den, nil
}

// Render draws steps against width as a PNG line chart.
func Render(w io.Writer, title string, samples []Sample) error {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s.Width)
		ys[i] = float64(s.Steps)
	}
	graph := chart.Chart{
		Title:  title,
		Width:  640,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "input width (bits)",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "steps",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 3.0},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
