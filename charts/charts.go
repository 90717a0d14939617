// Package charts renders derived views as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/finbook/finbook"
	"github.com/wcharczuk/go-chart/v2"
)

// TrailingWindowPNG renders the report's trailing monthly window as a PNG
// time-series of income and expense. It returns nil when the window is
// empty, so callers can skip writing a file.
func TrailingWindowPNG(r *finbook.Report) ([]byte, error) {
	if len(r.Window) == 0 {
		return nil, nil
	}

	xValues := make([]time.Time, len(r.Window))
	inValues := make([]float64, len(r.Window))
	outValues := make([]float64, len(r.Window))
	for i, flow := range r.Window {
		var y, m int
		if _, err := fmt.Sscanf(flow.Month, "%d-%d", &y, &m); err != nil {
			return nil, fmt.Errorf("malformed period key %q: %w", flow.Month, err)
		}
		xValues[i] = time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		inValues[i] = flow.In.AsFloat()
		outValues[i] = flow.Out.AsFloat()
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
			Style:          chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f %s", v.(float64), r.Currency)
			},
			Style: chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "In",
				XValues: xValues,
				YValues: inValues,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "Out",
				XValues: xValues,
				YValues: outValues,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{FontSize: 12, FontColor: chart.ColorBlack}),
	}

	var buffer bytes.Buffer
	if err := graph.Render(chart.PNG, &buffer); err != nil {
		return nil, fmt.Errorf("failed to render trailing window chart: %w", err)
	}
	return buffer.Bytes(), nil
}
