package main

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"slices"

	"github.com/icza/mjpeg"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
)

// observer is called after every tick of a traced run.
type observer interface {
	observe(step int, w *sand.World) error
}

// frameImage scales a packed RGBA buffer up by an integer factor.
func frameImage(pix []byte, size core.Size, scale int) *image.RGBA {
	scale = max(scale, 1)
	img := image.NewRGBA(image.Rect(0, 0, size.W*scale, size.H*scale))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := render.RGBAAt(pix, size.W, x, y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

// videoRecorder writes every nth frame into a Motion-JPEG AVI.
type videoRecorder struct {
	aw    mjpeg.AviWriter
	scale int
	every int
	buf   bytes.Buffer
}

func newVideoRecorder(path string, size core.Size, scale, every, fps int) (*videoRecorder, error) {
	scale = max(scale, 1)
	aw, err := mjpeg.New(path, int32(size.W*scale), int32(size.H*scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	return &videoRecorder{aw: aw, scale: scale, every: max(every, 1)}, nil
}

func (r *videoRecorder) observe(step int, w *sand.World) error {
	if step%r.every != 0 {
		return nil
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, frameImage(w.ColorBuffer(), w.Size(), r.scale), &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode frame %d: %w", step, err)
	}
	return r.aw.AddFrame(r.buf.Bytes())
}

func (r *videoRecorder) Close() error { return r.aw.Close() }

// censusTrace samples the material census every nth tick.
type censusTrace struct {
	every  int
	steps  []float64
	counts map[sand.MaterialID][]float64
}

func newCensusTrace(every int) *censusTrace {
	return &censusTrace{every: max(every, 1), counts: map[sand.MaterialID][]float64{}}
}

func (c *censusTrace) observe(step int, w *sand.World) error {
	if step%c.every != 0 {
		return nil
	}
	census := w.Census()
	n := len(c.steps)
	c.steps = append(c.steps, float64(step))
	for _, id := range sand.Materials() {
		if id == sand.Air {
			continue
		}
		series, seen := c.counts[id]
		if !seen && census[id] == 0 {
			continue
		}
		if !seen {
			series = make([]float64, n)
		}
		c.counts[id] = append(series, float64(census[id]))
	}
	return nil
}

// render draws one line per material that ever appeared, in its own color.
func (c *censusTrace) render(out io.Writer, title string) error {
	if len(c.steps) < 2 {
		return fmt.Errorf("need at least two samples, have %d", len(c.steps))
	}
	ids := make([]sand.MaterialID, 0, len(c.counts))
	for id := range c.counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	series := make([]chart.Series, 0, len(ids))
	for _, id := range ids {
		px := sand.ColorOf(id, midRandom{})
		series = append(series, chart.ContinuousSeries{
			Name:    id.String(),
			XValues: c.steps,
			YValues: c.counts[id],
			Style: chart.Style{
				StrokeColor: drawing.Color{R: px[0], G: px[1], B: px[2], A: 255},
				StrokeWidth: 2,
			},
		})
	}
	graph := chart.Chart{
		Title:  title,
		Width:  960,
		Height: 480,
		XAxis: chart.XAxis{
			Name: "tick",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis:  chart.YAxis{Name: "cells"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}
	return graph.Render(chart.PNG, out)
}

// midRandom resolves procedural colors to the middle of their range.
type midRandom struct{}

func (midRandom) Float64() float64 { return 0.5 }
func (midRandom) IntN(n int) int   { return n / 2 }
