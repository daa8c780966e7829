package chart

import (
	"math"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// multipleTicks places minor ticks every Minor units and labelled major ticks
// every Major units. Major must be a multiple of Minor.
type multipleTicks struct {
	Major float64
	Minor float64
}

func (m multipleTicks) Ticks(min, max float64) []plot.Tick {
	if m.Minor <= 0 || max < min {
		return nil
	}

	every := int(math.Round(m.Major / m.Minor))
	if every < 1 {
		every = 1
	}

	var ticks []plot.Tick
	for i := int(math.Ceil(min / m.Minor)); float64(i)*m.Minor <= max; i++ {
		v := float64(i) * m.Minor
		tick := plot.Tick{Value: v}
		if i%every == 0 {
			tick.Label = strconv.FormatFloat(v, 'f', -1, 64)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// hourTicks places a labelled tick on every whole hour of the x range, the
// x values being Unix seconds.
type hourTicks struct {
	Location *time.Location
	Format   string
}

func (h hourTicks) Ticks(min, max float64) []plot.Tick {
	if max < min {
		return nil
	}

	from := time.Unix(int64(math.Ceil(min)), 0).In(h.Location)
	t := time.Date(from.Year(), from.Month(), from.Day(), from.Hour(), 0, 0, 0, h.Location)
	if t.Before(from) {
		t = t.Add(time.Hour)
	}

	var ticks []plot.Tick
	for ; float64(t.Unix()) <= max; t = t.Add(time.Hour) {
		ticks = append(ticks, plot.Tick{Value: float64(t.Unix()), Label: t.Format(h.Format)})
	}
	return ticks
}

// grid draws major grid lines on both axes and, when Minor is set, minor
// vertical lines.
type grid struct {
	Major draw.LineStyle
	Minor *draw.LineStyle
}

func (g grid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, tk := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		sty := g.Major
		if tk.IsMinor() {
			if g.Minor == nil {
				continue
			}
			sty = *g.Minor
		}
		x := trX(tk.Value)
		c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)
	}

	for _, tk := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
		if tk.IsMinor() {
			continue
		}
		y := trY(tk.Value)
		c.StrokeLine2(g.Major, c.Min.X, y, c.Max.X, y)
	}
}
