// Package chart renders the comparison of the sun path of a day against the
// summer and winter solstices.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/devskill-org/sunpath/locale"
	"github.com/devskill-org/sunpath/sun"
	"github.com/devskill-org/sunpath/utils"
)

// FileName is the fixed name of the rendered chart.
const FileName = "position_soleil.png"

var (
	black     = color.RGBA{A: 255}
	blue      = color.RGBA{B: 255, A: 255}
	red       = color.RGBA{R: 255, A: 255}
	gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	lightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}
)

// Input holds everything drawn on the chart.
type Input struct {
	Target    *sun.Trajectory
	Summer    *sun.Trajectory
	Winter    *sun.Trajectory
	Location  sun.Location
	DateLabel string // localized target day, e.g. "Vendredi 21 Juin 2024"
	Labels    locale.Labels
}

// Options controls the figure geometry and axis padding.
type Options struct {
	Width          vg.Length
	Height         vg.Length
	DPI            int
	AzimuthPadding float64       // degrees around the summer sunlit window
	TimePadding    time.Duration // around the summer sunlit window
	Threshold      float64       // altitude defining "sunlit"
}

// DefaultOptions returns a 20x7 inch figure at 200 DPI.
func DefaultOptions() Options {
	return Options{
		Width:          20 * vg.Inch,
		Height:         7 * vg.Inch,
		DPI:            200,
		AzimuthPadding: 5,
		TimePadding:    15 * time.Minute,
		Threshold:      0,
	}
}

// Layout is the x range of both panels.
type Layout struct {
	AzimuthMin float64
	AzimuthMax float64
	TimeMin    time.Time
	TimeMax    time.Time

	// Clamped is set when the summer window cannot bound the axes (sun
	// never up, or up all day) and full ranges are used instead.
	Clamped bool
}

func (in Input) validate() error {
	if in.Target == nil || in.Summer == nil || in.Winter == nil {
		return errors.New("chart needs target, summer and winter trajectories")
	}
	return nil
}

// ComputeLayout derives the panel x ranges from the summer solstice sunlit
// window. When the window is empty the azimuth range becomes [0, 360] and the
// time range the whole target day; when the sun never sets only the azimuth
// range is widened.
func ComputeLayout(in Input, opts Options) (Layout, error) {
	if err := in.validate(); err != nil {
		return Layout{}, err
	}

	w, err := in.Summer.SunlitWindow(opts.Threshold)
	if errors.Is(err, sun.ErrEmptyWindow) {
		return Layout{
			AzimuthMin: 0,
			AzimuthMax: 360,
			TimeMin:    in.Target.Start,
			TimeMax:    in.Target.End,
			Clamped:    true,
		}, nil
	}
	if err != nil {
		return Layout{}, err
	}

	azMin, azMax := w.AzimuthBounds(opts.AzimuthPadding)
	layout := Layout{
		AzimuthMin: azMin,
		AzimuthMax: azMax,
		TimeMin:    targetClock(in.Target, in.Summer, w.First.Time).Add(-opts.TimePadding),
		TimeMax:    targetClock(in.Target, in.Summer, w.Last.Time).Add(opts.TimePadding),
	}

	// sun up all day: the path goes round the whole horizon
	if allDay(in.Summer, w) || azMin >= azMax {
		layout.AzimuthMin, layout.AzimuthMax = 0, 360
		layout.Clamped = true
	}
	return layout, nil
}

func allDay(t *sun.Trajectory, w sun.Window) bool {
	n := len(t.Samples)
	return n > 0 && w.First.Time.Equal(t.Samples[0].Time) && w.Last.Time.Equal(t.Samples[n-1].Time)
}

type series struct {
	label string
	traj  *sun.Trajectory
	color color.Color
	width vg.Length
}

func (in Input) series() []series {
	return []series{
		{label: in.Labels.WinterSolstice, traj: in.Winter, color: blue, width: vg.Points(2)},
		{label: in.DateLabel, traj: in.Target, color: black, width: vg.Points(3)},
		{label: in.Labels.SummerSolstice, traj: in.Summer, color: red, width: vg.Points(2)},
	}
}

// Title returns the two-line figure title.
func (in Input) Title() string {
	return fmt.Sprintf("%s\n%s, %s/%s", in.Labels.Title, in.DateLabel, in.Location.Name, in.Location.Region)
}

// Render draws the two panels and writes them as PNG to w.
func Render(w io.Writer, in Input, opts Options) (Layout, error) {
	layout, err := ComputeLayout(in, opts)
	if err != nil {
		return Layout{}, err
	}

	azimuthPlot, err := newAzimuthPlot(in, layout)
	if err != nil {
		return Layout{}, fmt.Errorf("azimuth panel: %w", err)
	}
	timePlot, err := newTimePlot(in, layout)
	if err != nil {
		return Layout{}, fmt.Errorf("time panel: %w", err)
	}

	img := vgimg.NewWith(
		vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(opts.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)

	titleStyle := text.Style{
		Color:   black,
		Font:    font.From(plot.DefaultFont, 16),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
	title := in.Title()
	pad := vg.Points(6)
	dc.FillText(titleStyle, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - pad}, title)

	body := draw.Crop(dc, 0, 0, 0, -(titleStyle.Height(title) + 2*pad))
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Centimeter,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
	canvases := plot.Align([][]*plot.Plot{{azimuthPlot, timePlot}}, tiles, body)
	azimuthPlot.Draw(canvases[0][0])
	timePlot.Draw(canvases[0][1])

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return Layout{}, fmt.Errorf("failed to encode chart PNG: %w", err)
	}
	return layout, nil
}

// RenderFile renders the chart to path, replacing any existing file.
func RenderFile(path string, in Input, opts Options) (Layout, error) {
	file, err := os.Create(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to create chart file: %w", err)
	}
	defer file.Close()

	layout, err := Render(file, in, opts)
	if err != nil {
		return Layout{}, err
	}
	return layout, file.Close()
}

func newAzimuthPlot(in Input, layout Layout) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = in.Labels.AzimuthAxis
	p.Y.Label.Text = in.Labels.AltitudeAxis
	p.X.Tick.Marker = multipleTicks{Major: 20, Minor: 10}

	minor := draw.LineStyle{Color: lightGray, Width: vg.Points(0.5), Dashes: []vg.Length{vg.Points(3), vg.Points(3)}}
	p.Add(grid{Major: draw.LineStyle{Color: gray, Width: vg.Points(0.5)}, Minor: &minor})

	for _, s := range in.series() {
		xys := make(plotter.XYs, len(s.traj.Samples))
		for i, sample := range s.traj.Samples {
			xys[i].X = sample.Azimuth
			xys[i].Y = sample.Altitude
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = s.color
		line.Width = s.width
		p.Add(line)
	}

	cardinals := []struct {
		azimuth float64
		label   string
	}{
		{90, in.Labels.East},
		{180, in.Labels.South},
		{270, in.Labels.West},
	}
	marks := plotter.XYLabels{}
	for _, c := range cardinals {
		line, err := plotter.NewLine(plotter.XYs{{X: c.azimuth, Y: 0}, {X: c.azimuth, Y: 90}})
		if err != nil {
			return nil, err
		}
		line.Color = black
		line.Width = vg.Points(1)
		p.Add(line)

		marks.XYs = append(marks.XYs, plotter.XY{X: c.azimuth - 1, Y: 90})
		marks.Labels = append(marks.Labels, c.label)
	}
	labels, err := plotter.NewLabels(marks)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = red
		labels.TextStyle[i].XAlign = draw.XRight
		labels.TextStyle[i].YAlign = draw.YTop
	}
	p.Add(labels)

	p.X.Min, p.X.Max = layout.AzimuthMin, layout.AzimuthMax
	p.Y.Min, p.Y.Max = 0, 90
	return p, nil
}

func newTimePlot(in Input, layout Layout) (*plot.Plot, error) {
	tz := in.Target.Start.Location()

	p := plot.New()
	p.X.Label.Text = in.Labels.TimeAxis
	p.X.Tick.Marker = hourTicks{Location: tz, Format: "15:04"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Add(grid{Major: draw.LineStyle{Color: lightGray, Width: vg.Points(0.5)}})

	p.Legend.Top = true
	for _, s := range in.series() {
		line, err := plotter.NewLine(timeXYs(in.Target, s.traj))
		if err != nil {
			return nil, err
		}
		line.Color = s.color
		line.Width = s.width
		p.Add(line)
		p.Legend.Add(s.label, line)
	}

	p.X.Min, p.X.Max = unixSeconds(layout.TimeMin), unixSeconds(layout.TimeMax)
	p.Y.Min, p.Y.Max = 0, 90
	return p, nil
}

// timeXYs returns the altitude of traj against the target day's wall clock,
// x being Unix seconds.
func timeXYs(target, traj *sun.Trajectory) plotter.XYs {
	xys := make(plotter.XYs, len(traj.Samples))
	for i, sample := range traj.Samples {
		xys[i].X = unixSeconds(targetClock(target, traj, sample.Time))
		xys[i].Y = sample.Altitude
	}
	return xys
}

// targetClock places t, a sample time of traj, at the same wall-clock time on
// the target day. The closing midnight of traj lands on the target's closing
// midnight.
func targetClock(target, traj *sun.Trajectory, t time.Time) time.Time {
	if traj == target {
		return t
	}
	if !t.Before(traj.End) {
		return target.End
	}
	return utils.OnDay(target.Start, t)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix())
}
