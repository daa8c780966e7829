package sun

import "time"

// Window brackets the sunlit part of a trajectory.
type Window struct {
	First Sample
	Last  Sample
}

// SunlitWindow returns the first and last samples, in chronological order,
// whose altitude is at or above threshold. A single contiguous sunlit
// interval is assumed; crossings in between are not inspected.
func (t *Trajectory) SunlitWindow(threshold float64) (Window, error) {
	first, last := -1, -1
	for i, s := range t.Samples {
		if s.Altitude < threshold {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}

	if first < 0 {
		return Window{}, &WindowError{Day: t.Day(), Threshold: threshold}
	}

	return Window{First: t.Samples[first], Last: t.Samples[last]}, nil
}

// AzimuthBounds returns the window azimuths widened by pad degrees.
func (w Window) AzimuthBounds(pad float64) (float64, float64) {
	return w.First.Azimuth - pad, w.Last.Azimuth + pad
}

// TimeBounds returns the window times widened by pad.
func (w Window) TimeBounds(pad time.Duration) (time.Time, time.Time) {
	return w.First.Time.Add(-pad), w.Last.Time.Add(pad)
}

// Duration is the time between the first and last sunlit samples.
func (w Window) Duration() time.Duration {
	return w.Last.Time.Sub(w.First.Time)
}
