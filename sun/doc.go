// Package sun computes the apparent position of the sun for an observer.
//
// Positions are expressed in degrees: altitude above the horizon (negative
// when the sun is below it) and azimuth measured clockwise from true North in
// the range [0, 360).
//
// Basic Usage:
//
//	loc := sun.Brest
//	day, err := sun.ParseDay("20240621", loc.MustTimeLocation())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	traj, err := sun.DailyTrajectory(loc, day)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	window, err := traj.SunlitWindow(0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("sun above horizon from", window.First.Time, "to", window.Last.Time)
//
// A Trajectory is a plain value: it can be computed, inspected and tested
// without any rendering dependency.
package sun
