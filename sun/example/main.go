// Package main provides an example of using the sun package for the current
// position and the daylight of today.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/devskill-org/sunpath/sun"
)

func main() {
	loc := sun.Brest

	// Get sun position (azimuth and altitude)
	pos := sun.At(loc, time.Now())
	fmt.Printf("Azimuth: %.2f°, Altitude: %.2f°\n", pos.Azimuth, pos.Altitude)

	// Get sunrise/sunset times
	daylight, err := sun.DaySummary(loc, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Sunrise:", daylight.Sunrise)
	fmt.Println("Sunset:", daylight.Sunset)
	fmt.Println("Day length:", daylight.Length.Round(time.Minute))
}
