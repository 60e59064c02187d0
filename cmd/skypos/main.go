package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/chronocalc/pkg/ephemeris"
)

func main() {
	var (
		timeStr string
		lat     float64
		lon     float64
		elev    float64
		body    string
	)
	flag.StringVar(&timeStr, "time", "", "UTC time to compute for (RFC3339 format, e.g., 2024-01-15T12:00:00Z)")
	flag.Float64Var(&lat, "lat", 0, "Observer latitude in decimal degrees")
	flag.Float64Var(&lon, "lon", 0, "Observer longitude in decimal degrees")
	flag.Float64Var(&elev, "elev", 0, "Observer elevation in meters")
	flag.StringVar(&body, "body", "sun", "Body to compute: 'sun' or 'moon'")
	flag.Parse()

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	obs := ephemeris.Observer{Latitude: lat, Longitude: lon, Elevation: elev}

	switch body {
	case "sun":
		pos := ephemeris.SunPosition(obs, t)
		fmt.Printf("Sun position for %s\n", t.Format(time.RFC3339))
		fmt.Printf("  Altitude: %.4f°\n", pos.Altitude)
		fmt.Printf("  Azimuth:  %.4f°\n", pos.Azimuth)
	case "moon":
		pos := ephemeris.MoonPosition(obs, t)
		phase := ephemeris.Phase(t)
		fmt.Printf("Moon position for %s\n", t.Format(time.RFC3339))
		fmt.Printf("  Altitude:     %.4f°\n", pos.Altitude)
		fmt.Printf("  Azimuth:      %.4f°\n", pos.Azimuth)
		fmt.Printf("  Illumination: %.1f%%\n", pos.Illumination*100)
		fmt.Printf("  Phase:        %s\n", phase.PhaseName)
	default:
		fmt.Fprintf(os.Stderr, "Unknown body: %s (use 'sun' or 'moon')\n", body)
		os.Exit(1)
	}
}
