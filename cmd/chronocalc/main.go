package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chrissnell/chronocalc/internal/app"
	"github.com/chrissnell/chronocalc/internal/config"
	"github.com/chrissnell/chronocalc/internal/log"
	"github.com/chrissnell/chronocalc/pkg/elevation"
	"github.com/chrissnell/chronocalc/pkg/timezone"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

var (
	flagYear     int
	flagLat      string
	flagLon      string
	flagAlt      float64
	flagAz       float64
	flagMoon     bool
	flagAccurate bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "chronocalc",
	Short: "Find when the sun or moon stands at a given altitude and azimuth",
	Long: `chronocalc sweeps a calendar year and reports the dates and times when
the sun or the moon comes closest to a requested altitude and azimuth as
seen from an observer's coordinates.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVarP(&flagYear, "year", "y", 0, "Calendar year to search")
	rootCmd.Flags().StringVar(&flagLat, "lat", "", "Observer latitude in decimal degrees")
	rootCmd.Flags().StringVar(&flagLon, "lon", "", "Observer longitude in decimal degrees")
	rootCmd.Flags().Float64Var(&flagAlt, "alt", 0, "Target altitude in degrees above the horizon")
	rootCmd.Flags().Float64Var(&flagAz, "az", 0, "Target azimuth in compass degrees")
	rootCmd.Flags().BoolVar(&flagMoon, "moon", false, "Search the moon instead of the sun")
	rootCmd.Flags().BoolVar(&flagAccurate, "accurate", false, "Sample on the fine time grid")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Turn on debugging output")

	for _, name := range []string{"year", "lat", "lon", "alt", "az"} {
		cobra.CheckErr(rootCmd.MarkFlagRequired(name))
	}
}

func run(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(flagLat, 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q: %w", flagLat, err)
	}
	lon, err := strconv.ParseFloat(flagLon, 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q: %w", flagLon, err)
	}

	if err := log.Init(flagDebug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client := elevation.NewClientWithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout})
	client.SetBaseURL(cfg.ElevationURL)
	client.SetRetries(cfg.HTTPRetries)

	resolver, err := timezone.NewResolver()
	if err != nil {
		return fmt.Errorf("failed to initialize timezone resolver: %w", err)
	}

	application := app.New(cfg, client, resolver, cmd.OutOrStdout(), log.GetSugaredLogger())
	return application.Run(cmd.Context(), app.Request{
		Year:      flagYear,
		Latitude:  lat,
		Longitude: lon,
		Altitude:  flagAlt,
		Azimuth:   flagAz,
		Moon:      flagMoon,
		Accurate:  flagAccurate,
	})
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
