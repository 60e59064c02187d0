package app

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chrissnell/chronocalc/internal/config"
	"github.com/chrissnell/chronocalc/internal/report"
)

type fakeElevation struct {
	elev  float64
	err   error
	calls int
}

func (f *fakeElevation) Lookup(ctx context.Context, lat, lon float64) (float64, error) {
	f.calls++
	return f.elev, f.err
}

type fakeTimezone struct {
	loc *time.Location
	err error
}

func (f *fakeTimezone) Resolve(lat, lon float64) (*time.Location, error) {
	return f.loc, f.err
}

var timestampRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

func newTestApp(out *bytes.Buffer, elev *fakeElevation, tz *fakeTimezone) *App {
	return New(config.New(), elev, tz, out, zap.NewNop().Sugar())
}

func TestRunMoonRendersMatches(t *testing.T) {
	var buf bytes.Buffer
	elev := &fakeElevation{elev: 45}
	a := newTestApp(&buf, elev, &fakeTimezone{loc: time.UTC})

	// The moon transits due south of Greenwich near 45 degrees twice a
	// month, so a year-long sweep always finds matches.
	err := a.Run(context.Background(), Request{
		Year:     2024,
		Latitude: 51.4769,
		Altitude: 45,
		Azimuth:  180,
		Moon:     true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "the moon is closest to the given parameters:") {
		t.Fatalf("missing moon heading:\n%s", out)
	}
	if rows := timestampRe.FindAllString(out, -1); len(rows) == 0 {
		t.Errorf("no result rows in output:\n%s", out)
	}
	if !strings.Contains(out, "%") {
		t.Errorf("moon table has no illumination column:\n%s", out)
	}
	if elev.calls != 1 {
		t.Errorf("elevation lookups = %d, want 1", elev.calls)
	}
}

func TestRunMoonUnreachableTargetPrintsMessage(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApp(&buf, &fakeElevation{}, &fakeTimezone{loc: time.UTC})

	// The moon never reaches -80 degrees from mid northern latitudes.
	err := a.Run(context.Background(), Request{
		Year:     2024,
		Latitude: 51.4769,
		Altitude: -80,
		Azimuth:  180,
		Moon:     true,
	})
	if err != nil {
		t.Fatalf("an empty moon result is not an error, got %v", err)
	}
	if got, want := buf.String(), report.NoSolutionMessage+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunSunFindsPerWindowMatches(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApp(&buf, &fakeElevation{elev: 45}, &fakeTimezone{loc: time.UTC})

	// The morning sun crosses azimuth 120 near 30 degrees through spring
	// and again through autumn, one pick per half year.
	err := a.Run(context.Background(), Request{
		Year:     2024,
		Latitude: 51.4769,
		Altitude: 30,
		Azimuth:  120,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "the sun is closest to the given parameters:") {
		t.Fatalf("missing sun heading:\n%s", out)
	}
	rows := timestampRe.FindAllString(out, -1)
	if len(rows) != 2 {
		t.Fatalf("result rows = %d, want 2:\n%s", len(rows), out)
	}
	if rows[0] >= rows[1] {
		t.Errorf("rows out of order: %v", rows)
	}
	// One pick from each side of the June solstice split.
	if !(rows[0] < "2024-06-21" && rows[1] >= "2024-06-20") {
		t.Errorf("matches do not respect the half-year windows: %v", rows)
	}
}

func TestRunSunImpossibleAltitude(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApp(&buf, &fakeElevation{}, &fakeTimezone{loc: time.UTC})

	// The sun tops out near 62 degrees at this latitude.
	err := a.Run(context.Background(), Request{
		Year:     2024,
		Latitude: 51.4769,
		Altitude: 90,
		Azimuth:  180,
	})
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("error = %v, want ErrNoSolution", err)
	}
	if err.Error() != report.NoSolutionMessage {
		t.Errorf("error text = %q, want %q", err.Error(), report.NoSolutionMessage)
	}
	if buf.Len() != 0 {
		t.Errorf("failed search still wrote output:\n%s", buf.String())
	}
}

func TestRunElevationFailure(t *testing.T) {
	var buf bytes.Buffer
	lookupErr := errors.New("api down")
	a := newTestApp(&buf, &fakeElevation{err: lookupErr}, &fakeTimezone{loc: time.UTC})

	err := a.Run(context.Background(), Request{Year: 2024, Latitude: 1, Moon: true})
	if !errors.Is(err, lookupErr) {
		t.Fatalf("error = %v, want wrapped lookup error", err)
	}
}

func TestRunTimezoneFailure(t *testing.T) {
	var buf bytes.Buffer
	resolveErr := errors.New("no polygons")
	a := newTestApp(&buf, &fakeElevation{}, &fakeTimezone{err: resolveErr})

	err := a.Run(context.Background(), Request{Year: 2024, Latitude: 1, Moon: true})
	if !errors.Is(err, resolveErr) {
		t.Fatalf("error = %v, want wrapped resolve error", err)
	}
}

func TestRunValidatesRequest(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"year too small", Request{Year: 0, Latitude: 1}, "year"},
		{"latitude out of range", Request{Year: 2024, Latitude: 91}, "latitude"},
		{"longitude out of range", Request{Year: 2024, Longitude: -181}, "longitude"},
		{"altitude out of range", Request{Year: 2024, Altitude: -91}, "altitude"},
		{"azimuth wrapped past north", Request{Year: 2024, Azimuth: 360}, "azimuth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			elev := &fakeElevation{}
			a := newTestApp(&buf, elev, &fakeTimezone{loc: time.UTC})

			err := a.Run(context.Background(), tt.req)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want mention of %q", err, tt.want)
			}
			if elev.calls != 0 {
				t.Errorf("invalid request still hit the elevation API")
			}
		})
	}
}
