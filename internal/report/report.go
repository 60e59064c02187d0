// Package report renders search results as console tables.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/chrissnell/chronocalc/internal/search"
)

// NoSolutionMessage is printed when a search produced no usable result.
const NoSolutionMessage = "No possible solution found. Please check the given parameters."

// Renderer writes result tables for one observer location.
type Renderer struct {
	w   io.Writer
	loc *time.Location
}

// New returns a renderer that prints timestamps in the given location.
func New(w io.Writer, loc *time.Location) *Renderer {
	return &Renderer{w: w, loc: loc}
}

// MoonMatches renders all moon matches with their illuminated fraction.
func (r *Renderer) MoonMatches(matches []search.Match) {
	fmt.Fprintf(r.w, "\nOn the following dates and times the moon is closest to the given parameters:\n\n")

	table := r.newTable([]string{"Date and time", "Altitude", "Azimuth", "Illumination"})
	for _, m := range matches {
		table.Append(append(r.angleCells(m), fmt.Sprintf("%.1f%%", m.Illumination*100)))
	}
	table.Render()
}

// SunMatches renders the per-window sun matches.
func (r *Renderer) SunMatches(matches []search.Match) {
	fmt.Fprintf(r.w, "\nOn the following dates and times the sun is closest to the given parameters:\n\n")

	table := r.newTable([]string{"Date and time", "Altitude", "Azimuth"})
	for _, m := range matches {
		table.Append(r.angleCells(m))
	}
	table.Render()
}

// NoSolution prints the no-result message.
func (r *Renderer) NoSolution() {
	fmt.Fprintln(r.w, NoSolutionMessage)
}

func (r *Renderer) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	return table
}

func (r *Renderer) angleCells(m search.Match) []string {
	return []string{
		m.Time.In(r.loc).Format(time.RFC3339),
		fmt.Sprintf("%.2f", m.Altitude),
		fmt.Sprintf("%.2f", m.Azimuth),
	}
}
