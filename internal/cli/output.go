package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/five82/carlot/internal/carapi"
	"github.com/five82/carlot/internal/state"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return true
	}
	return false
}

// listing is the structured form of one printed page.
type listing struct {
	Page       int              `json:"page" yaml:"page"`
	TotalPages int              `json:"totalPages" yaml:"totalPages"`
	Matched    int              `json:"matched" yaml:"matched"`
	Total      int              `json:"total" yaml:"total"`
	Filters    state.Filters    `json:"filters" yaml:"filters"`
	Sort       state.Sort       `json:"sort" yaml:"sort"`
	Vehicles   []carapi.Vehicle `json:"vehicles" yaml:"vehicles"`
}

func newListing(snap state.Snapshot) listing {
	vehicles := snap.PaginatedVehicles
	if vehicles == nil {
		vehicles = []carapi.Vehicle{}
	}
	return listing{
		Page:       snap.CurrentPage,
		TotalPages: snap.TotalPages,
		Matched:    snap.FilteredCount,
		Total:      len(snap.Vehicles),
		Filters:    snap.Filters,
		Sort:       snap.Sort,
		Vehicles:   vehicles,
	}
}

func writeListing(w io.Writer, format string, snap state.Snapshot) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newListing(snap)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newListing(snap)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeTable(w, snap)
	}
}

func writeTable(w io.Writer, snap state.Snapshot) error {
	if len(snap.PaginatedVehicles) == 0 {
		_, err := fmt.Fprintln(w, "No vehicles found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMAKE\tMODEL\tYEAR\tCLASS\tTRANS\tCITY\tHWY\tCOMB\tLAT\tLNG")
	for _, v := range snap.PaginatedVehicles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			idLabel(v.ID),
			v.Make,
			v.Model,
			v.Year,
			v.Class,
			v.TransmissionLabel(),
			mpg(v.CityMPG),
			mpg(v.HighwayMPG),
			mpg(v.CombinationMPG),
			coord(v.Latitude),
			coord(v.Longitude),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\npage %d/%d, %d of %d vehicles\n",
		snap.CurrentPage, snap.TotalPages, snap.FilteredCount, len(snap.Vehicles))
	return err
}

func idLabel(id int) string {
	if id == 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

func mpg(e carapi.Efficiency) string {
	switch {
	case !e.Present():
		return "-"
	case e.String() == carapi.Unavailable:
		return "premium"
	default:
		return e.String()
	}
}

func coord(f float64) string {
	if f == 0 {
		return "-"
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}
