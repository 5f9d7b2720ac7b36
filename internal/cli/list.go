package cli

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/carlot/internal/app"
	"github.com/five82/carlot/internal/prefs"
	"github.com/five82/carlot/internal/state"
)

// listFlags holds the list command's flag values.
type listFlags struct {
	class        string
	make         string
	model        string
	yearMin      int
	yearMax      int
	transmission string
	cityMin      float64
	cityMax      float64
	sort         string
	desc         bool
	page         int
	format       string
	persist      bool
}

func newListCmd(v *viper.Viper) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load vehicles once and print one page",
		Long: `list loads vehicles from the API (or --simulated), applies the given
filters, sort and page, and prints the result.

Filters and sort start empty unless --persist is given, in which case the
saved state is restored first and any changes are written back.

Example:
  carlot list --simulated --make toyota --sort year --desc
  carlot list --year-min 2010 --city-min 25 --format json
  carlot list --transmission manual --page 2 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, v, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.class, "class", "", "class contains (case-insensitive)")
	flags.StringVar(&f.make, "make", "", "make contains (case-insensitive)")
	flags.StringVar(&f.model, "model", "", "model contains (case-insensitive)")
	flags.IntVar(&f.yearMin, "year-min", 0, "minimum model year")
	flags.IntVar(&f.yearMax, "year-max", 0, "maximum model year")
	flags.StringVar(&f.transmission, "transmission", "", "a, m, automatica, automática or manual")
	flags.Float64Var(&f.cityMin, "city-min", 0, "minimum city mpg")
	flags.Float64Var(&f.cityMax, "city-max", 0, "maximum city mpg")
	flags.StringVar(&f.sort, "sort", "", "sort column: "+columnNames())
	flags.BoolVar(&f.desc, "desc", false, "sort descending")
	flags.IntVar(&f.page, "page", 0, "page to print (default: first, or the saved page with --persist)")
	flags.StringVar(&f.format, "format", formatTable, "output format: table, json or yaml")
	flags.BoolVar(&f.persist, "persist", false, "restore and save filters, sort and page")
	return cmd
}

func runList(cmd *cobra.Command, v *viper.Viper, f listFlags) error {
	if !validFormat(f.format) {
		return fmt.Errorf("unknown format %q: want table, json or yaml", f.format)
	}

	for name, bound := range map[string]float64{"city-min": f.cityMin, "city-max": f.cityMax} {
		if math.IsNaN(bound) || math.IsInf(bound, 0) {
			return fmt.Errorf("invalid --%s %v: must be a finite number", name, bound)
		}
	}

	column, ok := state.ParseColumn(f.sort)
	if !ok {
		return fmt.Errorf("%w %q: want one of %s", state.ErrUnknownColumn, f.sort, columnNames())
	}

	cfg, err := resolveConfig(v)
	if err != nil {
		return err
	}

	storage := app.MemoryStorage()
	if f.persist {
		storage, err = app.OpenStorage(cfg, prefs.NewStore(v.GetString(keyPrefs)))
		if err != nil {
			return err
		}
	}
	defer func() { _ = storage.Close() }()

	store := state.NewStore(storage)
	savedPage := store.CurrentPage()

	if cfg.Simulated {
		store.LoadSimulated()
	} else {
		client, err := app.NewClient(cfg)
		if err != nil {
			return err
		}
		if err := store.Load(cmd.Context(), client, app.Query(cfg)); err != nil {
			return err
		}
	}

	if patch, changed := filterPatch(cmd, f); changed {
		store.SetFilters(patch)
	}
	if !store.ValidateFilters() {
		return filterError(store.Snapshot().FilterErrors)
	}

	if column != state.ColumnNone {
		applySort(store, column, !f.desc)
	}

	switch {
	case cmd.Flags().Changed("page"):
		if !store.SetPage(f.page) {
			return fmt.Errorf("page %d out of range: %d page(s) available", f.page, store.TotalPages())
		}
	case f.persist:
		// A saved page past the end of the new result set is dropped.
		store.SetPage(savedPage)
	}

	return writeListing(cmd.OutOrStdout(), f.format, store.Snapshot())
}

// filterPatch collects only the filter flags given on the command line.
func filterPatch(cmd *cobra.Command, f listFlags) (state.FilterPatch, bool) {
	var p state.FilterPatch
	changed := cmd.Flags().Changed
	if changed("class") {
		p.Class = state.Set(f.class)
	}
	if changed("make") {
		p.Make = state.Set(f.make)
	}
	if changed("model") {
		p.Model = state.Set(f.model)
	}
	if changed("year-min") {
		p.YearMin = state.Set(state.Int(f.yearMin))
	}
	if changed("year-max") {
		p.YearMax = state.Set(state.Int(f.yearMax))
	}
	if changed("transmission") {
		p.Transmission = state.Set(f.transmission)
	}
	if changed("city-min") {
		p.CityMPGMin = state.Set(state.Float(f.cityMin))
	}
	if changed("city-max") {
		p.CityMPGMax = state.Set(state.Float(f.cityMax))
	}
	set := p.Class.Set || p.Make.Set || p.Model.Set || p.YearMin.Set || p.YearMax.Set ||
		p.Transmission.Set || p.CityMPGMin.Set || p.CityMPGMax.Set
	return p, set
}

// applySort makes column the active sort in the requested direction. SetSort
// toggles when the column is already active, so a second call fixes the
// direction.
func applySort(store *state.Store, column state.Column, asc bool) {
	_ = store.SetSort(column)
	if store.Sort().Asc != asc {
		_ = store.SetSort(column)
	}
}

func filterError(errs state.FilterErrors) error {
	var msgs []string
	if errs.Year != "" {
		msgs = append(msgs, errs.Year)
	}
	if errs.CityMPG != "" {
		msgs = append(msgs, errs.CityMPG)
	}
	return errors.New("invalid filters: " + strings.Join(msgs, "; "))
}

func columnNames() string {
	names := make([]string, len(state.Columns))
	for i, c := range state.Columns {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
