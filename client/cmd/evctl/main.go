// Command evctl is a terminal client for the station API. It renders the
// store's derived filtered view as a table or as cards, and submits
// create/update/delete operations through the store.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"evcharge/client/stationstore"
)

const usage = `usage: evctl [-api URL] <command> [flags]

commands:
  list    list stations (card or table view, with filters)
  get     show a single station by id
  add     create a station
  update  replace a station
  delete  remove a station by id
  reset   restore the demo dataset
`

func main() {
	apiURL := flag.String("api", envOr("EVCHARGE_API", "http://localhost:5000"), "station API base URL")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	store := stationstore.NewStore(stationstore.NewClient(*apiURL, nil), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch args[0] {
	case "list":
		err = runList(ctx, store, args[1:])
	case "get":
		err = runGet(ctx, store, args[1:])
	case "add":
		err = runUpsert(ctx, store, args[1:], false)
	case "update":
		err = runUpsert(ctx, store, args[1:], true)
	case "delete":
		err = runDelete(ctx, store, args[1:])
	case "reset":
		err = store.Reset(ctx)
	default:
		flag.Usage()
		os.Exit(2)
	}

	printNotifications(store)
	if err != nil {
		os.Exit(1)
	}
}

func runList(ctx context.Context, store *stationstore.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	view := fs.String("view", "table", "view mode: table or card")
	status := fs.String("status", "", "comma-separated status filter (active,inactive,maintenance)")
	connectors := fs.String("connectors", "", "comma-separated connector filter")
	minPower := fs.Float64("min-power", 0, "minimum power output (kW)")
	maxPower := fs.Float64("max-power", 500, "maximum power output (kW)")
	search := fs.String("search", "", "case-insensitive search over name/address/city/state")
	fs.Parse(args)

	filters := stationstore.DefaultFilters()
	filters.Status = splitList(*status)
	filters.ConnectorTypes = splitList(*connectors)
	filters.PowerOutputMin = *minPower
	filters.PowerOutputMax = *maxPower
	filters.SearchQuery = *search
	store.SetFilters(filters)
	store.SetViewMode(stationstore.ViewMode(*view))

	if err := store.Fetch(ctx); err != nil {
		return err
	}

	stations := store.Filtered()
	if store.ViewMode() == stationstore.ViewCard {
		renderCards(stations)
	} else {
		renderTable(stations)
	}
	fmt.Printf("%d of %d stations shown\n", len(stations), len(store.Stations()))
	return nil
}

func runGet(ctx context.Context, store *stationstore.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("get: expected exactly one station id")
	}
	if err := store.Fetch(ctx); err != nil {
		return err
	}
	station, ok := store.GetByID(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "station %q not found\n", args[0])
		return fmt.Errorf("not found")
	}
	renderCards([]stationstore.Station{station})
	return nil
}

func runUpsert(ctx context.Context, store *stationstore.Store, args []string, update bool) error {
	name := "add"
	if update {
		name = "update"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	id := fs.String("id", "", "station id")
	stationName := fs.String("name", "", "station name")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "state")
	zip := fs.String("zip", "", "zip code")
	lat := fs.String("lat", "", "latitude")
	lng := fs.String("lng", "", "longitude")
	power := fs.String("power", "", "power output (kW)")
	status := fs.String("status", "inactive", "status: active, inactive or maintenance")
	connectors := fs.String("connectors", "", "comma-separated connector types (at least one)")
	fs.Parse(args)

	station, err := buildStation(*id, *stationName, *address, *city, *state, *zip, *lat, *lng, *power, *status, *connectors)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if update {
		return store.Update(ctx, *station)
	}
	_, err = store.Add(ctx, *station)
	return err
}

func runDelete(ctx context.Context, store *stationstore.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete: expected exactly one station id")
	}
	return store.Delete(ctx, args[0])
}

// buildStation performs the same field-level validation the station form
// applies before submitting: required fields, numeric coercion and a
// non-empty connector set.
func buildStation(id, name, address, city, state, zip, lat, lng, power, status, connectors string) (*stationstore.Station, error) {
	missing := []string{}
	required := []struct{ field, value string }{
		{"id", id}, {"name", name}, {"address", address},
		{"city", city}, {"state", state}, {"zip", zip},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil || math.IsInf(latitude, 0) {
		return nil, fmt.Errorf("invalid latitude %q", lat)
	}
	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil || math.IsInf(longitude, 0) {
		return nil, fmt.Errorf("invalid longitude %q", lng)
	}
	powerOutput, err := strconv.ParseFloat(power, 64)
	if err != nil || powerOutput <= 0 {
		return nil, fmt.Errorf("invalid power output %q", power)
	}

	connectorList := splitList(connectors)
	if len(connectorList) == 0 {
		return nil, fmt.Errorf("at least one connector type is required")
	}

	return &stationstore.Station{
		ID:             id,
		Name:           name,
		Address:        address,
		City:           city,
		State:          state,
		ZipCode:        zip,
		Latitude:       stationstore.Numeric(latitude),
		Longitude:      stationstore.Numeric(longitude),
		PowerOutput:    stationstore.Numeric(powerOutput),
		Status:         status,
		ConnectorTypes: connectorList,
	}, nil
}

func renderTable(stations []stationstore.Station) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tSTATE\tSTATUS\tPOWER (kW)\tCONNECTORS")
	for _, s := range stations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f\t%s\n",
			s.ID, s.Name, s.City, s.State, s.Status,
			float64(s.PowerOutput), strings.Join(s.ConnectorTypes, ","))
	}
	w.Flush()
}

func renderCards(stations []stationstore.Station) {
	for _, s := range stations {
		fmt.Printf("%s [%s]\n", s.Name, s.Status)
		fmt.Printf("  id:         %s\n", s.ID)
		fmt.Printf("  address:    %s, %s, %s %s\n", s.Address, s.City, s.State, s.ZipCode)
		fmt.Printf("  location:   %.4f, %.4f\n", float64(s.Latitude), float64(s.Longitude))
		fmt.Printf("  power:      %.1f kW\n", float64(s.PowerOutput))
		fmt.Printf("  connectors: %s\n", strings.Join(s.ConnectorTypes, ", "))
		fmt.Println()
	}
}

func printNotifications(store *stationstore.Store) {
	for _, n := range store.DrainNotifications() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Severity, n.Message)
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
