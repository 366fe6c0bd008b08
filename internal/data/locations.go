package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"solar-feasibility/internal/model"
)

// Location is an immutable reference record for a supported region.
// GHI and DNI are long-term daily averages in kWh/m²/day. OptimalTiltDeg
// follows the |latitude| convention.
type Location struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	GHI           float64 `json:"ghi"`
	DNI           float64 `json:"dni"`
	OptimalTiltDeg float64 `json:"optimal_tilt_deg"`
}

// Validate checks the catalog invariants for a single location.
func (l Location) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("location id is required")
	}
	if l.GHI <= 0 || l.DNI <= 0 {
		return fmt.Errorf("location %s: GHI and DNI must be > 0", l.ID)
	}
	if l.OptimalTiltDeg < 0 || l.OptimalTiltDeg > 90 {
		return fmt.Errorf("location %s: optimal tilt must be in [0, 90]", l.ID)
	}
	return nil
}

// LocationList is the on-disk shape of a location catalog.
type LocationList struct {
	UpdatedAt string     `json:"updated_at"` // ISO 8601 timestamp
	Locations []Location `json:"locations"`
}

// DefaultLocations is the built-in South African region catalog.
// Irradiance figures are long-term satellite-derived daily averages.
func DefaultLocations() []Location {
	return []Location{
		{ID: "johannesburg", Name: "Johannesburg", Latitude: -26.2, GHI: 5.4, DNI: 6.2, OptimalTiltDeg: 26},
		{ID: "pretoria", Name: "Pretoria", Latitude: -25.7, GHI: 5.5, DNI: 6.3, OptimalTiltDeg: 26},
		{ID: "cape_town", Name: "Cape Town", Latitude: -33.9, GHI: 5.2, DNI: 6.6, OptimalTiltDeg: 34},
		{ID: "durban", Name: "Durban", Latitude: -29.9, GHI: 4.6, DNI: 4.8, OptimalTiltDeg: 30},
		{ID: "gqeberha", Name: "Gqeberha", Latitude: -34.0, GHI: 5.0, DNI: 5.9, OptimalTiltDeg: 34},
		{ID: "bloemfontein", Name: "Bloemfontein", Latitude: -29.1, GHI: 5.8, DNI: 7.3, OptimalTiltDeg: 29},
		{ID: "kimberley", Name: "Kimberley", Latitude: -28.7, GHI: 6.0, DNI: 7.6, OptimalTiltDeg: 29},
		{ID: "upington", Name: "Upington", Latitude: -28.4, GHI: 6.4, DNI: 8.9, OptimalTiltDeg: 28},
		{ID: "polokwane", Name: "Polokwane", Latitude: -23.9, GHI: 5.6, DNI: 6.4, OptimalTiltDeg: 24},
		{ID: "mbombela", Name: "Mbombela", Latitude: -25.5, GHI: 5.2, DNI: 5.7, OptimalTiltDeg: 25},
	}
}

// Catalog is a location lookup keyed by ID. Construct once at startup and
// treat as read-only.
type Catalog struct {
	byID  map[string]Location
	order []string
}

// NewCatalog builds a catalog from a location slice.
func NewCatalog(locations []Location) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Location, len(locations))}
	for _, loc := range locations {
		if err := loc.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[loc.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %q", loc.ID)
		}
		c.byID[loc.ID] = loc
		c.order = append(c.order, loc.ID)
	}
	return c, nil
}

// MustDefaultCatalog builds the built-in catalog. The built-in data is
// validated by tests, so a failure here is a programming error.
func MustDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultLocations())
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup resolves a location ID, failing fast on unknown keys so a typo in
// a config never silently defaults.
func (c *Catalog) Lookup(id string) (Location, error) {
	loc, ok := c.byID[id]
	if !ok {
		return Location{}, fmt.Errorf("unknown location %q", id)
	}
	return loc, nil
}

// All returns the locations in insertion order.
func (c *Catalog) All() []Location {
	out := make([]Location, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ResolveFor resolves a system config's location key against the catalog.
func (c *Catalog) ResolveFor(cfg *model.SystemConfig) (Location, error) {
	return c.Lookup(cfg.LocationID)
}

// LoadLocations loads a location catalog override from a JSON file.
func LoadLocations(filePath string) (*LocationList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations file: %w", err)
	}

	var list LocationList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse locations file: %w", err)
	}

	return &list, nil
}

// SaveLocations saves a location catalog to a JSON file.
func SaveLocations(list *LocationList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal locations: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write locations file: %w", err)
	}

	return nil
}

// GetDefaultLocationsPath returns the catalog override path, if any.
func GetDefaultLocationsPath() string {
	if path := os.Getenv("LOCATIONS_FILE"); path != "" {
		return path
	}
	return ""
}

// OpenCatalog returns the catalog to use: the LOCATIONS_FILE override when
// set, otherwise the built-in regions.
func OpenCatalog() (*Catalog, error) {
	path := GetDefaultLocationsPath()
	if path == "" {
		return NewCatalog(DefaultLocations())
	}
	list, err := LoadLocations(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(list.Locations)
}
