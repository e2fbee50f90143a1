// Package catalog is the bundled, read-only list of marketplace services
// and the locations shown on the dashboard map.
package catalog

import (
	_ "embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/trademinutes/tmclient/internal/common"
)

// PerPage is the number of services on one catalog page.
const PerPage = 8

//go:embed services.yaml
var bundled []byte

type Service struct {
	ID          int      `yaml:"id"`
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Rating      float64  `yaml:"rating"`
	Reviews     int      `yaml:"reviews"`
	User        string   `yaml:"user"`
	Avatar      string   `yaml:"avatar"`
	Price       int      `yaml:"price"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description,omitempty"`
	Includes    []string `yaml:"includes,omitempty"`
}

// Location is a map marker.
type Location struct {
	Label string  `yaml:"label"`
	Lat   float64 `yaml:"lat"`
	Lng   float64 `yaml:"lng"`
}

// OSMLink points at the location on openstreetmap.org.
func (l Location) OSMLink() string {
	lat := strconv.FormatFloat(l.Lat, 'f', -1, 64)
	lng := strconv.FormatFloat(l.Lng, 'f', -1, 64)
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s#map=12/%s/%s", lat, lng, lat, lng)
}

type Catalog struct {
	services  []Service
	locations []Location
}

type document struct {
	Services  []Service  `yaml:"services"`
	Locations []Location `yaml:"locations"`
}

// Load parses the bundled catalog.
func Load() (*Catalog, error) {
	return Parse(bundled)
}

// Parse decodes a catalog document. Every service needs a unique slug.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Services))
	for i, s := range doc.Services {
		if s.Slug == "" {
			return nil, fmt.Errorf("service #%d: empty slug: %w", i, common.ErrorValidation)
		}
		if _, dup := seen[s.Slug]; dup {
			return nil, fmt.Errorf("service %q: duplicate slug: %w", s.Slug, common.ErrorValidation)
		}
		seen[s.Slug] = struct{}{}
	}
	return &Catalog{services: doc.Services, locations: doc.Locations}, nil
}

// Page is one slice of the catalog. Number is 1-based.
type Page struct {
	Number int
	Total  int
	Items  []Service
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.Total }

func (c *Catalog) TotalPages() int {
	return (len(c.services) + PerPage - 1) / PerPage
}

// Page returns page n, clamped into [1, TotalPages].
func (c *Catalog) Page(n int) Page {
	total := c.TotalPages()
	n = min(max(n, 1), max(total, 1))

	start := min((n-1)*PerPage, len(c.services))
	end := min(start+PerPage, len(c.services))
	items := make([]Service, end-start)
	copy(items, c.services[start:end])
	return Page{Number: n, Total: total, Items: items}
}

func (c *Catalog) BySlug(slug string) (Service, error) {
	for _, s := range c.services {
		if s.Slug == slug {
			return s, nil
		}
	}
	return Service{}, fmt.Errorf("service %q: %w", slug, common.ErrorNotFound)
}

func (c *Catalog) Len() int { return len(c.services) }

func (c *Catalog) Locations() []Location {
	out := make([]Location, len(c.locations))
	copy(out, c.locations)
	return out
}
