// Package catalog exposes the fixed facet vocabularies offered by the
// filter controls. The vocabularies ship embedded with the binary; the
// listings collaborator is the source of truth for the actual data.
package catalog

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Catalog lists every selectable facet value.
type Catalog struct {
	Locations     []string `yaml:"locations" json:"locations"`
	CarTypes      []string `yaml:"carTypes" json:"carTypes"`
	Transmissions []string `yaml:"transmissions" json:"transmissions"`
	FuelTypes     []string `yaml:"fuelTypes" json:"fuelTypes"`
	Colors        []string `yaml:"colors" json:"colors"`
	Capacities    []string `yaml:"capacities" json:"capacities"`
	Mileages      []string `yaml:"mileages" json:"mileages"`
	SortKeys      []string `yaml:"sortKeys" json:"sortKeys"`
}

var loaded *Catalog

func init() {
	var c Catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		panic("catalog: embedded vocabulary is malformed: " + err.Error())
	}
	loaded = &c
}

// Get returns the embedded catalog.
func Get() *Catalog {
	return loaded
}

// ValidLocation reports whether value is a known city. Empty means "any".
func (c *Catalog) ValidLocation(value string) bool {
	return value == "" || contains(c.Locations, value)
}

// ValidCarType reports whether value is a known car type.
func (c *Catalog) ValidCarType(value string) bool {
	return value == "" || contains(c.CarTypes, value)
}

// ValidTransmission reports whether value is a known transmission.
func (c *Catalog) ValidTransmission(value string) bool {
	return value == "" || contains(c.Transmissions, value)
}

// ValidFuelType reports whether value is a known fuel type.
func (c *Catalog) ValidFuelType(value string) bool {
	return value == "" || contains(c.FuelTypes, value)
}

// ValidColor reports whether value is a known color bucket.
func (c *Catalog) ValidColor(value string) bool {
	return value == "" || contains(c.Colors, value)
}

// ValidCapacity reports whether value is a known capacity bucket.
func (c *Catalog) ValidCapacity(value string) bool {
	return value == "" || contains(c.Capacities, value)
}

// ValidMileage reports whether value is a known mileage bucket.
func (c *Catalog) ValidMileage(value string) bool {
	return value == "" || contains(c.Mileages, value)
}

// ValidSortKey reports whether value is a supported sort order.
func (c *Catalog) ValidSortKey(value string) bool {
	return value == "" || contains(c.SortKeys, value)
}

func contains(values []string, value string) bool {
	for _, item := range values {
		if item == value {
			return true
		}
	}
	return false
}
