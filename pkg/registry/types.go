package registry

import (
	"errors"
	"fmt"
)

// FootprintRecord is the resolved physical description of a component kind:
// its land pattern id, its pin-number-to-pin-name table, its reference
// prefix, and a preferred default rotation.
type FootprintRecord struct {
	FootprintID      string         `yaml:"footprint_id" json:"footprint_id"`
	PinMap           map[int]string `yaml:"pin_map" json:"pin_map"`
	ReferencePrefix  string         `yaml:"reference_prefix" json:"reference_prefix"`
	DefaultRotation  int            `yaml:"default_rotation" json:"default_rotation"`
	ThroughHole      bool           `yaml:"through_hole" json:"through_hole"`
}

// CatalogEntry is one declarative row of the component model catalog: a
// (kind, package) pair mapping to a FootprintRecord, plus an optional
// through-hole override consulted when `prefer_through_hole` is set.
//
// Package variants follow spec.md's closed sets: capacitor {electrolytic,
// film, ceramic, tantalum}; transistor {bjt, jfet, mosfet}; jack {3.5mm,
// 6.35mm, xlr}. An empty Package matches any package for that kind as a
// fallback.
type CatalogEntry struct {
	Kind           string          `yaml:"kind" json:"kind"`
	Package        string          `yaml:"package,omitempty" json:"package,omitempty"`
	Record         FootprintRecord `yaml:"record" json:"record"`
	AudioOverride  *FootprintRecord `yaml:"audio_override,omitempty" json:"audio_override,omitempty"`
}

// Catalog is the full declarative set of catalog entries, as loaded from
// YAML. It mirrors the teacher's ThemePack: a flat, validated document
// loaded once and never mutated afterward.
type Catalog struct {
	Entries []CatalogEntry `yaml:"entries" json:"entries"`
}

// Validate checks that every entry names a known kind and a non-empty
// footprint id and reference prefix.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return errors.New("registry: catalog must declare at least one entry")
	}
	for i, e := range c.Entries {
		if _, err := ParseKind(e.Kind); err != nil {
			return err
		}
		if e.Record.FootprintID == "" {
			return fmt.Errorf("registry: entry %d: footprint_id is required", i)
		}
		if e.Record.ReferencePrefix == "" {
			return fmt.Errorf("registry: entry %d: reference_prefix is required", i)
		}
	}
	return nil
}
