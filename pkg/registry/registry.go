// Package registry implements the Component Model Registry: a purely
// declarative, read-only mapping from symbolic component kinds to physical
// footprint records. It performs no geometry.
//
// The registry is grounded on the teacher's pkg/themes.Loader: load once
// from YAML, validate, cache under a RWMutex, and never mutate afterward.
package registry

import (
	"fmt"
	"os"
	"sync"

	"github.com/dgraph-io/ristretto"
	"gopkg.in/yaml.v3"

	"github.com/dshills/pcbgen/pkg/pcberr"
)

// Registry resolves (kind, package) pairs to FootprintRecords. Its catalog
// is fixed at construction; only the through-hole preference can be
// changed afterwards (SetPreferThroughHole). Safe for concurrent read access.
type Registry struct {
	mu      sync.RWMutex
	entries map[entryKey]CatalogEntry
	byKind  map[Kind][]CatalogEntry

	// cache is an advisory read-through cache in front of Resolve/PinMapOf.
	// It is optional: the registry behaves identically with cache == nil,
	// falling back to direct map lookups, per the optimization-helper
	// advisory contract (spec.md §5).
	cache *ristretto.Cache

	preferThroughHole bool
}

type entryKey struct {
	kind    Kind
	pkg     string
}

// Load reads and validates a YAML catalog file, then builds a Registry
// with an advisory ristretto resolve-cache enabled.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pcberr.ConfigurationError{Field: "registry.path", Reason: err.Error()}
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, &pcberr.ConfigurationError{Field: "registry.catalog", Reason: err.Error()}
	}
	if err := cat.Validate(); err != nil {
		return nil, &pcberr.ConfigurationError{Field: "registry.catalog", Reason: err.Error()}
	}

	return NewFromCatalog(&cat, true)
}

// NewFromCatalog builds a Registry from an already-parsed, already-validated
// Catalog. withCache controls whether the advisory ristretto cache is
// constructed; callers that want to exercise the no-cache code path (as the
// optimization-helper tests do) pass false.
func NewFromCatalog(cat *Catalog, withCache bool) (*Registry, error) {
	r := &Registry{
		entries:           make(map[entryKey]CatalogEntry, len(cat.Entries)),
		byKind:            make(map[Kind][]CatalogEntry),
		preferThroughHole: true,
	}

	for _, e := range cat.Entries {
		kind, err := ParseKind(e.Kind)
		if err != nil {
			return nil, &pcberr.RegistryError{Kind: e.Kind, Reason: err.Error()}
		}
		key := entryKey{kind: kind, pkg: e.Package}
		if _, exists := r.entries[key]; exists {
			return nil, &pcberr.RegistryError{Kind: e.Kind, Package: e.Package, Reason: "duplicate catalog entry"}
		}
		r.entries[key] = e
		r.byKind[kind] = append(r.byKind[kind], e)
	}

	if withCache {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 1e4,
			MaxCost:     1 << 20,
			BufferItems: 64,
		})
		if err == nil {
			r.cache = cache
		}
		// A failed cache construction is not fatal: Resolve falls back to
		// direct lookups when r.cache is nil.
	}

	return r, nil
}

// NewDefault builds a Registry from the built-in catalog covering every
// kind in the closed set (see defaults.go), satisfying the registry
// totality testable property without requiring an external YAML file.
func NewDefault() *Registry {
	cat := defaultCatalog()
	r, err := NewFromCatalog(cat, true)
	if err != nil {
		// The built-in catalog is a programmer invariant, not user input:
		// a failure here is a bug in defaults.go, so fail loudly like the
		// teacher's embedding.Register does for programmer errors.
		panic(fmt.Sprintf("registry: built-in catalog is invalid: %v", err))
	}
	return r
}

func (r *Registry) cacheKey(kind Kind, pkg string) string {
	return fmt.Sprintf("%s\x00%s\x00%t", kind, pkg, r.preferThroughHole)
}

// Resolve maps (kind, package) to a FootprintRecord. An empty package
// string matches a package-agnostic catalog entry for that kind if one
// exists. Fails with RegistryError{Reason: "unknown kind"} or {Reason:
// "unknown package"} accordingly.
func (r *Registry) Resolve(kindName, pkg string) (FootprintRecord, error) {
	kind, err := ParseKind(kindName)
	if err != nil {
		return FootprintRecord{}, &pcberr.RegistryError{Kind: kindName, Reason: "unknown kind"}
	}

	if r.cache != nil {
		if v, ok := r.cache.Get(r.cacheKey(kind, pkg)); ok {
			return v.(FootprintRecord), nil
		}
	}

	r.mu.RLock()
	entry, ok := r.entries[entryKey{kind: kind, pkg: pkg}]
	if !ok && pkg != "" {
		entry, ok = r.entries[entryKey{kind: kind}]
	}
	r.mu.RUnlock()

	if !ok {
		if pkg != "" {
			return FootprintRecord{}, &pcberr.RegistryError{Kind: kindName, Package: pkg, Reason: "unknown package"}
		}
		return FootprintRecord{}, &pcberr.RegistryError{Kind: kindName, Reason: "unknown kind"}
	}

	record := entry.Record
	if r.preferThroughHole && entry.AudioOverride != nil {
		record = *entry.AudioOverride
	}

	if r.cache != nil {
		r.cache.Set(r.cacheKey(kind, pkg), record, 1)
	}

	return record, nil
}

// SetPreferThroughHole toggles whether AudioOverride records are
// consulted first during Resolve (spec.md §4.1: default true for audio).
func (r *Registry) SetPreferThroughHole(prefer bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preferThroughHole = prefer
}

// AudioOverride returns the through-hole footprint override for a kind, if
// the catalog declares one (axial resistor, radial electrolytic, DIP
// op-amp, and similar hand-assembly-friendly variants).
func (r *Registry) AudioOverride(kindName string) (FootprintRecord, bool) {
	kind, err := ParseKind(kindName)
	if err != nil {
		return FootprintRecord{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.byKind[kind] {
		if e.AudioOverride != nil {
			return *e.AudioOverride, true
		}
	}
	return FootprintRecord{}, false
}

// PinMapOf returns the deterministic pin-number to pin-name table for a
// kind. pinCount and variant select among keyed variants (op-amp pin
// counts 8/14, transistor variants bjt/jfet/mosfet, jack/XLR families);
// pass "" for variant and 0 for pinCount when the kind has a single table.
func (r *Registry) PinMapOf(kindName string, pinCount int, variant string) (map[int]string, error) {
	kind, err := ParseKind(kindName)
	if err != nil {
		return nil, &pcberr.RegistryError{Kind: kindName, Reason: "unknown kind"}
	}

	switch kind {
	case KindOpamp:
		switch pinCount {
		case 14:
			return map[int]string{
				1: "OUT1", 2: "IN1-", 3: "IN1+", 4: "V-",
				5: "IN2+", 6: "IN2-", 7: "OUT2", 8: "OUT3",
				9: "IN3-", 10: "IN3+", 11: "V+", 12: "IN4+",
				13: "IN4-", 14: "OUT4",
			}, nil
		case 8:
			fallthrough
		default:
			return map[int]string{
				1: "OUT1", 2: "IN1-", 3: "IN1+", 4: "V-",
				5: "IN2+", 6: "IN2-", 7: "OUT2", 8: "V+",
			}, nil
		}
	case KindTransistor:
		switch variant {
		case "jfet":
			return map[int]string{1: "S", 2: "G", 3: "D"}, nil
		case "mosfet":
			return map[int]string{1: "S", 2: "G", 3: "D"}, nil
		case "bjt":
			fallthrough
		default:
			return map[int]string{1: "E", 2: "B", 3: "C"}, nil
		}
	case KindJack:
		if variant == "xlr" {
			return map[int]string{1: "GND", 2: "HOT", 3: "COLD"}, nil
		}
		return map[int]string{1: "TIP", 2: "RING", 3: "SLEEVE"}, nil
	default:
		record, err := r.Resolve(kindName, "")
		if err != nil {
			return nil, err
		}
		return record.PinMap, nil
	}
}
