package netlist

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/pcbgen/pkg/pcberr"
	"github.com/dshills/pcbgen/pkg/registry"
)

// powerPrefixes and groundPrefixes back classify's heuristic net-name
// matching (spec.md §4.2).
var (
	powerPrefixes     = []string{"VCC", "VDD", "VSS", "V+", "V-", "+12V", "-12V", "+5V"}
	groundPrefixes    = []string{"GND", "AGND", "DGND"}
	highSpeedPrefixes = []string{"CLK", "DDR", "USB", "HDMI"}

	// audioKinds identifies kinds whose pins, when connected to a net,
	// mark that net as audio class under the classify heuristic.
	audioKinds = map[string]bool{
		"jack": true, "speaker": true, "opamp": true, "vco": true, "vcf": true, "vca": true,
	}
)

// Netlist is the flat, arena-by-id normalized IR: components and nets
// cross-reference each other by id, never by owning pointer, grounded on
// the teacher's pkg/graph.Graph.
type Netlist struct {
	registry    *registry.Registry
	Components  map[string]*Component
	Nets        map[string]*Net
	refCounters map[string]int
}

// New creates an empty Netlist bound to a Component Model Registry. The
// registry is consulted (and never mutated) on every AddComponent/Connect
// call.
func New(reg *registry.Registry) *Netlist {
	return &Netlist{
		registry:    reg,
		Components:  make(map[string]*Component),
		Nets:        make(map[string]*Net),
		refCounters: make(map[string]int),
	}
}

// AddComponent resolves kind/package against the registry, allocates a
// reference designator by prefix + next free index, and inserts the
// component into the arena. Returns the allocated ComponentId (the
// reference designator).
func (nl *Netlist) AddComponent(kind, value, pkg string, properties map[string]string) (string, error) {
	k, err := registry.ParseKind(kind)
	if err != nil {
		return "", &pcberr.RegistryError{Kind: kind, Reason: "unknown kind"}
	}

	record, err := nl.registry.Resolve(kind, pkg)
	if err != nil {
		return "", err
	}

	prefix := registry.ReferencePrefixForPackage(k, pkg)
	nl.refCounters[prefix]++
	id := fmt.Sprintf("%s%d", prefix, nl.refCounters[prefix])

	comp := &Component{
		ID:          id,
		Kind:        kind,
		Value:       value,
		Package:     pkg,
		Properties:  properties,
		FootprintID: record.FootprintID,
		PinCount:    len(record.PinMap),
		PinNames:    record.PinMap,
		Reference:   id,
		RotationDeg: record.DefaultRotation,
	}
	if err := comp.Validate(); err != nil {
		return "", &pcberr.NetlistError{Op: "add_component", Detail: err.Error()}
	}

	nl.Components[id] = comp
	return id, nil
}

// AddNet creates a new net with the given name and signal class. Rejects
// duplicate names.
func (nl *Netlist) AddNet(name string, class SignalClass) (string, error) {
	if _, exists := nl.Nets[name]; exists {
		return "", &pcberr.NetlistError{Op: "add_net", Detail: fmt.Sprintf("duplicate net name %q", name)}
	}
	n := &Net{ID: name, Class: class}
	if err := n.Validate(); err != nil {
		return "", &pcberr.NetlistError{Op: "add_net", Detail: err.Error()}
	}
	nl.Nets[name] = n
	return name, nil
}

// Connect attaches a (component, pin) endpoint to a net. pinNameOrNumber
// may be either a pin name (e.g. "TIP") or a 1-based pin number rendered
// as a string (e.g. "1"); both are validated against the component's
// registry-resolved pin map.
func (nl *Netlist) Connect(netID, componentID, pinNameOrNumber string) error {
	net, ok := nl.Nets[netID]
	if !ok {
		return &pcberr.NetlistError{Op: "connect", Detail: fmt.Sprintf("unknown net %q", netID)}
	}
	comp, ok := nl.Components[componentID]
	if !ok {
		return &pcberr.NetlistError{Op: "connect", Detail: fmt.Sprintf("unknown component %q", componentID)}
	}

	pinName, err := resolvePin(comp, pinNameOrNumber)
	if err != nil {
		return &pcberr.NetlistError{Op: "connect", Detail: err.Error()}
	}

	net.Endpoints = append(net.Endpoints, Endpoint{ComponentID: componentID, Pin: pinName})

	if audioKinds[comp.Kind] && net.Class == ClassControl {
		// A net touching an audio-kind pin is promoted to audio class even
		// if it was provisionally classified as control before this
		// connection was made (classify is a heuristic over names; this
		// keeps it consistent with the pin-derived rule in spec.md §4.2).
		net.Class = ClassAudio
	}

	return nil
}

// resolvePin validates that pinNameOrNumber identifies a real pin on comp,
// accepting either the pin name or its 1-based numeric index, and returns
// the canonical pin name.
func resolvePin(comp *Component, pinNameOrNumber string) (string, error) {
	if n, err := strconv.Atoi(pinNameOrNumber); err == nil {
		if name, ok := comp.PinNames[n]; ok {
			return name, nil
		}
		return "", fmt.Errorf("component %s: unknown pin number %s", comp.ID, pinNameOrNumber)
	}
	for _, name := range comp.PinNames {
		if strings.EqualFold(name, pinNameOrNumber) {
			return name, nil
		}
	}
	return "", fmt.Errorf("component %s: unknown pin %q", comp.ID, pinNameOrNumber)
}

// Classify applies the naming heuristic from spec.md §4.2 when an
// explicit class was not supplied at AddNet time. It is idempotent and
// may be called any time after the net's endpoints are populated.
func (nl *Netlist) Classify(netName string) (SignalClass, error) {
	net, ok := nl.Nets[netName]
	if !ok {
		return 0, &pcberr.NetlistError{Op: "classify", Detail: fmt.Sprintf("unknown net %q", netName)}
	}

	upper := strings.ToUpper(netName)
	for _, p := range groundPrefixes {
		if strings.HasPrefix(upper, p) {
			return ClassGround, nil
		}
	}
	for _, p := range powerPrefixes {
		if strings.HasPrefix(upper, p) {
			return ClassPower, nil
		}
	}
	for _, p := range highSpeedPrefixes {
		if strings.HasPrefix(upper, p) {
			return ClassHighSpeed, nil
		}
	}
	for _, ep := range net.Endpoints {
		if comp, ok := nl.Components[ep.ComponentID]; ok && audioKinds[comp.Kind] {
			return ClassAudio, nil
		}
	}
	return ClassControl, nil
}

// IterNets returns net ids in a deterministic, sorted order. Calling it
// repeatedly yields the same finite sequence (restartable), matching the
// determinism discipline the teacher applies throughout pkg/embedding.
func (nl *Netlist) IterNets() []string {
	ids := make([]string, 0, len(nl.Nets))
	for id := range nl.Nets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IterComponents returns component ids in deterministic sorted order.
func (nl *Netlist) IterComponents() []string {
	ids := make([]string, 0, len(nl.Components))
	for id := range nl.Components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks netlist-wide integrity invariants from spec.md §3:
// every endpoint references a component that still exists, and every
// reference designator is unique (guaranteed by construction here, but
// re-checked defensively for netlists assembled via the importer).
func (nl *Netlist) Validate() error {
	seenRefs := make(map[string]bool, len(nl.Components))
	for id, comp := range nl.Components {
		if seenRefs[comp.Reference] {
			return &pcberr.NetlistError{Op: "validate", Detail: fmt.Sprintf("duplicate reference designator %q", comp.Reference)}
		}
		seenRefs[comp.Reference] = true
		if id != comp.Reference {
			return &pcberr.NetlistError{Op: "validate", Detail: fmt.Sprintf("component id %q does not match reference %q", id, comp.Reference)}
		}
	}
	for netID, net := range nl.Nets {
		for _, ep := range net.Endpoints {
			if _, ok := nl.Components[ep.ComponentID]; !ok {
				return &pcberr.NetlistError{Op: "validate", Detail: fmt.Sprintf("net %q: dangling endpoint references component %q", netID, ep.ComponentID)}
			}
		}
	}
	return nil
}
