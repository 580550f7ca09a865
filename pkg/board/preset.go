package board

import "fmt"

// Preset describes a named board size/stack-up combination from spec.md
// §6's inbound board-preset enum. Custom presets supply their own
// width/height at construction time rather than through this table.
type Preset struct {
	ID             string
	WidthMM        float64
	HeightMM       float64
	LayerCount     int
	FrontPanelEdge string
}

// presets mirrors the teacher's embedder registry: a package-level map
// populated at init time, read-only thereafter.
var presets = make(map[string]Preset)

func registerPreset(p Preset) {
	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("board: preset %q registered twice", p.ID))
	}
	presets[p.ID] = p
}

func init() {
	registerPreset(Preset{ID: "eurorack", WidthMM: 128.5, HeightMM: 128.5, LayerCount: 2, FrontPanelEdge: "top"})
	registerPreset(Preset{ID: "pedal", WidthMM: 125, HeightMM: 60, LayerCount: 2, FrontPanelEdge: "top"})
	registerPreset(Preset{ID: "desktop", WidthMM: 200, HeightMM: 150, LayerCount: 4, FrontPanelEdge: ""})
	registerPreset(Preset{ID: "rack", WidthMM: 483, HeightMM: 44, LayerCount: 2, FrontPanelEdge: "top"})
}

// GetPreset retrieves a registered preset by id. "custom" is never
// registered here; callers construct a Board directly with NewCustom.
func GetPreset(id string) (Preset, error) {
	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("board: unknown preset %q", id)
	}
	return p, nil
}

// ListPresets returns the ids of every registered preset.
func ListPresets() []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	return ids
}

// defaultLayerStack builds a layer stack of the given count following the
// routing table's layer-role assumptions (spec.md §4.4): 2-layer boards get
// a front/back signal pair; 4-layer boards add dedicated power/ground
// inner layers; 6-layer boards add a second signal pair.
func defaultLayerStack(count int) []Layer {
	switch count {
	case 2:
		return []Layer{
			{ID: "front", Role: RoleSignal},
			{ID: "back", Role: RoleSignal},
		}
	case 6:
		return []Layer{
			{ID: "front", Role: RoleSignal},
			{ID: "inner-1", Role: RolePower},
			{ID: "inner-2", Role: RoleGround},
			{ID: "inner-3", Role: RoleSignal},
			{ID: "inner-4", Role: RoleSignal},
			{ID: "back", Role: RoleSignal},
		}
	case 4:
		fallthrough
	default:
		return []Layer{
			{ID: "front", Role: RoleSignal},
			{ID: "inner-1", Role: RolePower},
			{ID: "inner-2", Role: RoleGround},
			{ID: "back", Role: RoleSignal},
		}
	}
}

// NewFromPreset builds a Board from a registered preset id.
func NewFromPreset(id string) (*Board, error) {
	p, err := GetPreset(id)
	if err != nil {
		return nil, err
	}
	return &Board{
		PresetID:       p.ID,
		WidthMM:        p.WidthMM,
		HeightMM:       p.HeightMM,
		Layers:         defaultLayerStack(p.LayerCount),
		Rules:          DefaultDesignRules(),
		FrontPanelEdge: p.FrontPanelEdge,
	}, nil
}

// NewCustom builds a "custom" preset Board with a caller-supplied outline
// and layer count.
func NewCustom(widthMM, heightMM float64, layerCount int) *Board {
	return &Board{
		PresetID: "custom",
		WidthMM:  widthMM,
		HeightMM: heightMM,
		Layers:   defaultLayerStack(layerCount),
		Rules:    DefaultDesignRules(),
	}
}
