package record

import (
	"bytes"
	"encoding/json"
)

// Item is the typed form of an item record. Field order matches the order
// records are written in, and it is the source of the item JSON schema.
type Item struct {
	ID        string                  `json:"id" jsonschema:"required,description=Unique item identifier used as the page file name"`
	ACNH      ACNHData                `json:"acnh_data" jsonschema:"description=The real-world item this entry is adapted from"`
	Cosmic    CosmicData              `json:"cosmic_data" jsonschema:"description=The in-fiction Cosmic Colony item"`
	Technical TechnicalImplementation `json:"technical_implementation" jsonschema:"description=Engine integration notes"`
	Wiki      WikiMetadata            `json:"wiki_metadata" jsonschema:"description=Page bookkeeping"`
}

type ACNHData struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	SellPrice   int    `json:"sell_price" jsonschema:"description=Sell price in Bells"`
	Rarity      string `json:"rarity,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

type CosmicData struct {
	Name             string       `json:"name"`
	Category         string       `json:"category" jsonschema:"description=Category key that selects the output folder"`
	Lore             string       `json:"lore"`
	SellPriceCredits int          `json:"sell_price_credits" jsonschema:"description=Sell price in Credits"`
	Rarity           string       `json:"rarity,omitempty"`
	Location         string       `json:"location,omitempty"`
	Description      string       `json:"description,omitempty"`
	VisualTheme      *VisualTheme `json:"visual_theme,omitempty"`
}

type VisualTheme struct {
	ColorPalette    []string `json:"color_palette,omitempty"`
	ParticleEffects []string `json:"particle_effects,omitempty"`
}

type TechnicalImplementation struct {
	PrimaryClass         string         `json:"primary_class"`
	SetupSteps           []SetupStep    `json:"setup_steps"`
	ScriptableObjectType string         `json:"scriptable_object_type,omitempty"`
	IntegrationNotes     string         `json:"integration_notes,omitempty"`
	PrefabStructure      map[string]any `json:"prefab_structure,omitempty" jsonschema:"description=Nested prefab tree; nodes may carry components and children"`
}

type SetupStep struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	CodeExample string `json:"code_example,omitempty"`
}

type WikiMetadata struct {
	CreatedDate   string   `json:"created_date"`
	LastUpdated   string   `json:"last_updated"`
	Tags          []string `json:"tags"`
	NookipediaURL string   `json:"nookipedia_url,omitempty"`
	RelatedItems  []string `json:"related_items,omitempty"`
}

// Marshal encodes the item with two-space indentation and without HTML
// escaping.
func (it *Item) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(it); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
