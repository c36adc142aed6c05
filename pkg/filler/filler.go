// Package filler substitutes {{key}} placeholders in a wiki page template
// with values computed from an item record.
//
// Substitution is a single pass over the template: a value that itself
// contains a {{key}} token is written verbatim and never expanded. Tokens
// outside the recognized vocabulary are left untouched.
package filler

import (
	"strings"
	"time"

	"github.com/grovetools/wikigen/pkg/record"
)

// DateLayout is the format of created and updated dates.
const DateLayout = "2006-01-02"

// Vocabulary lists the recognized placeholder keys in substitution order.
var Vocabulary = []string{
	"cosmic_name",
	"acnh_name",
	"nookipedia_url",
	"acnh_category",
	"cosmic_category",
	"acnh_bells",
	"cosmic_credits",
	"acnh_rarity",
	"cosmic_rarity",
	"acnh_location",
	"cosmic_location",
	"cosmic_lore_description",
	"cosmic_lore_extended",
	"item_json_data",
	"primary_class",
	"implementation_overview",
	"implementation_steps",
	"code_example",
	"prefab_hierarchy",
	"acnh_description",
	"cosmic_description",
	"related_items_list",
	"tags_list",
	"created_date",
	"updated_date",
	"item_id",
	"category",
}

// Replacement is the computed value of one placeholder.
type Replacement struct {
	Key   string
	Value string
}

// Filler fills templates from item records.
type Filler struct {
	now func() time.Time
}

// Option configures a Filler.
type Option func(*Filler)

// WithClock sets the clock used for default dates.
func WithClock(now func() time.Time) Option {
	return func(f *Filler) { f.now = now }
}

func New(opts ...Option) *Filler {
	f := &Filler{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Token returns the placeholder text for key.
func Token(key string) string {
	return "{{" + key + "}}"
}

// Replacements computes every placeholder value for rec, in Vocabulary order.
func (f *Filler) Replacements(rec *record.Record) []Replacement {
	acnh := rec.ACNH()
	cosmic := rec.Cosmic()
	tech := rec.Technical()
	wiki := rec.Wiki()
	today := f.now().Format(DateLayout)

	values := map[string]string{
		"cosmic_name":             cosmic.Lookup("name", "Unknown Item"),
		"acnh_name":               acnh.Lookup("name", "Unknown"),
		"nookipedia_url":          wiki.Lookup("nookipedia_url", "#"),
		"acnh_category":           acnh.Lookup("category", "Unknown"),
		"cosmic_category":         cosmic.Lookup("category", "Unknown"),
		"acnh_bells":              acnh.Lookup("sell_price", "0"),
		"cosmic_credits":          cosmic.Lookup("sell_price_credits", "0"),
		"acnh_rarity":             acnh.Lookup("rarity", "Unknown"),
		"cosmic_rarity":           cosmic.Lookup("rarity", "Unknown"),
		"acnh_location":           acnh.Lookup("location", "Unknown"),
		"cosmic_location":         cosmic.Lookup("location", "Unknown"),
		"cosmic_lore_description": cosmic.Lookup("lore", ""),
		"cosmic_lore_extended":    extendedLore(cosmic),
		"item_json_data":          rec.Indented(),
		"primary_class":           tech.Lookup("primary_class", "Unknown"),
		"implementation_overview": implementationOverview(tech),
		"implementation_steps":    implementationSteps(tech),
		"code_example":            codeExamples(tech),
		"prefab_hierarchy":        prefabHierarchy(tech),
		"acnh_description":        acnh.Lookup("description", "No description available"),
		"cosmic_description":      cosmic.Lookup("description", cosmic.Lookup("lore", "")),
		"related_items_list":      relatedItems(wiki),
		"tags_list":               tagList(wiki),
		"created_date":            wiki.Lookup("created_date", today),
		"updated_date":            wiki.Lookup("last_updated", today),
		"item_id":                 rec.Lookup("id", "unknown_id"),
		"category":                CategoryFolder(cosmic.Lookup("category", "")),
	}

	out := make([]Replacement, 0, len(Vocabulary))
	for _, key := range Vocabulary {
		out = append(out, Replacement{Key: key, Value: values[key]})
	}
	return out
}

// Fill returns template with every recognized placeholder replaced.
func (f *Filler) Fill(template string, rec *record.Record) string {
	replacements := f.Replacements(rec)
	oldnew := make([]string, 0, 2*len(replacements))
	for _, r := range replacements {
		oldnew = append(oldnew, Token(r.Key), r.Value)
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}
