// Package interactive builds a minimal item record from terminal prompts and
// generates its page.
package interactive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grovetools/wikigen/pkg/filler"
	"github.com/grovetools/wikigen/pkg/generator"
	"github.com/grovetools/wikigen/pkg/record"
	"github.com/grovetools/wikigen/pkg/writer"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

// Answers are the fields collected from the operator.
type Answers struct {
	ACNHName     string
	CosmicName   string
	Category     string
	SellPrice    string
	Lore         string
	PrimaryClass string
}

type question struct {
	section string
	label   string
	answer  func(*Answers) *string
}

// questions are asked strictly in this order. A banner is printed whenever
// the section changes.
var questions = []question{
	{"Basic Information", "ACNH Item Name", func(a *Answers) *string { return &a.ACNHName }},
	{"Basic Information", "Cosmic Colony Name", func(a *Answers) *string { return &a.CosmicName }},
	{"Basic Information", "Category (fish/bug/tool/material/etc)", func(a *Answers) *string { return &a.Category }},
	{"Pricing", "Sell Price (Bells/Credits)", func(a *Answers) *string { return &a.SellPrice }},
	{"Lore", "Cosmic Lore Description", func(a *Answers) *string { return &a.Lore }},
	{"Lore", "Primary TopDown Engine Class (PickableItem/Tool/etc)", func(a *Answers) *string { return &a.PrimaryClass }},
}

// Collector runs the interactive flow.
type Collector struct {
	logger   *logrus.Logger
	gen      *generator.Generator
	prompter Prompter
	writer   writer.Writer
	now      func() time.Time
}

// Option configures a Collector.
type Option func(*Collector)

// WithClock sets the clock used for the record dates.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// WithWriter replaces the writer used for the synthesized record.
func WithWriter(w writer.Writer) Option {
	return func(c *Collector) { c.writer = w }
}

func New(logger *logrus.Logger, gen *generator.Generator, prompter Prompter, opts ...Option) *Collector {
	c := &Collector{
		logger:   logger,
		gen:      gen,
		prompter: prompter,
		writer:   writer.NewFile(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run loads the mapping reference, asks every question, writes the
// synthesized record to the interactive temp file and generates its page.
// It returns the page path.
func (c *Collector) Run() (string, error) {
	paths := c.gen.Paths()
	pterm.DefaultHeader.Println("Cosmic Colony Wiki Page Generator - Interactive Mode")

	mapping, err := LoadMapping(paths.Mapping)
	if err != nil {
		return "", err
	}
	c.logger.Debugf("Loaded mapping reference with %d entries from %s", len(mapping.Fields()), paths.Mapping)

	answers, err := c.Ask()
	if err != nil {
		return "", err
	}

	item := BuildItem(answers, c.now())
	data, err := item.Marshal()
	if err != nil {
		return "", fmt.Errorf("failed to encode item record: %w", err)
	}
	if err := c.writer.Write(paths.TempInput, data); err != nil {
		return "", fmt.Errorf("failed to save interactive record: %w", err)
	}
	c.logger.Debugf("Saved interactive record to %s", paths.TempInput)

	out, err := c.gen.Generate(paths.TempInput, "")
	if err != nil {
		return "", err
	}

	pterm.Success.Println("Wiki page generated! You can now edit it manually to add more details.")
	return out, nil
}

// Ask runs the prompts in order. The first prompt error aborts.
func (c *Collector) Ask() (Answers, error) {
	var answers Answers
	section := ""
	for _, q := range questions {
		if q.section != section {
			section = q.section
			pterm.DefaultSection.Println(section)
		}
		value, err := c.prompter.Prompt(q.label)
		if err != nil {
			return Answers{}, fmt.Errorf("prompt %q: %w", q.label, err)
		}
		*q.answer(&answers) = value
	}
	return answers, nil
}

// LoadMapping reads the ACNH to Cosmic mapping file.
func LoadMapping(path string) (record.Value, error) {
	rec, err := record.Load(path)
	if err != nil {
		return record.Value{}, fmt.Errorf("failed to load mapping: %w", err)
	}
	return rec.Value, nil
}

// BuildItem synthesizes the minimal record for a set of answers. Both dates
// are set to today.
func BuildItem(a Answers, today time.Time) record.Item {
	price := ParsePrice(a.SellPrice)
	date := today.Format(filler.DateLayout)

	return record.Item{
		ID: ItemID(a.CosmicName),
		ACNH: record.ACNHData{
			Name:      a.ACNHName,
			Category:  a.Category,
			SellPrice: price,
		},
		Cosmic: record.CosmicData{
			Name:             a.CosmicName,
			Category:         a.Category,
			Lore:             a.Lore,
			SellPriceCredits: price,
		},
		Technical: record.TechnicalImplementation{
			PrimaryClass: a.PrimaryClass,
			SetupSteps:   []record.SetupStep{},
		},
		Wiki: record.WikiMetadata{
			CreatedDate: date,
			LastUpdated: date,
			Tags:        []string{},
		},
	}
}

// ItemID lowercases name and replaces spaces with underscores.
func ItemID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// ParsePrice converts a string of ASCII digits. Anything else, including
// values that overflow an int, is 0.
func ParsePrice(s string) int {
	if s == "" {
		return 0
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
