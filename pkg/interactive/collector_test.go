package interactive

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grovetools/wikigen/pkg/config"
	"github.com/grovetools/wikigen/pkg/generator"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPrompter struct {
	answers []string
	labels  []string
	failAt  int
}

func (p *scriptedPrompter) Prompt(label string) (string, error) {
	p.labels = append(p.labels, label)
	if p.failAt > 0 && len(p.labels) == p.failAt {
		return "", errors.New("interrupted")
	}
	i := len(p.labels) - 1
	if i >= len(p.answers) {
		return "", nil
	}
	return p.answers[i], nil
}

var today = func() time.Time {
	return time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)
}

func setupRoot(t *testing.T, withMapping bool) (*generator.Generator, config.Paths) {
	t.Helper()
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	root := t.TempDir()
	_, paths, err := config.Load(root, "")
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(paths.Template), 0755))
	require.NoError(t, os.WriteFile(paths.Template, []byte("# {{cosmic_name}}\n\n{{acnh_bells}} / {{cosmic_credits}}\n\nUpdated {{updated_date}}\n"), 0644))
	if withMapping {
		require.NoError(t, os.MkdirAll(filepath.Dir(paths.Mapping), 0755))
		require.NoError(t, os.WriteFile(paths.Mapping, []byte(`{"amethyst": "stardust_crystal"}`), 0644))
	}

	logger, _ := test.NewNullLogger()
	return generator.New(logger, paths), paths
}

func TestRunGeneratesPage(t *testing.T) {
	gen, paths := setupRoot(t, true)
	logger, _ := test.NewNullLogger()
	prompter := &scriptedPrompter{answers: []string{
		"Amethyst", "Stardust Crystal", "metallic_compound", "600", "Formed in nebula cores.", "PickableItem",
	}}

	out, err := New(logger, gen, prompter, WithClock(today)).Run()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(paths.PagesDir, "materials", "stardust_crystal.md"), out)
	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Stardust Crystal\n\n600 / 600\n\nUpdated 2026-10-16\n", string(page))

	assert.Equal(t, []string{
		"ACNH Item Name",
		"Cosmic Colony Name",
		"Category (fish/bug/tool/material/etc)",
		"Sell Price (Bells/Credits)",
		"Cosmic Lore Description",
		"Primary TopDown Engine Class (PickableItem/Tool/etc)",
	}, prompter.labels)

	data, err := os.ReadFile(paths.TempInput)
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "stardust_crystal", saved["id"])

	cosmic := saved["cosmic_data"].(map[string]any)
	assert.Equal(t, "Formed in nebula cores.", cosmic["lore"])
	assert.EqualValues(t, 600, cosmic["sell_price_credits"])

	wiki := saved["wiki_metadata"].(map[string]any)
	assert.Equal(t, "2026-10-16", wiki["created_date"])
	assert.Equal(t, "2026-10-16", wiki["last_updated"])
	assert.Empty(t, wiki["tags"])

	tech := saved["technical_implementation"].(map[string]any)
	assert.Equal(t, "PickableItem", tech["primary_class"])
	assert.Empty(t, tech["setup_steps"])
}

func TestRunMissingMappingWritesNothing(t *testing.T) {
	gen, paths := setupRoot(t, false)
	logger, _ := test.NewNullLogger()
	prompter := &scriptedPrompter{}

	_, err := New(logger, gen, prompter, WithClock(today)).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load mapping")

	assert.Empty(t, prompter.labels)
	assert.NoFileExists(t, paths.TempInput)
	assert.NoDirExists(t, paths.PagesDir)
}

func TestRunStopsOnPromptError(t *testing.T) {
	gen, paths := setupRoot(t, true)
	logger, _ := test.NewNullLogger()
	prompter := &scriptedPrompter{answers: []string{"Amethyst", "Stardust Crystal"}, failAt: 3}

	_, err := New(logger, gen, prompter).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Category")
	assert.Len(t, prompter.labels, 3)
	assert.NoFileExists(t, paths.TempInput)
}

func TestRunNonNumericPriceIsZero(t *testing.T) {
	gen, paths := setupRoot(t, true)
	logger, _ := test.NewNullLogger()
	prompter := &scriptedPrompter{answers: []string{"Sea Bass", "Void Bass", "fish", "lots", "", ""}}

	out, err := New(logger, gen, prompter, WithClock(today)).Run()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(paths.PagesDir, "misc", "void_bass.md"), out)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "0 / 0")
}

func TestParsePrice(t *testing.T) {
	tests := map[string]int{
		"":                     0,
		"600":                  600,
		"007":                  7,
		"12a":                  0,
		"-5":                   0,
		" 5":                   0,
		"1.5":                  0,
		"١٢":                   0,
		"99999999999999999999": 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParsePrice(in), "input %q", in)
	}
}

func TestItemID(t *testing.T) {
	assert.Equal(t, "stardust_crystal", ItemID("Stardust Crystal"))
	assert.Equal(t, "comet__koi", ItemID("Comet  Koi"))
	assert.Equal(t, "", ItemID(""))
}

func TestBuildItemUsesOnePriceForBoth(t *testing.T) {
	item := BuildItem(Answers{CosmicName: "Moon Jelly", SellPrice: "250"}, today())
	assert.Equal(t, 250, item.ACNH.SellPrice)
	assert.Equal(t, 250, item.Cosmic.SellPriceCredits)
	assert.Equal(t, "moon_jelly", item.ID)
	assert.Equal(t, "2026-10-16", item.Wiki.CreatedDate)
}
