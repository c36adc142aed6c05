package generator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grovetools/wikigen/pkg/config"
	"github.com/grovetools/wikigen/pkg/filler"
	"github.com/grovetools/wikigen/pkg/markdown"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stardust = `{"id":"stardust_crystal","acnh_data":{"name":"Amethyst","sell_price":600},"cosmic_data":{"name":"Stardust Crystal","category":"metallic_compound","sell_price_credits":900,"lore":"Formed in nebula cores."}}`

const pageTemplate = `# {{cosmic_name}}

Based on [{{acnh_name}}]({{nookipedia_url}}).

| | ACNH | Cosmic |
|---|---|---|
| Price | {{acnh_bells}} | {{cosmic_credits}} |

## Lore

{{cosmic_lore_description}}

## Implementation

{{implementation_overview}}

### Steps

{{implementation_steps}}

*Last updated {{updated_date}}* {{unknown_token}}
`

type fixture struct {
	root  string
	paths config.Paths
	gen   *Generator
	hook  *logtest.Hook
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	_, paths, err := config.Load(root, "")
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Dir(paths.Template), 0755))
	require.NoError(t, os.WriteFile(paths.Template, []byte(pageTemplate), 0644))

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	clock := filler.WithClock(func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) })

	return &fixture{
		root:  root,
		paths: paths,
		gen:   New(logger, paths, WithFiller(filler.New(clock))),
		hook:  hook,
	}
}

func (f *fixture) writeData(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.root, "data", name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerateDefaultPath(t *testing.T) {
	f := newFixture(t)
	data := f.writeData(t, "stardust.json", stardust)

	out, err := f.gen.Generate(data, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "pages", "materials", "stardust_crystal.md"), out)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(page)
	assert.Contains(t, content, "# Stardust Crystal\n")
	assert.Contains(t, content, "| Price | 600 | 900 |")
	assert.Contains(t, content, "Formed in nebula cores.")
	assert.Contains(t, content, "Based on [Amethyst](#).")
	assert.Contains(t, content, "*Last updated 2026-10-16* {{unknown_token}}")

	entry := f.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, out, entry.Data["path"])
}

func TestGenerateUnknownCategoryGoesToMisc(t *testing.T) {
	f := newFixture(t)
	data := f.writeData(t, "koi.json", `{"id": "comet_koi", "cosmic_data": {"category": "fish"}}`)

	out, err := f.gen.Generate(data, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "pages", "misc", "comet_koi.md"), out)
}

func TestGenerateMissingIDAndCategory(t *testing.T) {
	f := newFixture(t)
	data := f.writeData(t, "bare.json", `{}`)

	out, err := f.gen.Generate(data, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "pages", "misc", "unknown.md"), out)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "# Unknown Item")
	assert.Contains(t, string(page), "No specific setup steps provided.")
}

func TestGenerateOutputOverride(t *testing.T) {
	f := newFixture(t)
	data := f.writeData(t, "stardust.json", stardust)
	custom := filepath.Join(f.root, "elsewhere", "nested", "page.md")

	out, err := f.gen.Generate(data, custom)
	require.NoError(t, err)
	assert.Equal(t, custom, out)
	assert.FileExists(t, custom)
	assert.NoDirExists(t, filepath.Join(f.root, "pages"))
}

func TestGenerateOverwritesExistingPage(t *testing.T) {
	f := newFixture(t)
	data := f.writeData(t, "stardust.json", stardust)
	target := filepath.Join(f.root, "pages", "materials", "stardust_crystal.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("hand edits"), 0644))

	_, err := f.gen.Generate(data, "")
	require.NoError(t, err)

	page, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "hand edits")
}

func TestGenerateStepsOutline(t *testing.T) {
	f := newFixture(t)
	data := f.writeData(t, "steps.json", `{"id": "drone", "cosmic_data": {"category": "micro_drone"},
		"technical_implementation": {"primary_class": "Tool", "setup_steps": [
			{"step": 1, "description": "Spawn", "code_example": "Instantiate(drone);"},
			{"step": 2, "description": "Bind input"}
		]}}`)

	out, err := f.gen.Generate(data, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "pages", "micro_drones", "drone.md"), out)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	outline := markdown.Outline(page)
	assert.Equal(t, []string{"1. Spawn", "2. Bind input"}, outline.HeadingsAt(4))
	assert.Equal(t, 1, outline.CodeBlocks)
	assert.Equal(t, 1, f.hook.LastEntry().Data["code_blocks"])
}

func TestGenerateMissingTemplate(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.Remove(f.paths.Template))
	data := f.writeData(t, "stardust.json", stardust)

	_, err := f.gen.Generate(data, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoDirExists(t, filepath.Join(f.root, "pages"))
}

func TestGenerateMalformedData(t *testing.T) {
	f := newFixture(t)
	data := f.writeData(t, "broken.json", `{"id": "broken",`)

	_, err := f.gen.Generate(data, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse data file")
	assert.NoDirExists(t, filepath.Join(f.root, "pages"))
}

func TestGenerateMissingData(t *testing.T) {
	f := newFixture(t)

	_, err := f.gen.Generate(filepath.Join(f.root, "nope.json"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
