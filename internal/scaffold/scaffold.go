package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/wikigen/pkg/config"
	"github.com/grovetools/wikigen/pkg/filler"
	"github.com/grovetools/wikigen/pkg/writer"
	"github.com/sirupsen/logrus"
)

//go:embed all:templates
var templatesFS embed.FS

// SampleRecord is the file name of the example item written into the items
// directory.
const SampleRecord = "stardust_crystal.json"

// Init scaffolds a wiki root described by paths. It refuses to run when a
// page template already exists.
func Init(paths config.Paths, logger *logrus.Logger) error {
	if _, err := os.Stat(paths.Template); err == nil {
		return fmt.Errorf("wiki template already exists at %s", paths.Template)
	}

	w := writer.NewFile()

	cfgData, err := config.Default().Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}
	files := []struct {
		dest    string
		content func() ([]byte, error)
	}{
		{paths.Template, embedded("templates/wiki_page_template.md")},
		{filepath.Join(paths.Root, config.ConfigFileName), func() ([]byte, error) { return cfgData, nil }},
		{filepath.Join(paths.ItemsDir, SampleRecord), embedded("templates/" + SampleRecord)},
		{paths.Mapping, embedded("templates/acnh_cosmic_mapping.json")},
	}

	for _, f := range files {
		if _, err := os.Stat(f.dest); err == nil {
			logger.Debugf("Keeping existing file: %s", f.dest)
			continue
		}
		content, err := f.content()
		if err != nil {
			return err
		}
		logger.Debugf("Writing %s", f.dest)
		if err := w.Write(f.dest, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", f.dest, err)
		}
		logger.Infof("✓ Created %s", f.dest)
	}

	for _, folder := range filler.Folders() {
		dir := filepath.Join(paths.PagesDir, folder)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}
	}
	logger.Infof("✓ Created %d category folders in %s", len(filler.Folders()), paths.PagesDir)

	logger.Info("✅ Wiki initialized successfully.")
	logger.Infof("   Next step: wikigen --root %s --data %s", paths.Root, filepath.Join(paths.ItemsDir, SampleRecord))
	return nil
}

func embedded(src string) func() ([]byte, error) {
	return func() ([]byte, error) {
		content, err := templatesFS.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded file %s: %w", src, err)
		}
		return content, nil
	}
}
