package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/wikigen/pkg/config"
	"github.com/grovetools/wikigen/pkg/filler"
	"github.com/grovetools/wikigen/pkg/markdown"
	"github.com/grovetools/wikigen/pkg/record"
	"github.com/grovetools/wikigen/pkg/writer"
	"github.com/sirupsen/logrus"
)

// Generator turns item records into wiki pages for a single wiki root.
type Generator struct {
	logger *logrus.Logger
	paths  config.Paths
	filler *filler.Filler
	writer writer.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithFiller replaces the default template filler.
func WithFiller(f *filler.Filler) Option {
	return func(g *Generator) { g.filler = f }
}

// WithWriter replaces the default atomic file writer.
func WithWriter(w writer.Writer) Option {
	return func(g *Generator) { g.writer = w }
}

func New(logger *logrus.Logger, paths config.Paths, opts ...Option) *Generator {
	g := &Generator{
		logger: logger,
		paths:  paths,
		filler: filler.New(),
		writer: writer.NewFile(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Paths returns the paths the generator reads from and writes to.
func (g *Generator) Paths() config.Paths {
	return g.paths
}

// LoadTemplate reads the page template.
func (g *Generator) LoadTemplate() (string, error) {
	data, err := os.ReadFile(g.paths.Template)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", g.paths.Template, err)
	}
	return string(data), nil
}

// Generate reads the record in dataFile and writes its page. When
// outputPath is empty the page goes to DefaultOutputPath. It returns the
// path written.
func (g *Generator) Generate(dataFile, outputPath string) (string, error) {
	g.logger.Debugf("Loading item record: %s", dataFile)
	rec, err := record.Load(dataFile)
	if err != nil {
		return "", err
	}
	return g.GenerateRecord(rec, outputPath)
}

// GenerateRecord writes the page for an already loaded record. An existing
// file at the destination is replaced.
func (g *Generator) GenerateRecord(rec *record.Record, outputPath string) (string, error) {
	tmpl, err := g.LoadTemplate()
	if err != nil {
		return "", err
	}

	filled := g.filler.Fill(tmpl, rec)

	if outputPath == "" {
		outputPath = g.DefaultOutputPath(rec)
	}
	if err := g.writer.Write(outputPath, []byte(filled)); err != nil {
		return "", fmt.Errorf("failed to write wiki page: %w", err)
	}

	outline := markdown.Outline([]byte(filled))
	g.logger.WithFields(logrus.Fields{
		"path":        outputPath,
		"headings":    len(outline.Headings),
		"code_blocks": outline.CodeBlocks,
	}).Infof("✅ Generated wiki page: %s", outputPath)

	return outputPath, nil
}

// DefaultOutputPath is <pages>/<category folder>/<id>.md.
func (g *Generator) DefaultOutputPath(rec *record.Record) string {
	folder := filler.CategoryFolder(rec.Cosmic().Lookup("category", filler.DefaultFolder))
	id := rec.Lookup("id", "unknown")
	return filepath.Join(g.paths.PagesDir, folder, id+".md")
}
