package sheet

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/output"
	"github.com/puremeth/puremeth-go/internal/scanner"
	"github.com/puremeth/puremeth-go/internal/utils"
)

// timestampLayout is used for default manifest filenames
const timestampLayout = "20060102_150405"

// Generator builds manifests from directory scans
type Generator struct {
	log    *utils.Logger
	writer *output.Writer
	now    func() time.Time
}

// NewGenerator creates a new manifest generator
func NewGenerator(log *utils.Logger, writer *output.Writer) *Generator {
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	if writer == nil {
		writer = output.NewWriter(output.WriterOptions{})
	}

	return &Generator{
		log:    log.WithComponent("sheet"),
		writer: writer,
		now:    time.Now,
	}
}

// SamplesOptions contains options for SamplesYAML
type SamplesOptions struct {
	Directory string
	Extension string

	// OutputFilename overrides the timestamped default
	// samples_<YYYYMMDD_HHMMSS>.yaml
	OutputFilename string

	Strategy domain.GroupStrategy
	Progress bool
}

// samplesManifest is the serialized form of a samples manifest
type samplesManifest struct {
	Samples domain.SampleSet `yaml:"samples"`
}

// SamplesYAML scans opts.Directory for files matching opts.Extension, groups
// them into samples, and writes a YAML manifest. It returns the path of the
// written file.
//
// Sample names and path lists are emitted in sorted order, so an unchanged
// directory tree reproduces a byte-identical manifest.
func (g *Generator) SamplesYAML(ctx context.Context, opts SamplesOptions) (string, error) {
	paths, err := scanner.Scan(ctx, opts.Directory, opts.Extension, scanner.Options{Progress: opts.Progress})
	if err != nil {
		return "", err
	}

	set, err := scanner.Group(paths, opts.Extension, opts.Strategy)
	if err != nil {
		return "", err
	}

	if set.Len() == 0 {
		g.log.Warn().
			Str("dir", opts.Directory).
			Str("ext", utils.NormalizeExtension(opts.Extension)).
			Msg("no matching files found, writing empty manifest")
	}

	data, err := yaml.Marshal(samplesManifest{Samples: set})
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}

	name := opts.OutputFilename
	if name == "" {
		name = fmt.Sprintf("samples_%s", g.now().Format(timestampLayout))
	}
	name = utils.EnsureSuffix(name, ".yaml", ".yml")

	path, err := g.writer.Write(ctx, name, data)
	if err != nil {
		return "", err
	}

	g.log.Info().
		Str("path", path).
		Int("samples", set.Len()).
		Int("files", len(paths)).
		Msg("generated samples manifest")

	return path, nil
}
