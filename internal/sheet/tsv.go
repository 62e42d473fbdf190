package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/scanner"
	"github.com/puremeth/puremeth-go/internal/utils"
)

// sheetHeader is the fixed column order of a TSV sample sheet
var sheetHeader = []string{"patient", "sample", "condition", "path"}

// SheetOptions contains options for SamplesTSV
type SheetOptions struct {
	Directory string
	Extension string

	// OutputFilename overrides the timestamped default
	// samples_<YYYYMMDD_HHMMSS>.tsv
	OutputFilename string

	// Conditions maps condition labels to path-segment patterns.
	// Defaults to Tumor:[tumor], Normal:[normal].
	Conditions domain.ConditionPatterns

	Progress bool
}

// SamplesTSV scans opts.Directory and writes a TSV sample sheet with
// patient, sample, condition, and path columns. Patient and condition are
// derived from the directory segments around a matched condition segment;
// when no segment matches, the patient falls back to the first path segment
// relative to the scan root. Rows are ordered by path.
func (g *Generator) SamplesTSV(ctx context.Context, opts SheetOptions) (string, error) {
	paths, err := scanner.Scan(ctx, opts.Directory, opts.Extension, scanner.Options{Progress: opts.Progress})
	if err != nil {
		return "", err
	}

	patterns := opts.Conditions
	if patterns == nil {
		patterns = domain.DefaultConditionPatterns()
	}

	root, err := filepath.Abs(opts.Directory)
	if err != nil {
		return "", domain.NewScanError(opts.Directory, err)
	}

	rows := make([]domain.SheetRow, 0, len(paths))
	for _, path := range paths {
		rows = append(rows, classifyRow(path, root, patterns))
	}

	if len(rows) == 0 {
		g.log.Warn().
			Str("dir", opts.Directory).
			Str("ext", utils.NormalizeExtension(opts.Extension)).
			Msg("no matching files found, writing header-only sheet")
	}

	data, err := encodeTSV(rows)
	if err != nil {
		return "", fmt.Errorf("failed to encode sheet: %w", err)
	}

	name := opts.OutputFilename
	if name == "" {
		name = fmt.Sprintf("samples_%s", g.now().Format(timestampLayout))
	}
	name = utils.EnsureSuffix(name, ".tsv")

	path, err := g.writer.Write(ctx, name, data)
	if err != nil {
		return "", err
	}

	g.log.Info().
		Str("path", path).
		Int("rows", len(rows)).
		Msg("generated sample sheet")

	return path, nil
}

// classifyRow derives patient, sample, and condition for one file
func classifyRow(path, root string, patterns domain.ConditionPatterns) domain.SheetRow {
	row := domain.SheetRow{
		Patient:   domain.ConditionUnknown,
		Sample:    domain.ConditionUnknown,
		Condition: domain.ConditionUnknown,
		Path:      path,
	}

	segments := strings.Split(path, string(filepath.Separator))

	condIdx := -1
	for i, segment := range segments {
		if label := patterns.Match(segment); label != "" {
			row.Condition = label
			condIdx = i
			break
		}
	}

	if condIdx >= 0 {
		if condIdx-1 >= 0 {
			row.Patient = segments[condIdx-1]
		}
		// The segment after the condition names the sample only when it is
		// a directory, not the file itself
		if condIdx+1 < len(segments)-1 {
			row.Sample = segments[condIdx+1]
		}
		return row
	}

	// No condition segment: derive patient and sample from the path
	// relative to the scan root
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return row
	}
	relSegments := strings.Split(rel, string(filepath.Separator))

	if len(relSegments) >= 2 {
		row.Patient = relSegments[0]
		if len(relSegments) >= 3 {
			row.Sample = relSegments[len(relSegments)-2]
		}
	}

	return row
}

// encodeTSV serializes rows as tab-separated values with a header line
func encodeTSV(rows []domain.SheetRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'

	if err := w.Write(sheetHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Patient, row.Sample, row.Condition, row.Path}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
