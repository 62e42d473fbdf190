package scanner

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/utils"
)

// DiscoverOptions controls filename-based patient discovery
type DiscoverOptions struct {
	// Extension filters files and is stripped to form sample names
	Extension string

	// PatientPattern marks the start of the patient ID inside a filename
	PatientPattern string

	// TumorPattern and NormalPattern classify a file by substring match
	TumorPattern  string
	NormalPattern string
}

// DiscoverPatients scans dir for files matching opts.Extension and groups
// them by patient ID and sample type based on filename patterns. The patient
// ID is the first two underscore-separated tokens starting at
// PatientPattern; files without a patient or tumor/normal marker are
// skipped.
func DiscoverPatients(ctx context.Context, dir string, opts DiscoverOptions) (domain.PatientSet, error) {
	ext := utils.NormalizeExtension(opts.Extension)

	paths, err := Scan(ctx, dir, ext, Options{})
	if err != nil {
		return nil, err
	}

	patients := make(domain.PatientSet)
	for _, path := range paths {
		name := filepath.Base(path)

		idx := strings.Index(name, opts.PatientPattern)
		if idx < 0 {
			continue
		}
		tokens := strings.Split(name[idx:], "_")
		if len(tokens) < 2 {
			continue
		}
		patient := tokens[0] + "_" + tokens[1]

		var sampleType string
		switch {
		case opts.TumorPattern != "" && strings.Contains(name, opts.TumorPattern):
			sampleType = domain.SampleTypeTumor
		case opts.NormalPattern != "" && strings.Contains(name, opts.NormalPattern):
			sampleType = domain.SampleTypeNormal
		default:
			continue
		}

		sample := strings.TrimSuffix(name, ext)
		patients.Add(patient, sampleType, sample, path)
	}

	return patients, nil
}

// DiscoverPatientSamples scans dir and groups files by patient and condition
// derived from directory segments. The segment before the matched condition
// segment is the patient; the segment after it is the sample when it is a
// directory, otherwise the extension-stripped filename. Files without both a
// patient and a condition are skipped; patientPattern is a fallback matched
// against any segment when no patient was found.
func DiscoverPatientSamples(ctx context.Context, dir, ext string, patterns domain.ConditionPatterns, patientPattern string) (domain.PatientSet, error) {
	ext = utils.NormalizeExtension(ext)
	if patterns == nil {
		patterns = domain.ConditionPatterns{
			domain.SampleTypeTumor:  {"tumor"},
			domain.SampleTypeNormal: {"normal"},
		}
	}

	paths, err := Scan(ctx, dir, ext, Options{})
	if err != nil {
		return nil, err
	}

	patients := make(domain.PatientSet)
	for _, path := range paths {
		segments := strings.Split(path, string(filepath.Separator))

		var patient, condition string
		sample := strings.TrimSuffix(filepath.Base(path), ext)

		for i, segment := range segments {
			label := patterns.Match(segment)
			if label == "" {
				continue
			}
			condition = label
			if i-1 >= 0 {
				patient = segments[i-1]
			}
			if i+1 < len(segments)-1 {
				sample = segments[i+1]
			}
			break
		}

		if patientPattern != "" && patient == "" {
			for _, segment := range segments {
				if strings.Contains(segment, patientPattern) {
					patient = segment
					break
				}
			}
		}

		if patient == "" || condition == "" {
			continue
		}
		patients.Add(patient, condition, sample, path)
	}

	return patients, nil
}
