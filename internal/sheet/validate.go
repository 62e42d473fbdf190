package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/utils"
)

// Kind identifies the layout of a manifest file
type Kind string

const (
	// KindSamples is a flat samples manifest
	KindSamples Kind = "samples"

	// KindTumorNormal is a nested tumor-normal manifest
	KindTumorNormal Kind = "tumor-normal"
)

// Validator checks previously generated manifest files
type Validator struct {
	log *utils.Logger
}

// NewValidator creates a new manifest validator
func NewValidator(log *utils.Logger) *Validator {
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	return &Validator{log: log.WithComponent("validate")}
}

// pathList accepts either a single scalar path or a sequence of paths, so
// manifests written one-path-per-sample by older tooling still load
type pathList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (p *pathList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*p = pathList{s}
		return nil
	case yaml.SequenceNode:
		var paths []string
		if err := value.Decode(&paths); err != nil {
			return err
		}
		*p = pathList(paths)
		return nil
	default:
		return fmt.Errorf("sample paths must be a string or a list of strings")
	}
}

// samplesDocument mirrors samplesManifest with lenient path decoding
type samplesDocument struct {
	Samples map[string]pathList `yaml:"samples"`
}

// LoadSamples reads a samples manifest back into a SampleSet
func LoadSamples(path string) (domain.SampleSet, error) {
	data, err := readManifest(path)
	if err != nil {
		return nil, err
	}

	var doc samplesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ManifestError{Path: path, Reason: "not valid YAML", Err: err}
	}
	if doc.Samples == nil {
		return nil, domain.NewManifestError(path, "missing samples mapping")
	}

	set := make(domain.SampleSet, len(doc.Samples))
	for name, paths := range doc.Samples {
		set[name] = append([]string(nil), paths...)
	}
	set.Sort()
	return set, nil
}

// ValidateSamples checks the structure of a samples manifest. Referenced
// files that no longer exist are logged as warnings, not failures.
func (v *Validator) ValidateSamples(path string) error {
	set, err := LoadSamples(path)
	if err != nil {
		return err
	}

	for _, name := range set.Names() {
		for _, p := range set[name] {
			if _, err := os.Stat(p); err != nil {
				v.log.Warn().
					Str("sample", name).
					Str("path", p).
					Msg("sample file not found")
			}
		}
	}

	v.log.Debug().Str("path", path).Int("samples", set.Len()).Msg("samples manifest is valid")
	return nil
}

// tumorNormalDocument mirrors the nested tumor-normal manifest layout
type tumorNormalDocument struct {
	Samples map[string]map[string]map[string]string `yaml:"SAMPLES"`
}

// ValidateTumorNormal checks the structure of a tumor-normal manifest.
// Unexpected sample types and missing referenced files are warnings.
func (v *Validator) ValidateTumorNormal(path string) error {
	data, err := readManifest(path)
	if err != nil {
		return err
	}

	var doc tumorNormalDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &domain.ManifestError{Path: path, Reason: "not valid YAML", Err: err}
	}
	if doc.Samples == nil {
		return domain.NewManifestError(path, "missing SAMPLES mapping")
	}

	for patient, conditions := range doc.Samples {
		for sampleType, samples := range conditions {
			if sampleType != domain.SampleTypeTumor && sampleType != domain.SampleTypeNormal {
				v.log.Warn().
					Str("patient", patient).
					Str("sample_type", sampleType).
					Msg("unexpected sample type")
			}
			for name, p := range samples {
				if _, err := os.Stat(p); err != nil {
					v.log.Warn().
						Str("sample", name).
						Str("path", p).
						Msg("sample file not found")
				}
			}
		}
	}

	v.log.Debug().Str("path", path).Msg("tumor-normal manifest is valid")
	return nil
}

// Validate detects the manifest kind and runs the matching validation
func (v *Validator) Validate(path string) (Kind, error) {
	kind, err := DetectKind(path)
	if err != nil {
		return "", err
	}

	switch kind {
	case KindSamples:
		return kind, v.ValidateSamples(path)
	case KindTumorNormal:
		return kind, v.ValidateTumorNormal(path)
	default:
		return "", domain.NewManifestError(path, "unrecognized manifest layout")
	}
}

// DetectKind inspects the top-level keys of a manifest file
func DetectKind(path string) (Kind, error) {
	data, err := readManifest(path)
	if err != nil {
		return "", err
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", &domain.ManifestError{Path: path, Reason: "not valid YAML", Err: err}
	}

	if _, ok := doc["samples"]; ok {
		return KindSamples, nil
	}
	if _, ok := doc["SAMPLES"]; ok {
		return KindTumorNormal, nil
	}
	return "", domain.NewManifestError(path, "unrecognized manifest layout")
}

// readManifest reads a manifest file, rejecting unsupported extensions
func readManifest(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedExt, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	return data, nil
}
