package sheet

import (
	"context"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/utils"
)

// TumorNormalOptions contains options for TumorNormalYAML
type TumorNormalOptions struct {
	// OutputFilename overrides the timestamped default
	// tumor_normal_samples_<YYYYMMDD_HHMMSS>.yaml
	OutputFilename string
}

// TumorNormalYAML writes a nested tumor-normal manifest for the given
// patients and returns the path of the written file. Patients and samples
// are emitted in sorted order; within a patient, TUMOR precedes NORMAL.
func (g *Generator) TumorNormalYAML(ctx context.Context, patients domain.PatientSet, opts TumorNormalOptions) (string, error) {
	root := mappingNode()
	appendKV(root, "SAMPLES", tumorNormalNode(patients))

	data, err := yaml.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}

	name := opts.OutputFilename
	if name == "" {
		name = fmt.Sprintf("tumor_normal_samples_%s", g.now().Format(timestampLayout))
	}
	name = utils.EnsureSuffix(name, ".yaml", ".yml")

	path, err := g.writer.Write(ctx, name, data)
	if err != nil {
		return "", err
	}

	g.log.Info().
		Str("path", path).
		Int("patients", len(patients)).
		Int("samples", patients.SampleCount()).
		Msg("generated tumor-normal manifest")

	return path, nil
}

// tumorNormalNode builds the SAMPLES mapping. yaml.v3 sorts plain map keys
// on encode, so explicit nodes are used to keep TUMOR ahead of NORMAL.
func tumorNormalNode(patients domain.PatientSet) *yaml.Node {
	node := mappingNode()
	for _, patient := range patients.Patients() {
		patientNode := mappingNode()
		for _, sampleType := range sampleTypeOrder(patients[patient]) {
			samples := patients[patient][sampleType]
			if len(samples) == 0 {
				continue
			}

			names := make([]string, 0, len(samples))
			for name := range samples {
				names = append(names, name)
			}
			sort.Strings(names)

			typeNode := mappingNode()
			for _, name := range names {
				appendKV(typeNode, name, scalarNode(samples[name]))
			}
			appendKV(patientNode, sampleType, typeNode)
		}
		appendKV(node, patient, patientNode)
	}
	return node
}

// sampleTypeOrder returns TUMOR then NORMAL, followed by any other sample
// types in sorted order
func sampleTypeOrder(conditions map[string]map[string]string) []string {
	order := make([]string, 0, len(conditions))
	for _, known := range []string{domain.SampleTypeTumor, domain.SampleTypeNormal} {
		if _, ok := conditions[known]; ok {
			order = append(order, known)
		}
	}

	var rest []string
	for sampleType := range conditions {
		if sampleType != domain.SampleTypeTumor && sampleType != domain.SampleTypeNormal {
			rest = append(rest, sampleType)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func appendKV(node *yaml.Node, key string, value *yaml.Node) {
	node.Content = append(node.Content, scalarNode(key), value)
}
