package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Condition labels used in TSV sample sheets
const (
	ConditionTumor   = "Tumor"
	ConditionNormal  = "Normal"
	ConditionUnknown = "Unknown"
)

// Sample type labels used in tumor-normal manifests
const (
	SampleTypeTumor  = "TUMOR"
	SampleTypeNormal = "NORMAL"
)

// GroupStrategy selects how scanned files are grouped into samples
type GroupStrategy string

const (
	// GroupByStem groups files by filename with the matched extension removed
	GroupByStem GroupStrategy = "stem"

	// GroupByParent groups files by the name of their immediate parent directory
	GroupByParent GroupStrategy = "parent"

	// GroupByFile keeps one entry per file, keyed by the extension-stripped
	// filename with a numeric suffix on collision
	GroupByFile GroupStrategy = "file"
)

// ParseGroupStrategy parses a strategy name. The empty string maps to
// GroupByStem, the historical default.
func ParseGroupStrategy(s string) (GroupStrategy, error) {
	switch GroupStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case GroupByStem, "":
		return GroupByStem, nil
	case GroupByParent:
		return GroupByParent, nil
	case GroupByFile:
		return GroupByFile, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// SampleSet maps a sample name to the files backing it.
// Map iteration order is undefined; use Names for deterministic output.
type SampleSet map[string][]string

// Add appends a path under the given sample name
func (s SampleSet) Add(name, path string) {
	s[name] = append(s[name], path)
}

// Names returns sample names in sorted order
func (s SampleSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sort sorts the path list of every sample in place
func (s SampleSet) Sort() {
	for _, paths := range s {
		sort.Strings(paths)
	}
}

// Len returns the number of samples
func (s SampleSet) Len() int {
	return len(s)
}

// SheetRow is one line of a TSV sample sheet
type SheetRow struct {
	Patient   string
	Sample    string
	Condition string
	Path      string
}

// PatientSet is a nested patient -> condition -> sample -> path mapping
// used for tumor-normal manifests
type PatientSet map[string]map[string]map[string]string

// Add records a sample path under a patient and condition
func (p PatientSet) Add(patient, condition, sample, path string) {
	if p[patient] == nil {
		p[patient] = make(map[string]map[string]string)
	}
	if p[patient][condition] == nil {
		p[patient][condition] = make(map[string]string)
	}
	p[patient][condition][sample] = path
}

// Patients returns patient IDs in sorted order
func (p PatientSet) Patients() []string {
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SampleCount returns the total number of samples across all patients
func (p PatientSet) SampleCount() int {
	var n int
	for _, conditions := range p {
		for _, samples := range conditions {
			n += len(samples)
		}
	}
	return n
}

// ConditionPatterns maps a condition label to the lowercase substrings that
// identify it in a path segment
type ConditionPatterns map[string][]string

// DefaultConditionPatterns returns the tumor/normal defaults
func DefaultConditionPatterns() ConditionPatterns {
	return ConditionPatterns{
		ConditionTumor:  {"tumor"},
		ConditionNormal: {"normal"},
	}
}

// Match returns the condition label for a path segment, or "" when no
// pattern matches. Labels are tested in sorted order so detection is
// deterministic when patterns overlap.
func (c ConditionPatterns) Match(segment string) string {
	segment = strings.ToLower(segment)
	labels := make([]string, 0, len(c))
	for label := range c {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		for _, pattern := range c[label] {
			if pattern != "" && strings.Contains(segment, strings.ToLower(pattern)) {
				return label
			}
		}
	}
	return ""
}
