package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puremeth/puremeth-go/internal/domain"
)

func TestDiscoverPatients(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"SHAH_H000033_T01.sorted.bam",
		"SHAH_H000033_N01.sorted.bam",
		"SHAH_H000044_T01.sorted.bam",
		"SHAH_H000044_X01.sorted.bam", // no tumor/normal marker
		"unrelated.sorted.bam",        // no patient pattern
		"SHAH_H000055_T01.bam",        // wrong extension
	)

	patients, err := DiscoverPatients(context.Background(), tmpDir, DiscoverOptions{
		Extension:      ".sorted.bam",
		PatientPattern: "SHAH_H",
		TumorPattern:   "_T",
		NormalPattern:  "_N",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"SHAH_H000033", "SHAH_H000044"}, patients.Patients())
	assert.Equal(t, 3, patients.SampleCount())

	h33 := patients["SHAH_H000033"]
	require.Contains(t, h33, domain.SampleTypeTumor)
	require.Contains(t, h33, domain.SampleTypeNormal)
	assert.Contains(t, h33[domain.SampleTypeTumor], "SHAH_H000033_T01")
	assert.Contains(t, h33[domain.SampleTypeNormal], "SHAH_H000033_N01")

	h44 := patients["SHAH_H000044"]
	assert.NotContains(t, h44, domain.SampleTypeNormal)
}

func TestDiscoverPatients_DirectoryNotFound(t *testing.T) {
	_, err := DiscoverPatients(context.Background(), "/nonexistent", DiscoverOptions{
		Extension:      ".sorted.bam",
		PatientPattern: "SHAH_H",
		TumorPattern:   "_T",
		NormalPattern:  "_N",
	})
	assert.ErrorIs(t, err, domain.ErrDirectoryNotFound)
}

func TestDiscoverPatientSamples(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"patient1/normal/sample1_N01/sample1_N01_file.bed",
		"patient1/tumor/sample1_T01/sample1_T01_file.bed",
		"patient3/other_condition/sample3_X01/sample3_X01_file.bed",
	)

	patients, err := DiscoverPatientSamples(context.Background(), tmpDir, ".bed", nil, "")
	require.NoError(t, err)

	// patient3 has no tumor/normal segment and is skipped
	assert.Equal(t, []string{"patient1"}, patients.Patients())

	p1 := patients["patient1"]
	require.Contains(t, p1, domain.SampleTypeTumor)
	require.Contains(t, p1, domain.SampleTypeNormal)
	assert.Contains(t, p1[domain.SampleTypeNormal], "sample1_N01")
	assert.Contains(t, p1[domain.SampleTypeTumor], "sample1_T01")
}

func TestDiscoverPatientSamples_SampleFallsBackToStem(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "patient1/tumor/reads.bed")

	patients, err := DiscoverPatientSamples(context.Background(), tmpDir, ".bed", nil, "")
	require.NoError(t, err)

	// No directory after the condition segment: the extension-stripped
	// filename names the sample
	require.Contains(t, patients, "patient1")
	assert.Contains(t, patients["patient1"][domain.SampleTypeTumor], "reads")
}

func TestDiscoverPatientSamples_CustomPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "cohortA/CASE_042/relapse_runs/reads.bed")

	patterns := domain.ConditionPatterns{
		"RELAPSE": {"relapse"},
	}
	patients, err := DiscoverPatientSamples(context.Background(), tmpDir, ".bed", patterns, "CASE_")
	require.NoError(t, err)

	require.Contains(t, patients, "CASE_042")
	assert.Contains(t, patients["CASE_042"]["RELAPSE"], "reads")
}
