package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvex/sbom-embed/pkg/embed"
)

func testOptions(t *testing.T, input string) Options {
	t.Helper()

	dir := t.TempDir()
	opts := Options{
		InputPath:   filepath.Join(dir, DefaultInputPath),
		OutputPath:  filepath.Join(dir, DefaultOutputPath),
		SampleLimit: embed.DefaultSampleLimit,
	}
	require.NoError(t, os.WriteFile(opts.InputPath, []byte(input), 0o644))

	return opts
}

func documentWithFiles(files, relationships int) string {
	var b strings.Builder
	b.WriteString(`{"name": "generated", "spdxVersion": "SPDX-2.3", "files": [`)
	for i := 0; i < files; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"fileName": "./f%d", "licenseConcluded": "MIT", "fileTypes": ["SOURCE"],`+
			` "checksums": [{"algorithm": "SHA256", "checksumValue": "%064d"}]}`, i, i)
	}
	b.WriteString(`], "packages": [{"name": "p"}], "relationships": [`)
	for i := 0; i < relationships; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"spdxElementId": "SPDXRef-DOCUMENT", "relationshipType": "CONTAINS", "relatedSpdxElement": "SPDXRef-File-%d"}`, i)
	}
	b.WriteString(`]}`)
	return b.String()
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, "sbom.spdx.json", opts.InputPath)
	assert.Equal(t, "sbom_data.js", opts.OutputPath)
	assert.Equal(t, 50, opts.SampleLimit)
}

func TestRun(t *testing.T) {
	opts := testOptions(t, documentWithFiles(75, 60))

	result, err := Run(opts)
	require.NoError(t, err)

	written, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, len(written), result.Bytes)

	body, err := embed.Unwrap(written)
	require.NoError(t, err)

	var decoded embed.Data
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, 75, decoded.Statistics.TotalFiles)
	assert.Equal(t, 60, decoded.Statistics.TotalRelationships)
	assert.Equal(t, 1, decoded.Statistics.TotalPackages)
	assert.Equal(t, map[string]int{"MIT": 75}, decoded.Statistics.LicenseStats)
	assert.Equal(t, map[string]int{"SOURCE": 75}, decoded.Statistics.TypeStats)
	assert.Len(t, decoded.SampleFiles, 50)
	assert.Len(t, decoded.SampleRelationships, 50)
	assert.JSONEq(t, `"./f0"`, string(decoded.SampleFiles[0].FileName))
	assert.Equal(t, "0000000000000000...", decoded.SampleFiles[0].SHA256)

	expected, err := json.Marshal(result.Data)
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(body))
}

func TestRunOverwritesAndIsIdempotent(t *testing.T) {
	opts := testOptions(t, documentWithFiles(3, 2))
	require.NoError(t, os.WriteFile(opts.OutputPath, bytes.Repeat([]byte("x"), 1<<16), 0o644))

	_, err := Run(opts)
	require.NoError(t, err)
	first, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	_, err = Run(opts)
	require.NoError(t, err)
	second, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, bytes.HasPrefix(first, []byte("const EMBEDDED_SBOM_DATA = ")))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name        string
		prepare     func(t *testing.T) Options
		errContains string
	}{
		{
			name: "missing input",
			prepare: func(t *testing.T) Options {
				opts := testOptions(t, "{}")
				opts.InputPath = filepath.Join(t.TempDir(), "absent.json")
				return opts
			},
			errContains: "opening SBOM",
		},
		{
			name: "malformed input",
			prepare: func(t *testing.T) Options {
				return testOptions(t, `{"files": [}`)
			},
			errContains: "unable to parse SPDX JSON data",
		},
		{
			name: "top level not an object",
			prepare: func(t *testing.T) Options {
				return testOptions(t, `[{"fileName": "a"}]`)
			},
			errContains: "not an object",
		},
		{
			name: "unwritable output",
			prepare: func(t *testing.T) Options {
				opts := testOptions(t, "{}")
				opts.OutputPath = filepath.Join(t.TempDir(), "missing-dir", DefaultOutputPath)
				return opts
			},
			errContains: "writing embedded data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.prepare(t)

			_, err := Run(opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestRunLeavesNoOutputOnBadInput(t *testing.T) {
	opts := testOptions(t, `not json`)

	_, err := Run(opts)
	require.Error(t, err)

	_, statErr := os.Stat(opts.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReport(t *testing.T) {
	opts := testOptions(t, documentWithFiles(75, 10))

	result, err := Run(opts)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Report(&out, result))

	assert.Equal(t, fmt.Sprintf("Created embedded data with:\n"+
		"- 50 sample files (out of 75)\n"+
		"- 10 sample relationships (out of 10)\n"+
		"- Full statistics for all 75 files\n"+
		"- Data size: %d bytes\n", result.Bytes), out.String())
}
