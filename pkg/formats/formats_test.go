package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDigest(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0123456789abcdef0123456789abcdef", "0123456789abcdef..."},
		{"0123456789abcdef", "0123456789abcdef..."},
		{"abc", "abc..."},
		{"", "..."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateDigest(tt.input))
		})
	}
}

func TestAbbreviateDigest(t *testing.T) {
	assert.Equal(t, "-", AbbreviateDigest(""))
	assert.Equal(t, "0123456789abcdef...", AbbreviateDigest("0123456789abcdef0123"))
}

func TestMatchesFile(t *testing.T) {
	f := File{Name: "./cmd/main.go", License: "Apache-2.0", Types: []string{"SOURCE", "TEXT"}}

	tests := []struct {
		expr     string
		expected bool
	}{
		{"main", true},
		{"Apache", true},
		{"TEXT", true},
		{"MIT", false},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesFile(f, tt.expr))
		})
	}
}

func TestCounts(t *testing.T) {
	files := []File{
		{License: "MIT", Types: []string{"SOURCE"}},
		{License: "Apache-2.0", Types: []string{"SOURCE", "TEXT"}},
		{License: "MIT"},
		{License: "BSD-3-Clause", Types: []string{"BINARY"}},
	}

	assert.Equal(t, []Count{
		{Key: "MIT", Count: 2},
		{Key: "Apache-2.0", Count: 1},
		{Key: "BSD-3-Clause", Count: 1},
	}, LicenseCounts(files))

	assert.Equal(t, []Count{
		{Key: "SOURCE", Count: 2},
		{Key: "BINARY", Count: 1},
		{Key: "TEXT", Count: 1},
	}, TypeCounts(files))

	assert.Empty(t, TypeCounts(nil))
}

func TestMatchesFileIgnoresCase(t *testing.T) {
	f := File{Name: "./README.md", License: "Apache-2.0", Types: []string{"DOCUMENTATION"}}

	assert.True(t, MatchesFile(f, "readme"))
	assert.True(t, MatchesFile(f, "APACHE"))
	assert.True(t, MatchesFile(f, "documentation"))
}

func TestMatchesPackage(t *testing.T) {
	p := Package{
		Name:             "golang.org/x/text",
		SPDXID:           "SPDXRef-Package-text",
		Version:          "v0.5.0",
		License:          "BSD-3-Clause",
		DownloadLocation: "https://example.com/not-searched",
	}

	tests := []struct {
		expr     string
		expected bool
	}{
		{"x/text", true},
		{"spdxref-package", true},
		{"v0.5", true},
		{"bsd", true},
		{"example.com", false},
		{"MIT", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesPackage(p, tt.expr))
		})
	}
}

func TestMatchesRelationship(t *testing.T) {
	r := Relationship{Source: "SPDXRef-DOCUMENT", Type: "DESCRIBES", Target: "SPDXRef-Package-app"}

	tests := []struct {
		expr     string
		expected bool
	}{
		{"document", true},
		{"describes", true},
		{"package-app", true},
		{"CONTAINS", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesRelationship(r, tt.expr))
		})
	}
}
