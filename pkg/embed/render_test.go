package embed

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const renderInput = `{
  "name": "web <app> & friends",
  "spdxVersion": "SPDX-2.3",
  "files": [
    {
      "fileName": "./index.html",
      "licenseConcluded": "MIT",
      "fileTypes": ["TEXT"],
      "checksums": [{"algorithm": "SHA256", "checksumValue": "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"}]
    }
  ],
  "packages": [{"name": "app", "versionInfo": "1.0.0"}],
  "relationships": [{"spdxElementId": "SPDXRef-DOCUMENT", "relationshipType": "DESCRIBES", "relatedSpdxElement": "SPDXRef-Package"}]
}`

func TestRenderShape(t *testing.T) {
	data := Build(parseDocument(t, renderInput), DefaultSampleLimit)

	rendered, err := Render(data)
	require.NoError(t, err)

	text := string(rendered)
	assert.True(t, strings.HasPrefix(text, "const EMBEDDED_SBOM_DATA = {\n  \"metadata\": {\n"))
	assert.True(t, strings.HasSuffix(text, "\n};"))
	assert.Contains(t, text, `"name": "web <app> & friends"`)
	assert.Contains(t, text, `"sha256": "e3b0c44298fc1c14..."`)
	assert.NotContains(t, text, "\\u003c")
}

func TestRenderKeyOrder(t *testing.T) {
	data := Build(parseDocument(t, renderInput), DefaultSampleLimit)

	rendered, err := Render(data)
	require.NoError(t, err)
	text := string(rendered)

	assertOrdered(t, text, `"metadata"`, `"statistics"`, `"sampleFiles"`, `"sampleRelationships"`, `"packages": [`)
	assertOrdered(t, text, `"spdxVersion"`, `"SPDXID"`, `"documentNamespace"`, `"dataLicense"`, `"creationInfo"`)
	assertOrdered(t, text, `"totalFiles"`, `"totalPackages"`, `"totalRelationships"`, `"licenseStats"`, `"typeStats"`)
	assertOrdered(t, text, `"fileName"`, `"licenseConcluded"`, `"fileTypes"`, `"sha256"`)
	assertOrdered(t, text, `"source"`, `"type"`, `"target"`)
}

func assertOrdered(t *testing.T, text string, keys ...string) {
	t.Helper()

	last := -1
	for _, k := range keys {
		i := strings.Index(text, k)
		require.NotEqual(t, -1, i, "key %s not found", k)
		assert.Greater(t, i, last, "key %s out of order", k)
		last = i
	}
}

func TestRenderRoundTrip(t *testing.T) {
	data := Build(parseDocument(t, renderInput), DefaultSampleLimit)

	rendered, err := Render(data)
	require.NoError(t, err)

	body, err := Unwrap(rendered)
	require.NoError(t, err)

	expected, err := json.Marshal(data)
	require.NoError(t, err)

	assert.JSONEq(t, string(expected), string(body))
}

func TestRenderIsDeterministic(t *testing.T) {
	doc := parseDocument(t, `{
		"files": [
			{"licenseConcluded": "MIT", "fileTypes": ["SOURCE", "TEXT", "BINARY"]},
			{"licenseConcluded": "Apache-2.0", "fileTypes": ["ARCHIVE"]},
			{"licenseConcluded": "GPL-2.0-only"},
			{}
		]
	}`)

	first, err := Render(Build(doc, DefaultSampleLimit))
	require.NoError(t, err)
	second, err := Render(Build(doc, DefaultSampleLimit))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUnwrapRejectsForeignText(t *testing.T) {
	_, err := Unwrap([]byte(`var other = {};`))
	assert.Error(t, err)

	_, err = Unwrap([]byte(`const EMBEDDED_SBOM_DATA = {}`))
	assert.Error(t, err)
}
