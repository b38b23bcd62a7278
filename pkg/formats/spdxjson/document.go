package spdxjson

import (
	"bytes"
	"encoding/json"
)

// AlgorithmSHA256 is the checksum algorithm name SPDX uses for SHA-256.
const AlgorithmSHA256 = "SHA256"

// Document holds the parts of an SPDX JSON document that get summarized.
// Metadata fields and packages are kept as raw JSON so they can be passed
// through without reinterpretation; a missing field stays nil.
type Document struct {
	Name              json.RawMessage   `json:"name"`
	SPDXVersion       json.RawMessage   `json:"spdxVersion"`
	SPDXID            json.RawMessage   `json:"SPDXID"`
	DocumentNamespace json.RawMessage   `json:"documentNamespace"`
	DataLicense       json.RawMessage   `json:"dataLicense"`
	CreationInfo      json.RawMessage   `json:"creationInfo"`
	Files             []File            `json:"files"`
	Packages          []json.RawMessage `json:"packages"`
	Relationships     []Relationship    `json:"relationships"`
}

// File is an SPDX file entry. Fields are raw JSON: a missing key is nil, an
// explicit null is the literal "null", and values of an unexpected type are
// carried as written.
type File struct {
	FileName         json.RawMessage `json:"fileName"`
	LicenseConcluded json.RawMessage `json:"licenseConcluded"`
	FileTypes        json.RawMessage `json:"fileTypes"`
	Checksums        []Checksum      `json:"checksums"`
}

type Checksum struct {
	Algorithm     json.RawMessage `json:"algorithm"`
	ChecksumValue json.RawMessage `json:"checksumValue"`
}

type Relationship struct {
	SPDXElementID      json.RawMessage `json:"spdxElementId"`
	RelationshipType   json.RawMessage `json:"relationshipType"`
	RelatedSPDXElement json.RawMessage `json:"relatedSpdxElement"`
}

// Checksum returns the value of the first checksum computed with the given
// algorithm.
func (f File) Checksum(algorithm string) (string, bool) {
	for _, c := range f.Checksums {
		if alg, ok := Text(c.Algorithm); ok && alg == algorithm {
			value, _ := Text(c.ChecksumValue)
			return value, true
		}
	}

	return "", false
}

// License returns the concluded license, or def when there is none.
func (f File) License(def string) string {
	if license, ok := Text(f.LicenseConcluded); ok {
		return license
	}

	return def
}

// Types lists the file types. Anything but an array yields no types.
func (f File) Types() []string {
	var items []json.RawMessage
	if err := json.Unmarshal(f.FileTypes, &items); err != nil {
		return nil
	}

	types := make([]string, 0, len(items))
	for _, item := range items {
		if t, ok := Text(item); ok {
			types = append(types, t)
		}
	}

	return types
}

// Text reads a raw value as text. Strings are unquoted, other values come
// back as compact JSON, and a missing value or null reports false.
func Text(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, true
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed), true
	}

	return buf.String(), true
}
