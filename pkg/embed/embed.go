// Package embed builds the summary of an SPDX document that a static page
// loads as EMBEDDED_SBOM_DATA.
package embed

import (
	"encoding/json"

	"github.com/openvex/sbom-embed/pkg/formats"
	"github.com/openvex/sbom-embed/pkg/formats/spdxjson"
)

// DefaultSampleLimit is how many files and relationships are sampled.
const DefaultSampleLimit = 50

// noDigest stands in for a sampled file without a SHA256 checksum.
const noDigest = "-"

// Data is the object serialized into the output file. Field order is the
// serialization order.
type Data struct {
	Metadata            Metadata             `json:"metadata"`
	Statistics          Statistics           `json:"statistics"`
	SampleFiles         []SampleFile         `json:"sampleFiles"`
	SampleRelationships []SampleRelationship `json:"sampleRelationships"`
	Packages            []json.RawMessage    `json:"packages"`
}

type Metadata struct {
	Name              json.RawMessage `json:"name"`
	SPDXVersion       json.RawMessage `json:"spdxVersion"`
	SPDXID            json.RawMessage `json:"SPDXID"`
	DocumentNamespace json.RawMessage `json:"documentNamespace"`
	DataLicense       json.RawMessage `json:"dataLicense"`
	CreationInfo      json.RawMessage `json:"creationInfo"`
}

type Statistics struct {
	TotalFiles         int            `json:"totalFiles"`
	TotalPackages      int            `json:"totalPackages"`
	TotalRelationships int            `json:"totalRelationships"`
	LicenseStats       map[string]int `json:"licenseStats"`
	TypeStats          map[string]int `json:"typeStats"`
}

// SampleFile is a file projected for display. Its fields are copied from
// the document as written; LicenseConcluded in particular does not get the
// "Unknown" default used in the statistics.
type SampleFile struct {
	FileName         json.RawMessage `json:"fileName"`
	LicenseConcluded json.RawMessage `json:"licenseConcluded"`
	FileTypes        json.RawMessage `json:"fileTypes"`
	SHA256           string          `json:"sha256"`
}

type SampleRelationship struct {
	Source json.RawMessage `json:"source"`
	Type   json.RawMessage `json:"type"`
	Target json.RawMessage `json:"target"`
}

// Build aggregates statistics over every file in doc and samples the first
// limit files and relationships.
func Build(doc spdxjson.Document, limit int) Data {
	packages := doc.Packages
	if packages == nil {
		packages = []json.RawMessage{}
	}

	return Data{
		Metadata: Metadata{
			Name:              doc.Name,
			SPDXVersion:       doc.SPDXVersion,
			SPDXID:            doc.SPDXID,
			DocumentNamespace: doc.DocumentNamespace,
			DataLicense:       doc.DataLicense,
			CreationInfo:      doc.CreationInfo,
		},
		Statistics:          aggregate(doc),
		SampleFiles:         sampleFiles(doc.Files, limit),
		SampleRelationships: sampleRelationships(doc.Relationships, limit),
		Packages:            packages,
	}
}

func aggregate(doc spdxjson.Document) Statistics {
	stats := Statistics{
		TotalFiles:         len(doc.Files),
		TotalPackages:      len(doc.Packages),
		TotalRelationships: len(doc.Relationships),
		LicenseStats:       make(map[string]int),
		TypeStats:          make(map[string]int),
	}

	for _, f := range doc.Files {
		stats.LicenseStats[f.License(formats.UnknownLicense)]++

		for _, t := range f.Types() {
			stats.TypeStats[t]++
		}
	}

	return stats
}

func sampleFiles(files []spdxjson.File, limit int) []SampleFile {
	files = head(files, limit)

	sample := make([]SampleFile, 0, len(files))
	for _, f := range files {
		sample = append(sample, SampleFile{
			FileName:         f.FileName,
			LicenseConcluded: f.LicenseConcluded,
			FileTypes:        f.FileTypes,
			SHA256:           shortSHA256(f),
		})
	}

	return sample
}

func sampleRelationships(rels []spdxjson.Relationship, limit int) []SampleRelationship {
	rels = head(rels, limit)

	sample := make([]SampleRelationship, 0, len(rels))
	for _, r := range rels {
		sample = append(sample, SampleRelationship{
			Source: r.SPDXElementID,
			Type:   r.RelationshipType,
			Target: r.RelatedSPDXElement,
		})
	}

	return sample
}

func shortSHA256(f spdxjson.File) string {
	sha, ok := f.Checksum(spdxjson.AlgorithmSHA256)
	if !ok {
		return noDigest
	}

	return formats.TruncateDigest(sha)
}

func head[T any](items []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		return items[:limit]
	}

	return items
}
