package browse

import (
	"strconv"
	"strings"

	"github.com/openvex/sbom-embed/internal/browse/details"
	"github.com/openvex/sbom-embed/internal/browse/table"
	"github.com/openvex/sbom-embed/pkg/formats"
)

const (
	unknownPackage = "Unknown Package"
	notSpecified   = "Not specified"
)

// row is a table row that can also fill the details pane.
type row interface {
	table.Row
	fields() []details.Field
}

var (
	fileColumns = []table.Column{
		{Title: "File", Width: 48},
		{Title: "License", Width: 24},
		{Title: "Type", Width: 18},
		{Title: "SHA256", Width: 20},
	}
	packageColumns = []table.Column{
		{Title: "Package", Width: 32},
		{Title: "Version", Width: 18},
		{Title: "License", Width: 24},
		{Title: "Files", Width: 8},
		{Title: "SPDX ID", Width: 32},
	}
	relationshipColumns = []table.Column{
		{Title: "Source", Width: 40},
		{Title: "Type", Width: 22},
		{Title: "Target", Width: 40},
	}
)

type fileRow formats.File

func (r fileRow) Cells() []string {
	return []string{r.Name, r.License, joinOrDash(r.Types), formats.AbbreviateDigest(r.SHA256)}
}

func (r fileRow) Matches(expr string) bool {
	return formats.MatchesFile(formats.File(r), expr)
}

func (r fileRow) fields() []details.Field {
	typesName := "Type"
	if len(r.Types) > 1 {
		typesName = "Types"
	}

	return []details.Field{
		{Name: "File", Value: r.Name},
		{Name: "License", Value: r.License},
		{Name: typesName, Value: strings.Join(r.Types, ", ")},
		{Name: "SHA256", Value: r.SHA256},
	}
}

type packageRow formats.Package

func (r packageRow) Cells() []string {
	return []string{
		orDefault(r.Name, unknownPackage),
		orDefault(r.Version, notSpecified),
		orDefault(r.License, formats.UnknownLicense),
		strconv.Itoa(r.FileCount),
		r.SPDXID,
	}
}

func (r packageRow) Matches(expr string) bool {
	return formats.MatchesPackage(formats.Package(r), expr)
}

func (r packageRow) fields() []details.Field {
	analyzed := "No"
	if r.FilesAnalyzed {
		analyzed = "Yes"
	}

	return []details.Field{
		{Name: "Package", Value: orDefault(r.Name, unknownPackage)},
		{Name: "SPDX ID", Value: r.SPDXID},
		{Name: "Version", Value: orDefault(r.Version, notSpecified)},
		{Name: "License", Value: orDefault(r.License, formats.UnknownLicense)},
		{Name: "Download Location", Value: orDefault(r.DownloadLocation, notSpecified)},
		{Name: "Files Analyzed", Value: analyzed},
		{Name: "File Count", Value: strconv.Itoa(r.FileCount)},
		{Name: "Verification Code", Value: r.VerificationCode},
	}
}

type relationshipRow formats.Relationship

func (r relationshipRow) Cells() []string {
	return []string{r.Source, r.Type, r.Target}
}

func (r relationshipRow) Matches(expr string) bool {
	return formats.MatchesRelationship(formats.Relationship(r), expr)
}

func (r relationshipRow) fields() []details.Field {
	return []details.Field{
		{Name: "Source", Value: r.Source},
		{Name: "Relationship", Value: r.Type},
		{Name: "Target", Value: r.Target},
	}
}

func documentFields(d formats.Document) []details.Field {
	return []details.Field{
		{Name: "Name", Value: d.Name},
		{Name: "Namespace", Value: d.Namespace},
		{Name: "SPDX ID", Value: d.SPDXID},
		{Name: "Data License", Value: d.DataLicense},
		{Name: "Created", Value: d.Created},
		{Name: "Creators", Value: strings.Join(d.Creators, ", ")},
		{Name: "License List Version", Value: d.LicenseListVersion},
	}
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
