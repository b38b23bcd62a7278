package spdxjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/openvex/sbom-embed/pkg/formats"
)

// ErrNotAnObject is returned when the top level of the input is valid JSON
// but not an object.
var ErrNotAnObject = errors.New("top-level JSON value is not an object")

type Format struct {
	wrapped Document
}

func Parse(input io.Reader) (Format, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return Format{}, fmt.Errorf("unable to read SPDX JSON data: %w", err)
	}

	if err := checkObject(data); err != nil {
		return Format{}, fmt.Errorf("unable to parse SPDX JSON data: %w", err)
	}

	d := new(Document)
	if err := json.Unmarshal(data, d); err != nil {
		return Format{}, fmt.Errorf("unable to parse SPDX JSON data: %w", err)
	}

	return Format{
		wrapped: *d,
	}, nil
}

// checkObject rejects input whose top-level value is not a JSON object.
// Decoding a literal null into a struct succeeds silently, so it has to be
// caught here.
func checkObject(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return ErrNotAnObject
		}
		return err
	}

	if top == nil {
		return ErrNotAnObject
	}

	return nil
}

func (f Format) Document() Document {
	return f.wrapped
}

func (f Format) Normalized() formats.Normalized {
	files := make([]formats.File, 0, len(f.wrapped.Files))
	for _, file := range f.wrapped.Files {
		files = append(files, normalizeFile(file))
	}

	packages := make([]formats.Package, 0, len(f.wrapped.Packages))
	for _, p := range f.wrapped.Packages {
		packages = append(packages, normalizePackage(p))
	}

	relationships := make([]formats.Relationship, 0, len(f.wrapped.Relationships))
	for _, r := range f.wrapped.Relationships {
		relationships = append(relationships, formats.Relationship{
			Source: text(r.SPDXElementID),
			Type:   text(r.RelationshipType),
			Target: text(r.RelatedSPDXElement),
		})
	}

	return formats.Normalized{
		Document:      f.normalizeDocument(),
		Files:         files,
		Packages:      packages,
		Relationships: relationships,
	}
}

func (f Format) normalizeDocument() formats.Document {
	d := formats.Document{
		Name:        text(f.wrapped.Name),
		SPDXVersion: text(f.wrapped.SPDXVersion),
		SPDXID:      text(f.wrapped.SPDXID),
		Namespace:   text(f.wrapped.DocumentNamespace),
		DataLicense: text(f.wrapped.DataLicense),
	}

	var info struct {
		Created            json.RawMessage   `json:"created"`
		Creators           []json.RawMessage `json:"creators"`
		LicenseListVersion json.RawMessage   `json:"licenseListVersion"`
	}
	if err := json.Unmarshal(f.wrapped.CreationInfo, &info); err != nil {
		return d
	}

	d.Created = text(info.Created)
	d.LicenseListVersion = text(info.LicenseListVersion)
	for _, c := range info.Creators {
		if creator, ok := Text(c); ok {
			d.Creators = append(d.Creators, creator)
		}
	}

	return d
}

func normalizeFile(f File) formats.File {
	sha, _ := f.Checksum(AlgorithmSHA256)

	return formats.File{
		Name:    text(f.FileName),
		License: f.License(formats.UnknownLicense),
		Types:   f.Types(),
		SHA256:  sha,
	}
}

// normalizePackage reads the displayed package fields. Packages are opaque
// to the conversion, so fields that do not decode are left empty.
func normalizePackage(raw json.RawMessage) formats.Package {
	var p struct {
		Name             json.RawMessage `json:"name"`
		SPDXID           json.RawMessage `json:"SPDXID"`
		VersionInfo      json.RawMessage `json:"versionInfo"`
		LicenseConcluded json.RawMessage `json:"licenseConcluded"`
		DownloadLocation json.RawMessage `json:"downloadLocation"`
		FilesAnalyzed    json.RawMessage `json:"filesAnalyzed"`
		HasFiles         json.RawMessage `json:"hasFiles"`
		VerificationCode json.RawMessage `json:"packageVerificationCode"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return formats.Package{}
	}

	pkg := formats.Package{
		Name:             text(p.Name),
		SPDXID:           text(p.SPDXID),
		Version:          text(p.VersionInfo),
		License:          text(p.LicenseConcluded),
		DownloadLocation: text(p.DownloadLocation),
		FilesAnalyzed:    text(p.FilesAnalyzed) == "true",
	}

	var hasFiles []json.RawMessage
	if err := json.Unmarshal(p.HasFiles, &hasFiles); err == nil {
		pkg.FileCount = len(hasFiles)
	}

	var code struct {
		Value json.RawMessage `json:"packageVerificationCodeValue"`
	}
	if err := json.Unmarshal(p.VerificationCode, &code); err == nil {
		pkg.VerificationCode = text(code.Value)
	}

	return pkg
}

// text is Text without the presence flag.
func text(raw json.RawMessage) string {
	s, _ := Text(raw)
	return s
}
