package formats

// UnknownLicense is reported for files that carry no concluded license.
const UnknownLicense = "Unknown"

// digestPrefixLength is how many characters of a digest are kept when it is
// abbreviated for display.
const digestPrefixLength = 16

type Normalized struct {
	Document      Document
	Files         []File
	Packages      []Package
	Relationships []Relationship
}

// Document is the descriptive part of an SBOM. Empty strings mean the
// value was missing.
type Document struct {
	Name               string
	SPDXVersion        string
	SPDXID             string
	Namespace          string
	DataLicense        string
	Created            string
	Creators           []string
	LicenseListVersion string
}

type File struct {
	Name    string
	License string
	Types   []string
	SHA256  string
}

type Package struct {
	Name             string
	SPDXID           string
	Version          string
	License          string
	DownloadLocation string
	FilesAnalyzed    bool
	FileCount        int
	VerificationCode string
}

type Relationship struct {
	Source string
	Type   string
	Target string
}

type Format interface {
	Normalized() Normalized
}

// TruncateDigest keeps the first 16 characters of a digest and appends "...",
// whatever the digest's length.
func TruncateDigest(digest string) string {
	runes := []rune(digest)
	if len(runes) > digestPrefixLength {
		runes = runes[:digestPrefixLength]
	}

	return string(runes) + "..."
}

// AbbreviateDigest is TruncateDigest for display, showing a missing digest
// as "-".
func AbbreviateDigest(digest string) string {
	if digest == "" {
		return "-"
	}

	return TruncateDigest(digest)
}
