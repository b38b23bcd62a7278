package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/openvex/sbom-embed/pkg/embed"
	"github.com/openvex/sbom-embed/pkg/formats/spdxjson"
)

const (
	DefaultInputPath  = "sbom.spdx.json"
	DefaultOutputPath = "sbom_data.js"
)

type Options struct {
	InputPath   string
	OutputPath  string
	SampleLimit int
}

func DefaultOptions() Options {
	return Options{
		InputPath:   DefaultInputPath,
		OutputPath:  DefaultOutputPath,
		SampleLimit: embed.DefaultSampleLimit,
	}
}

// Result describes a completed conversion.
type Result struct {
	Data  embed.Data
	Bytes int
}

// Load opens and parses the SPDX document at path.
func Load(path string) (spdxjson.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return spdxjson.Format{}, fmt.Errorf("opening SBOM %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := spdxjson.Parse(f)
	if err != nil {
		return spdxjson.Format{}, fmt.Errorf("reading SBOM %s: %w", path, err)
	}

	return parsed, nil
}

// Run converts the input document into the embedded data file and returns
// what was written.
func Run(opts Options) (Result, error) {
	parsed, err := Load(opts.InputPath)
	if err != nil {
		return Result{}, err
	}

	doc := parsed.Document()
	logrus.Debugf("loaded %s: %d files, %d packages, %d relationships",
		opts.InputPath, len(doc.Files), len(doc.Packages), len(doc.Relationships))

	data := embed.Build(doc, opts.SampleLimit)

	rendered, err := embed.Render(data)
	if err != nil {
		return Result{}, err
	}

	if err := os.WriteFile(opts.OutputPath, rendered, 0o644); err != nil {
		return Result{}, fmt.Errorf("writing embedded data %s: %w", opts.OutputPath, err)
	}
	logrus.Infof("wrote %s", opts.OutputPath)

	return Result{
		Data:  data,
		Bytes: len(rendered),
	}, nil
}

// Report prints the human-readable summary of a conversion.
func Report(w io.Writer, r Result) error {
	stats := r.Data.Statistics

	_, err := fmt.Fprintf(w,
		"Created embedded data with:\n"+
			"- %d sample files (out of %d)\n"+
			"- %d sample relationships (out of %d)\n"+
			"- Full statistics for all %d files\n"+
			"- Data size: %d bytes\n",
		len(r.Data.SampleFiles), stats.TotalFiles,
		len(r.Data.SampleRelationships), stats.TotalRelationships,
		stats.TotalFiles,
		r.Bytes,
	)
	return err
}
