package embed

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// VariableName is the global constant the page reads.
const VariableName = "EMBEDDED_SBOM_DATA"

const (
	renderPrefix = "const " + VariableName + " = "
	renderSuffix = ";"
)

// Render serializes d as a JavaScript constant declaration with the JSON
// pretty-printed at two spaces of indentation.
func Render(d Data) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(renderPrefix)

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encoding embedded data: %w", err)
	}

	// Encode terminates its output with a newline.
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return append(out, renderSuffix...), nil
}

// Unwrap returns the JSON held by a rendered constant declaration.
func Unwrap(rendered []byte) ([]byte, error) {
	if !bytes.HasPrefix(rendered, []byte(renderPrefix)) {
		return nil, fmt.Errorf("missing %q declaration", renderPrefix)
	}
	if !bytes.HasSuffix(rendered, []byte(renderSuffix)) {
		return nil, fmt.Errorf("missing trailing %q", renderSuffix)
	}

	body := bytes.TrimPrefix(rendered, []byte(renderPrefix))
	return bytes.TrimSuffix(body, []byte(renderSuffix)), nil
}
