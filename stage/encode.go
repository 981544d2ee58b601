package stage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Extension is the file extension of stage template documents.
const Extension = ".nara"

// Encode writes the document to w as UTF-8 JSON with two-space indentation
// and a trailing newline. HTML escaping is off: documents carry URLs and
// typographic dashes and are read from files, not script blocks.
func (t *Template) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return errors.Wrap(err, "encoding template")
	}
	return nil
}

// WriteFile validates the document and writes it to path, creating parent
// directories as needed.
func (t *Template) WriteFile(path string) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating template file")
	}
	if err := t.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Decode parses a single document from r. It does not validate; callers
// that need the invariants checked call Validate on the result.
func Decode(r io.Reader) (*Template, error) {
	var t Template
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(err, "decoding template")
	}
	return &t, nil
}
