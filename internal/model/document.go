// Package model is the editor for COPASI .cps model files. It treats the
// document as flat text and mutates single fields through template-based
// substitutions that must match exactly once, so a mutation either lands
// on the intended field or fails without touching the document.
//
// The package never terminates the process and never writes to a logger;
// every failure surfaces as a typed error and the driver decides severity.
package model

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"copasweep/internal/sanitize"
)

// TestedVersions is the allow-list of COPASI versions this editor has been
// verified against. Any other version yields an UnsupportedVersionError
// from Load, which callers may treat as a warning.
var TestedVersions = []string{"4.14 (Build 89)", "4.15 (Build 95)"}

var reVersion = regexp.MustCompile(`<!-- generated with COPASI ([0-9.]+ \(Build [0-9]+\)) \(http://www\.copasi\.org\)`)

// Document holds the full text of one model file. It is mutated in place
// by every Set*/Delete* call and is not safe for concurrent use; each
// instance has exactly one logical owner at a time.
type Document struct {
	path    string
	content string
	version string
}

// Load reads the model file at path, appending the .cps extension when
// missing, and extracts its COPASI version.
//
// A missing version marker returns (nil, ErrNoVersion). A version outside
// TestedVersions returns the usable document together with an
// *UnsupportedVersionError; callers that accept untested versions should
// warn and keep the document.
func Load(path string) (*Document, error) {
	if !strings.HasSuffix(path, ".cps") {
		path += ".cps"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	return Parse(path, string(data))
}

// Parse builds a Document from already-loaded content. The path is kept
// only for diagnostics and output naming.
func Parse(path, content string) (*Document, error) {
	d := &Document{path: path, content: content}

	m := reVersion.FindStringSubmatch(content)
	if m == nil {
		return nil, ErrNoVersion
	}
	d.version = m[1]

	for _, v := range TestedVersions {
		if d.version == v {
			return d, nil
		}
	}
	return d, &UnsupportedVersionError{Version: d.version}
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string { return d.path }

// Version returns the COPASI version declared in the generator comment.
func (d *Document) Version() string { return d.version }

// Content returns the current document text.
func (d *Document) Content() string { return d.content }

// Save writes the current document text under name, sanitized to the
// filename character set, and returns the name actually used.
func (d *Document) Save(name string) (string, error) {
	name = sanitize.Filename(name)
	if name == "" {
		return "", fmt.Errorf("output filename is empty after sanitization")
	}
	if err := os.WriteFile(name, []byte(d.content), 0644); err != nil {
		return "", fmt.Errorf("writing model file: %w", err)
	}
	return name, nil
}

// String summarizes the model for display.
func (d *Document) String() string {
	reactions, _ := d.Reactions()
	title, _ := d.Title()
	return fmt.Sprintf("Copasi model %q, file version %s, with %d compartments, %d species, and %d reactions",
		title, d.version, len(d.Compartments()), len(d.Metabolites()), len(reactions))
}
