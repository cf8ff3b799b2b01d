// Package splice replaces the marker-delimited region of a static HTML
// document with freshly rendered content.
//
// Two literal marker comments delimit the replaceable region. Everything
// strictly between them is discarded on every run; the markers themselves
// and all surrounding content are preserved byte for byte.
package splice

import (
	"os"
	"strings"

	"github.com/diagraft/diagraft/pkg/errors"
)

// Default marker comments delimiting the generated region.
const (
	DefaultBeginMarker = "<!-- BEGIN AUTO-RELATIONS -->"
	DefaultEndMarker   = "<!-- END AUTO-RELATIONS -->"
)

// Markers is a begin/end pair of literal marker strings.
type Markers struct {
	Begin string
	End   string
}

// DefaultMarkers returns the AUTO-RELATIONS marker pair.
func DefaultMarkers() Markers {
	return Markers{Begin: DefaultBeginMarker, End: DefaultEndMarker}
}

// Replace splices block into doc between the first occurrences of the
// begin and end markers. The new document is the prefix up to and
// including the begin marker, a newline, the block, then everything from
// the end marker onward. Both markers must be present and the begin
// marker must precede the end marker.
func Replace(doc string, block []byte, m Markers) (string, error) {
	begin := strings.Index(doc, m.Begin)
	if begin < 0 {
		return "", errors.New(errors.ErrCodeMarkerNotFound, "begin marker %q not found in target document", m.Begin)
	}
	end := strings.Index(doc, m.End)
	if end < 0 {
		return "", errors.New(errors.ErrCodeMarkerNotFound, "end marker %q not found in target document", m.End)
	}
	if end < begin {
		return "", errors.New(errors.ErrCodeMarkerOrder, "end marker %q precedes begin marker %q", m.End, m.Begin)
	}

	cut := begin + len(m.Begin)

	var b strings.Builder
	b.Grow(cut + 1 + len(block) + len(doc) - end)
	b.WriteString(doc[:cut])
	b.WriteByte('\n')
	b.Write(block)
	b.WriteString(doc[end:])
	return b.String(), nil
}

// File rewrites the document at path with block spliced into its marker
// region. On any validation error the file is left untouched; on success
// it is overwritten in full with its original permissions preserved
// where possible.
func File(path string, block []byte, m Markers) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read target %s", path)
	}

	updated, err := Replace(string(data), block, m)
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write target %s", path)
	}
	return nil
}
