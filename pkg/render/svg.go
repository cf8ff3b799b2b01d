package render

import (
	"bytes"
	"fmt"

	"github.com/diagraft/diagraft/pkg/model"
	"github.com/diagraft/diagraft/pkg/route"
)

const (
	// rootClass is the semantic class carried by the <svg> root.
	rootClass = "relation-layer"

	// classPrefix is the first token of every path element's class; the
	// second token appends the relation kind (e.g. "rel rel-flow").
	classPrefix = "rel"
)

// Option configures the renderer.
type Option func(*renderer)

type renderer struct {
	prefix string
	margin float64
	pad    float64
}

// WithClassPrefix overrides the path class prefix.
func WithClassPrefix(p string) Option { return func(r *renderer) { r.prefix = p } }

// WithMargin overrides the approach margin for routed connectors.
func WithMargin(m float64) Option { return func(r *renderer) { r.margin = m } }

// WithPad overrides the obstacle clearance for avoiding connectors.
func WithPad(p float64) Option { return func(r *renderer) { r.pad = p } }

func newRenderer(opts ...Option) renderer {
	r := renderer{prefix: classPrefix, margin: route.DefaultMargin, pad: route.DefaultPad}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// pathElem is one fully validated, ready-to-emit path.
type pathElem struct {
	kind model.Kind
	d    string
}

// RenderSVG renders the relation fragment: one path per relation in
// input order, wrapped in an <svg> root with the viewport bounding box.
// Any validation failure aborts before output is produced.
func RenderSVG(rels []model.Relation, idx model.Index, vp model.Viewport, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)

	paths := make([]pathElem, 0, len(rels))
	for _, rel := range rels {
		d, err := r.pathData(rel, idx)
		if err != nil {
			return nil, err
		}
		paths = append(paths, pathElem{kind: rel.Kind, d: d})
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg class="%s" viewBox="0 0 %s %s" preserveAspectRatio="none" aria-hidden="true">`+"\n",
		rootClass, formatNum(vp.Width), formatNum(vp.Height))

	var prev model.Kind
	for i, p := range paths {
		// Blank line between runs of different kinds, purely cosmetic.
		if i > 0 && p.kind != prev {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, `  <path class="%s %s-%s" d="%s" />`+"\n", r.prefix, r.prefix, p.kind, p.d)
		prev = p.kind
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
