package model

// Kind classifies the visual treatment of a relation.
type Kind string

// The closed set of relation kinds. Anything else in the model is a
// fatal input error.
const (
	KindFlow  Kind = "flow"  // primary data flow
	KindRef   Kind = "ref"   // secondary reference
	KindCross Kind = "cross" // cross-domain link
)

// ValidKinds is the set of accepted relation kinds.
var ValidKinds = map[Kind]bool{
	KindFlow:  true,
	KindRef:   true,
	KindCross: true,
}

// Valid reports whether k is one of the accepted kinds.
func (k Kind) Valid() bool {
	return ValidKinds[k]
}

// Route selects how a relation's path is constructed.
type Route string

// Route modes. Direct is the default and follows the authored points
// verbatim; Ortho and Avoid compute an orthogonal connector between
// entity rectangles and require size on both endpoints.
const (
	RouteDirect Route = "direct"
	RouteOrtho  Route = "ortho"
	RouteAvoid  Route = "avoid"
)

// Valid reports whether r is a known route mode. The empty string is
// valid and means RouteDirect.
func (r Route) Valid() bool {
	switch r {
	case "", RouteDirect, RouteOrtho, RouteAvoid:
		return true
	}
	return false
}

// Point is a 2D coordinate in viewport units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Size is an entity's rendered extent. It is optional in the model and
// only consulted by the routed connector modes.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Viewport is the coordinate space of the rendered fragment.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default viewport dimensions used when the model omits viewbox.
const (
	DefaultWidth  = 1360.0
	DefaultHeight = 900.0
)

// Entity is a named diagram node with a fixed position.
type Entity struct {
	ID   string `yaml:"id"`
	Pos  *Point `yaml:"pos"`
	Size *Size  `yaml:"size,omitempty"`
}

// Relation is a directed visual connector between two entities.
type Relation struct {
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Kind  Kind    `yaml:"kind"`
	Via   []Point `yaml:"via,omitempty"`
	Route Route   `yaml:"route,omitempty"`
}

// Model is the diagram section of the source document.
type Model struct {
	Viewbox   *Viewport  `yaml:"viewbox,omitempty"`
	Entities  []Entity   `yaml:"entities"`
	Relations []Relation `yaml:"relations"`
}

// Viewport returns the configured viewbox, or the 1360×900 default when
// the model omits it.
func (m *Model) Viewport() Viewport {
	if m.Viewbox != nil {
		return *m.Viewbox
	}
	return Viewport{Width: DefaultWidth, Height: DefaultHeight}
}
