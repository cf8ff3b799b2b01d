// Package render emits the SVG relation fragment.
//
// One <path> element is produced per relation, in model order, grouped
// visually by kind (a blank line separates runs of different kinds) and
// wrapped in a single <svg> root sized to the model viewport. Rendering
// is all-or-nothing: every relation is validated and its path data built
// before a single byte of markup is written.
package render
