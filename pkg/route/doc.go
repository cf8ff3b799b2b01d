// Package route computes orthogonal connector geometry between entity
// rectangles.
//
// Two modes are provided: Orthogonal builds an L- or Z-shaped connector
// between the facing sides of two rectangles, and Avoid routes on a
// sparse grid of obstacle-edge coordinates with A* so the connector does
// not cut through other entities. Both return the ordered polyline
// points; rendering them into path data is the caller's concern.
package route
