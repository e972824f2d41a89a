// Copyright 2026 The circletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package circletree

import "fmt"

// A Color is the three-channel color carried along with a Circle. The
// index stores and returns it untouched: whether the channels mean
// RGB, HSL, or anything else is entirely the caller's business.
type Color struct {
	R, G, B float64
}

// A Circle is a single indexed item: a center, a radius, and the color
// the caller sampled for it. Circles are plain values; Insert stores a
// copy, so mutating a caller-side Circle after insertion never changes
// the index.
type Circle struct {
	// X and Y locate the circle's center, in whatever coordinate
	// space the tree's boundary uses (pixels, normalized units, ...).
	// The space just has to be consistent across one tree.
	X, Y float64
	// Radius is the circle's radius. Zero is valid and degrades the
	// circle to a point.
	Radius float64
	// Color is carried but never interpreted by the index.
	Color Color
}

// intersects reports whether two circles overlap or touch, using the
// exact center-distance test rather than a bounding-box approximation.
func (c *Circle) intersects(o *Circle) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	rr := c.Radius + o.Radius
	return dx*dx+dy*dy <= rr*rr
}

// bounds returns the circle's axis-aligned bounding square.
func (c *Circle) bounds() Rect {
	return Rect{
		X:      c.X - c.Radius,
		Y:      c.Y - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

// String returns a compact description of the circle. The color is
// omitted because the index never interprets it.
func (c Circle) String() string {
	return fmt.Sprintf("Circle{(%s,%s),R:%s}", formatFloat(c.X), formatFloat(c.Y), formatFloat(c.Radius))
}
