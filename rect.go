// Copyright 2026 The circletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package circletree

import (
	"fmt"
	"strconv"
)

// A Rect is an axis-aligned rectangle given by its minimum corner and
// its size. It serves both as a node boundary and as a query range.
// Zero-area rectangles are valid; they intersect only geometry that
// touches the degenerate edge or point they collapse to.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// intersects reports whether two rectangles overlap, by the standard
// separating-axis test on the two coordinate ranges. Touching edges
// count as overlap.
func (r *Rect) intersects(o *Rect) bool {
	if o.X > r.X+r.Width {
		return false
	}
	if o.X+o.Width < r.X {
		return false
	}
	if o.Y > r.Y+r.Height {
		return false
	}
	if o.Y+o.Height < r.Y {
		return false
	}
	return true
}

// intersectsCircle reports whether c overlaps or touches the
// rectangle. The circle's center is clamped into the rectangle and
// the clamped point tested against the radius, so this is a true
// circle/AABB overlap test, not a bounding-box check.
func (r *Rect) intersectsCircle(c *Circle) bool {
	dx := c.X - clamp(c.X, r.X, r.X+r.Width)
	dy := c.Y - clamp(c.Y, r.Y, r.Y+r.Height)
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// String returns a compact [x,y,width,height] description of the
// rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%s,%s,%s,%s]", formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Width), formatFloat(r.Height))
}

// formatFloat renders f in the shortest form that round-trips at
// float32 precision, which keeps stringers readable without drowning
// them in digits.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 32)
}
