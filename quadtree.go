// Copyright 2026 The circletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package circletree

import (
	"fmt"
	"math"
)

const (
	// NearbySearchFactor widens the radius NearbyCircles hands to
	// QueryCircle. A packing pass calls NearbyCircles before it knows
	// the radius of the circle it is about to place, so the search
	// region must also cover neighbors whose own radius reaches back
	// toward the query point. The factor under-searches when a
	// neighbor's radius is much larger than 2.5 times the query
	// radius; that margin is part of the packing behavior this index
	// reproduces, so changing the value changes the packed output.
	NearbySearchFactor = 2.5

	// maxCollisionSearchRadius caps the candidate search radius used
	// by MaxRadiusWithoutCollision, bounding query cost for points
	// far from every canvas edge.
	maxCollisionSearchRadius = 100

	// edgeMarginFactor and circleMarginFactor shrink the canvas-edge
	// bound and the per-neighbor bound computed by
	// MaxRadiusWithoutCollision. Tangent-exact circles read as seams
	// in the packed output, so both bounds back off slightly.
	edgeMarginFactor   = 0.95
	circleMarginFactor = 0.9
)

// A Quadtree is a node of a spatial index over circles. Each node owns
// a list of circles and, once the list exceeds its capacity, exactly
// four child nodes that tile the node's boundary into equal quadrants.
//
// The root node is the whole index: construct it with New, fill it
// with Insert, and read it back with Query, QueryCircle, and the
// packing helpers NearbyCircles and MaxRadiusWithoutCollision.
//
// A Quadtree is not safe for concurrent use. The intended lifecycle is
// a single-threaded packing pass of interleaved queries and inserts;
// once the pass is over and no more mutation happens, the finished
// tree may be shared between concurrent readers.
type Quadtree struct {
	boundary Rect
	capacity int
	// circles holds the node's own circles: everything routed here
	// while the node is an undivided leaf, plus, after subdivision,
	// the overflow of circles that straddle more than one child
	// quadrant and therefore cannot be pushed down. The overflow is
	// deliberately uncapped, so len(circles) may exceed capacity in a
	// divided node.
	circles []Circle
	// divided is true once the node has children. The four child
	// pointers are always set together by subdivide and cleared
	// together by Clear; there is no partially divided state.
	divided   bool
	northeast *Quadtree
	northwest *Quadtree
	southeast *Quadtree
	southwest *Quadtree
}

// New creates an empty index over the given boundary. Circles outside
// the boundary are rejected by Insert, so the boundary should cover
// the whole canvas the caller packs into. Capacity is the number of
// circles a node holds before it subdivides; it is shared by every
// node of the tree. Panics if capacity is less than 1, since such a
// node could never hold anything and insertion would subdivide without
// end.
func New(boundary Rect, capacity int) *Quadtree {
	if capacity < 1 {
		textPanic("capacity must be at least 1")
	}
	return &Quadtree{
		boundary: boundary,
		capacity: capacity,
	}
}

// Insert stores a copy of c in the subtree rooted at qt. It returns
// false, storing nothing, if c does not overlap the node's boundary.
// Otherwise c is stored in exactly one node of the subtree and Insert
// returns true.
//
// A circle that overlaps more than one child quadrant stays on the
// lowest node whose quadrants it straddles, possibly the root. This
// keeps every circle in a single node, so queries never see
// duplicates, at the cost of an uncapped overflow list on divided
// nodes.
func (qt *Quadtree) Insert(c Circle) bool {
	if !qt.boundary.intersectsCircle(&c) {
		return false
	}
	if !qt.divided {
		if len(qt.circles) < qt.capacity {
			qt.circles = append(qt.circles, c)
			return true
		}
		qt.subdivide()
	}
	if qt.insertIntoChild(&c) {
		return true
	}
	qt.circles = append(qt.circles, c)
	return true
}

// subdivide creates the four children and pushes every circle that
// fits a single quadrant down into it. Straddling circles stay behind
// in qt.circles.
func (qt *Quadtree) subdivide() {
	hw := qt.boundary.Width / 2
	hh := qt.boundary.Height / 2
	qt.northwest = New(Rect{qt.boundary.X, qt.boundary.Y, hw, hh}, qt.capacity)
	qt.northeast = New(Rect{qt.boundary.X + hw, qt.boundary.Y, hw, hh}, qt.capacity)
	qt.southwest = New(Rect{qt.boundary.X, qt.boundary.Y + hh, hw, hh}, qt.capacity)
	qt.southeast = New(Rect{qt.boundary.X + hw, qt.boundary.Y + hh, hw, hh}, qt.capacity)
	qt.divided = true

	kept := qt.circles[:0]
	for i := range qt.circles {
		c := qt.circles[i]
		if !qt.insertIntoChild(&c) {
			kept = append(kept, c)
		}
	}
	qt.circles = kept
}

// insertIntoChild routes c to the one child quadrant it overlaps. It
// returns false without storing anything if c overlaps more than one
// quadrant, which is what strands straddling circles at their lowest
// common ancestor.
func (qt *Quadtree) insertIntoChild(c *Circle) bool {
	var target *Quadtree
	for _, child := range qt.children() {
		if child.boundary.intersectsCircle(c) {
			if target != nil {
				return false
			}
			target = child
		}
	}
	if target == nil {
		// Unreachable for circles that overlap qt.boundary: the
		// quadrants tile it, so the closest boundary point to the
		// circle's center lies in some quadrant.
		return false
	}
	return target.Insert(*c)
}

func (qt *Quadtree) children() [4]*Quadtree {
	return [4]*Quadtree{qt.northeast, qt.northwest, qt.southeast, qt.southwest}
}

// Query returns every circle in the subtree that overlaps or touches
// the range rectangle. The order of the results is not defined.
func (qt *Quadtree) Query(r Rect) []Circle {
	return qt.query(&r, nil)
}

func (qt *Quadtree) query(r *Rect, out []Circle) []Circle {
	for i := range qt.circles {
		if r.intersectsCircle(&qt.circles[i]) {
			out = append(out, qt.circles[i])
		}
	}
	if !qt.divided {
		return out
	}
	for _, child := range qt.children() {
		if child.boundary.intersects(r) {
			out = child.query(r, out)
		}
	}
	return out
}

// QueryCircle returns every circle in the subtree that overlaps or
// touches the circle of the given radius centered at (x, y). It
// queries the bounding square of the search circle and then filters
// the candidates with the exact circle-circle test, so a candidate
// whose bounding box clips the corner of the square without its circle
// reaching the search circle is excluded. The order of the results is
// not defined.
func (qt *Quadtree) QueryCircle(x, y, radius float64) []Circle {
	// Floored rather than rejected: a negative radius degrades to a
	// point probe, keeping the no-error contract.
	radius = math.Max(0, radius)
	probe := Circle{X: x, Y: y, Radius: radius}
	square := probe.bounds()
	candidates := qt.query(&square, nil)
	matches := candidates[:0]
	for i := range candidates {
		if probe.intersects(&candidates[i]) {
			matches = append(matches, candidates[i])
		}
	}
	return matches
}

// NearbyCircles returns the circles a packing pass should consider
// before placing a circle of roughly the given radius at (x, y). It is
// QueryCircle with the radius widened by NearbySearchFactor, and it
// inherits that factor's documented margin: a neighbor can be missed
// if its own radius reaches past the widened search circle.
func (qt *Quadtree) NearbyCircles(x, y, radius float64) []Circle {
	return qt.QueryCircle(x, y, radius*NearbySearchFactor)
}

// MaxRadiusWithoutCollision returns the largest radius a new circle
// centered at (x, y) may take without overlapping the canvas edges or,
// with less than minSpacing of surface-to-surface gap, any circle
// already in the index. The canvas spans (0, 0) to (canvasWidth,
// canvasHeight). The result is never negative; zero means there is no
// room at all, which is also what a point outside the canvas gets.
//
// Both the edge bound and the neighbor bound are shrunk slightly
// (edgeMarginFactor and circleMarginFactor) so committed circles are
// never tangent-exact.
//
// Neighbor candidates are searched within the distance to the nearest
// canvas edge, capped at maxCollisionSearchRadius. A neighbor beyond
// the cap can therefore go unseen; callers packing circles larger
// than the cap are outside this function's design envelope.
func (qt *Quadtree) MaxRadiusWithoutCollision(x, y, canvasWidth, canvasHeight, minSpacing float64) float64 {
	edge := math.Min(math.Min(x, y), math.Min(canvasWidth-x, canvasHeight-y))
	search := math.Min(edge, maxCollisionSearchRadius)
	candidates := qt.QueryCircle(x, y, search)
	if len(candidates) == 0 {
		return math.Max(0, edge*edgeMarginFactor)
	}
	nearest := math.Inf(1)
	for i := range candidates {
		c := &candidates[i]
		d := math.Sqrt((x-c.X)*(x-c.X)+(y-c.Y)*(y-c.Y)) - c.Radius - minSpacing
		if d < nearest {
			nearest = d
		}
	}
	return math.Max(0, math.Min(edge*edgeMarginFactor, nearest*circleMarginFactor))
}

// Clear resets the node to an empty, undivided leaf, dropping every
// stored circle and the whole subtree below it.
func (qt *Quadtree) Clear() {
	qt.circles = qt.circles[:0]
	qt.divided = false
	qt.northeast = nil
	qt.northwest = nil
	qt.southeast = nil
	qt.southwest = nil
}

// Size returns the total number of circles stored in the subtree.
func (qt *Quadtree) Size() int {
	n := len(qt.circles)
	if qt.divided {
		for _, child := range qt.children() {
			n += child.Size()
		}
	}
	return n
}

// Depth returns the maximum subdivision depth of the subtree: 1 for an
// undivided leaf, 2 once the node has children, and so on. Useful for
// spotting pathological subdivision under adversarial input.
func (qt *Quadtree) Depth() int {
	if !qt.divided {
		return 1
	}
	max := 0
	for _, child := range qt.children() {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// Boundary returns the node's boundary rectangle.
func (qt *Quadtree) Boundary() Rect {
	return qt.boundary
}

// Capacity returns the per-node circle capacity the tree was
// constructed with.
func (qt *Quadtree) Capacity() int {
	return qt.capacity
}

// String returns a summary description of the subtree.
func (qt *Quadtree) String() string {
	return fmt.Sprintf("Quadtree{Boundary:%s,Capacity:%d,Size:%d,Depth:%d}", qt.boundary, qt.capacity, qt.Size(), qt.Depth())
}
