// Copyright 2026 The circletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package circletree provides the quadtree spatial index behind a
// circle-packing image stylization: it stores placed circles, answers
// proximity queries, and computes the largest radius a new circle may
// take at a point without colliding with its neighbors or the canvas
// edge.
//
// Although written for circle packing, the index is a simple, reusable
// construct usable wherever circles need spatial lookup.
package circletree
