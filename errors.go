// Copyright 2026 The circletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package circletree

const packageName = "circletree: "

// The index itself raises no errors: degenerate inputs degrade to
// empty results (a rectangle with no area intersects nothing, a radius
// is floored at zero). The only failure mode is a programmer mistake
// caught at construction time, which panics.

func textPanic(text string) {
	panic(packageName + text)
}
