// Copyright 2026 The circletree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package circletree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircle_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Circle
		expected string
	}{
		{"Zero", Circle{}, "Circle{(0,0),R:0}"},
		{"Integers", Circle{X: -1, Y: 2, Radius: 3}, "Circle{(-1,2),R:3}"},
		{"Exact", Circle{X: -100.5, Y: 200.25, Radius: 0.125}, "Circle{(-100.5,200.25),R:0.125}"},
		{"Rounded", Circle{X: -100000.0625, Y: 123.015625, Radius: 99.0078125}, "Circle{(-100000.06,123.015625),R:99.00781}"},
		{"ColorOmitted", Circle{X: 1, Y: 1, Radius: 1, Color: Color{R: 0.5, G: 0.25, B: 0.75}}, "Circle{(1,1),R:1}"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestCircle_intersects(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"Disjoint", Circle{X: 0, Y: 0, Radius: 1}, Circle{X: 4, Y: 0, Radius: 2}, false},
		{"Touching", Circle{X: 0, Y: 0, Radius: 1}, Circle{X: 3, Y: 0, Radius: 2}, true},
		{"Overlapping", Circle{X: 0, Y: 0, Radius: 2}, Circle{X: 1, Y: 1, Radius: 1}, true},
		{"Contained", Circle{X: 0, Y: 0, Radius: 5}, Circle{X: 1, Y: 0, Radius: 1}, true},
		{"ZeroRadiusOnSurface", Circle{X: 0, Y: 0, Radius: 0}, Circle{X: 1, Y: 0, Radius: 1}, true},
		{"ZeroRadiusApart", Circle{X: 0, Y: 0, Radius: 0}, Circle{X: 2, Y: 0, Radius: 1}, false},
		{"BothZeroSamePoint", Circle{X: 3, Y: 4, Radius: 0}, Circle{X: 3, Y: 4, Radius: 0}, true},
		{"BothZeroApart", Circle{X: 3, Y: 4, Radius: 0}, Circle{X: 3, Y: 5, Radius: 0}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.a.intersects(&testCase.b))
			assert.Equal(t, testCase.expected, testCase.b.intersects(&testCase.a))
		})
	}
}

func TestCircle_bounds(t *testing.T) {
	testCases := []struct {
		name     string
		input    Circle
		expected Rect
	}{
		{"Unit", Circle{X: 0, Y: 0, Radius: 1}, Rect{X: -1, Y: -1, Width: 2, Height: 2}},
		{"Point", Circle{X: 2, Y: 3, Radius: 0}, Rect{X: 2, Y: 3, Width: 0, Height: 0}},
		{"Offset", Circle{X: 1, Y: 1, Radius: 2}, Rect{X: -1, Y: -1, Width: 4, Height: 4}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.bounds()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}
