// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gograd/internal/tensor"
)

// Type aliases for public API

// Array is an immutable n-dimensional array of float64.
type Array = tensor.Array

// Shape holds the dimensions of an Array. The empty Shape is a scalar.
type Shape = tensor.Shape

// Errors.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrDomain        = tensor.ErrDomain
	ErrNotScalar     = tensor.ErrNotScalar
)

// Creation functions

// Scalar creates a 0-dimensional array.
func Scalar(v float64) *Array {
	return tensor.Scalar(v)
}

// Vector creates a 1-dimensional array from values.
func Vector(values ...float64) *Array {
	return tensor.Vector(values...)
}

// FromSlice creates an array of the given shape from a copy of data.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// Full creates an array filled with v.
func Full(shape Shape, v float64) (*Array, error) {
	return tensor.Full(shape, v)
}

// Zeros creates an array of zeros. It panics on an invalid shape.
func Zeros(shape Shape) *Array {
	return tensor.Zeros(shape)
}

// Ones creates an array of ones. It panics on an invalid shape.
func Ones(shape Shape) *Array {
	return tensor.Ones(shape)
}

// ZerosLike creates zeros with a's shape.
func ZerosLike(a *Array) *Array {
	return tensor.ZerosLike(a)
}

// OnesLike creates ones with a's shape.
func OnesLike(a *Array) *Array {
	return tensor.OnesLike(a)
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) (*Array, error) {
	return tensor.Linspace(start, stop, n)
}

// Concat joins arrays along the first axis.
func Concat(parts ...*Array) (*Array, error) {
	return tensor.Concat(parts...)
}

// AllClose reports whether a and b have the same shape and all elements
// within tol of each other.
func AllClose(a, b *Array, tol float64) bool {
	return tensor.AllClose(a, b, tol)
}
