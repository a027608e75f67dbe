// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/born-ml/gograd/internal/autodiff/ops"
	"github.com/born-ml/gograd/tensor"
)

// Elementwise arithmetic. Operands must have equal shapes, or one of them a single element.

// Add returns a + b.
func Add(a, b *Variable) (*Variable, error) { return ops.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Variable) (*Variable, error) { return ops.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Variable) (*Variable, error) { return ops.Mul(a, b) }

// Div returns a / b.
func Div(a, b *Variable) (*Variable, error) { return ops.Div(a, b) }

// AddConst returns x + c.
func AddConst(x *Variable, c float64) (*Variable, error) { return ops.AddConst(x, c) }

// SubConst returns x - c.
func SubConst(x *Variable, c float64) (*Variable, error) { return ops.SubConst(x, c) }

// RSubConst returns c - x.
func RSubConst(c float64, x *Variable) (*Variable, error) { return ops.RSubConst(c, x) }

// MulConst returns c * x.
func MulConst(c float64, x *Variable) (*Variable, error) { return ops.MulConst(c, x) }

// Neg returns -x.
func Neg(x *Variable) (*Variable, error) { return ops.Neg(x) }

// Pow returns x raised to the constant power c.
func Pow(x *Variable, c float64) (*Variable, error) { return ops.Pow(x, c) }

// Square returns x².
func Square(x *Variable) (*Variable, error) { return ops.Square(x) }

// Elementwise functions.

// Sin returns sin(x).
func Sin(x *Variable) (*Variable, error) { return ops.Sin(x) }

// Cos returns cos(x).
func Cos(x *Variable) (*Variable, error) { return ops.Cos(x) }

// Tanh returns tanh(x).
func Tanh(x *Variable) (*Variable, error) { return ops.Tanh(x) }

// Exp returns eˣ.
func Exp(x *Variable) (*Variable, error) { return ops.Exp(x) }

// Log returns the natural logarithm of x; x must be strictly positive.
func Log(x *Variable) (*Variable, error) { return ops.Log(x) }

// Shape manipulation.

// Reshape returns x with a new shape holding the same number of elements.
func Reshape(x *Variable, shape tensor.Shape) (*Variable, error) { return ops.Reshape(x, shape) }

// Transpose reverses the axes of x.
func Transpose(x *Variable) (*Variable, error) { return ops.Transpose(x) }

// Sum reduces x to a scalar.
func Sum(x *Variable) (*Variable, error) { return ops.Sum(x) }

// SumTo sums x down to shape.
func SumTo(x *Variable, shape tensor.Shape) (*Variable, error) { return ops.SumTo(x, shape) }

// BroadcastTo expands a single-element x to shape.
func BroadcastTo(x *Variable, shape tensor.Shape) (*Variable, error) {
	return ops.BroadcastTo(x, shape)
}

// Split cuts x into n equal parts along its first axis.
func Split(x *Variable, n int) ([]*Variable, error) { return ops.Split(x, n) }
