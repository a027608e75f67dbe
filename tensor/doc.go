// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the n-dimensional float64 arrays that gograd
// Variables hold.
//
// # Overview
//
// Arrays are immutable: every operation returns a new Array and never
// modifies its operands. Data is stored row-major.
//
// # Basic Usage
//
//	import "github.com/born-ml/gograd/tensor"
//
//	func main() {
//	    a := tensor.Vector(1, 2, 3)
//	    b := tensor.Scalar(2)
//
//	    c, err := a.Mul(b) // [2 4 6]
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(c, c.Shape()) // [2 4 6] (3,)
//	}
//
// # Shapes
//
// Elementwise operations accept operands of equal shape, or one operand
// with a single element that is promoted to the other's shape. Anything
// else fails with ErrShapeMismatch. General NumPy-style broadcasting is not
// supported.
//
// # Domain Errors
//
// Log of a value that is not strictly positive returns ErrDomain instead of
// producing -Inf or NaN.
package tensor
