// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides define-by-run reverse-mode automatic differentiation.
//
// Every operation on Variables records the Function that produced its result,
// so the computation graph is built as the code runs. Backward then walks the
// graph from an output, most recent Functions first, and accumulates the
// gradient of that output into every Variable it depends on.
//
// Example:
//
//	import "github.com/born-ml/gograd/autodiff"
//
//	func main() {
//	    x := autodiff.Const(3, autodiff.WithName("x"))
//	    x2, _ := autodiff.Square(x)
//	    y, _ := autodiff.Add(x2, x) // y = x² + x
//
//	    if err := y.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(y.Data(), x.Grad()) // 12 7
//	}
//
// Custom operations embed Base and implement Forward and Backward; see Function.
package autodiff

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/dot"
	"github.com/born-ml/gograd/tensor"
)

// Variable is a node of the computation graph: a value, its gradient and the
// Function that created it.
type Variable = autodiff.Variable

// Function is a differentiable operation. Implementations embed Base.
type Function = autodiff.Function

// Base carries the graph bookkeeping every Function embeds.
type Base = autodiff.Base

// Context configures graph construction.
type Context = autodiff.Context

// VariableOption configures NewVariable and Const.
type VariableOption = autodiff.VariableOption

// BackwardOption configures Variable.Backward.
type BackwardOption = autodiff.BackwardOption

// Errors.
var (
	ErrNotImplemented   = autodiff.ErrNotImplemented
	ErrMultipleOutputs  = autodiff.ErrMultipleOutputs
	ErrNoOutputs        = autodiff.ErrNoOutputs
	ErrFunctionReused   = autodiff.ErrFunctionReused
	ErrNilInput         = autodiff.ErrNilInput
	ErrGradientArity    = autodiff.ErrGradientArity
	ErrGradientShape    = autodiff.ErrGradientShape
	ErrUnsupportedValue = autodiff.ErrUnsupportedValue
)

// NewVariable wraps data in a leaf Variable.
func NewVariable(data *tensor.Array, opts ...VariableOption) *Variable {
	return autodiff.NewVariable(data, opts...)
}

// Const creates a scalar leaf Variable.
func Const(c float64, opts ...VariableOption) *Variable {
	return autodiff.Const(c, opts...)
}

// AsVariable converts a *Variable, *tensor.Array, float64, int or []float64 to a Variable.
func AsVariable(x any) (*Variable, error) {
	return autodiff.AsVariable(x)
}

// WithName sets the display name of a Variable.
func WithName(name string) VariableOption {
	return autodiff.WithName(name)
}

// Background returns the default Context, with backprop enabled.
func Background() Context {
	return autodiff.Background()
}

// NoGrad returns a Context that computes values without recording a graph.
func NoGrad() Context {
	return autodiff.NoGrad()
}

// Apply invokes a single-output Function.
func Apply(fn Function, inputs ...*Variable) (*Variable, error) {
	return autodiff.Apply(fn, inputs...)
}

// ApplyN invokes a Function and returns all of its outputs.
func ApplyN(fn Function, inputs ...*Variable) ([]*Variable, error) {
	return autodiff.ApplyN(fn, inputs...)
}

// RetainGrad controls whether intermediate Variables keep their gradients after Backward.
func RetainGrad(retain bool) BackwardOption {
	return autodiff.RetainGrad(retain)
}

// WithObserver calls fn with each Function as the backward pass runs it.
func WithObserver(fn func(Function)) BackwardOption {
	return autodiff.WithObserver(fn)
}

// Dot returns the Graphviz DOT source of the graph that produced output.
// With withGrad, Variable labels include their gradients.
func Dot(output *Variable, withGrad bool) string {
	if withGrad {
		return dot.Render(output, dot.WithGrad())
	}
	return dot.Render(output)
}
