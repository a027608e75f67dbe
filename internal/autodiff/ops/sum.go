package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// SumOp adds all elements of its input into a scalar.
//
// Backward broadcasts the scalar grad_output to the input's shape.
type SumOp struct {
	autodiff.Base
}

// Forward computes the sum of x.
func (op *SumOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Sum()}, nil
}

// Backward broadcasts the gradient to the input shape.
func (op *SumOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].BroadcastTo(op.InputData(0).Shape()))
}

// Sum returns the sum of all elements of x.
func Sum(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&SumOp{}, x)
}

// SumToOp sums its input down to Shape, which must hold a single element
// unless it equals the input shape.
//
// Backward broadcasts grad_output back to the input shape.
type SumToOp struct {
	autodiff.Base
	Shape tensor.Shape
}

// Forward sums x to Shape.
func (op *SumToOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return single(xs[0].SumTo(op.Shape))
}

// Backward broadcasts the gradient to the input shape.
func (op *SumToOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].BroadcastTo(op.InputData(0).Shape()))
}

// SumTo returns x summed to shape. Summing to x's own shape returns x itself.
func SumTo(x *autodiff.Variable, shape tensor.Shape) (*autodiff.Variable, error) {
	if x.Shape().Equal(shape) {
		return x, nil
	}
	return autodiff.Apply(&SumToOp{Shape: shape.Clone()}, x)
}

// BroadcastToOp expands a single-element input to Shape.
//
// Backward sums grad_output back to the input shape.
type BroadcastToOp struct {
	autodiff.Base
	Shape tensor.Shape
}

// Forward broadcasts x to Shape.
func (op *BroadcastToOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return single(xs[0].BroadcastTo(op.Shape))
}

// Backward sums the gradient to the input shape.
func (op *BroadcastToOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].SumTo(op.InputData(0).Shape()))
}

// BroadcastTo returns x expanded to shape. Broadcasting to x's own shape returns x itself.
func BroadcastTo(x *autodiff.Variable, shape tensor.Shape) (*autodiff.Variable, error) {
	if x.Shape().Equal(shape) {
		return x, nil
	}
	return autodiff.Apply(&BroadcastToOp{Shape: shape.Clone()}, x)
}
