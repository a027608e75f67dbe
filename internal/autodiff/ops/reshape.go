package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// ReshapeOp changes the shape of its input, keeping the elements in order.
//
// Backward reshapes grad_output back to the input's shape.
type ReshapeOp struct {
	autodiff.Base
	Shape tensor.Shape
}

// Forward reshapes x to Shape.
func (op *ReshapeOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return single(xs[0].Reshape(op.Shape))
}

// Backward reshapes the gradient to the input shape.
func (op *ReshapeOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].Reshape(op.InputData(0).Shape()))
}

// Reshape returns x with a new shape. Reshaping to the same shape returns x itself.
func Reshape(x *autodiff.Variable, shape tensor.Shape) (*autodiff.Variable, error) {
	if x.Shape().Equal(shape) {
		return x, nil
	}
	return autodiff.Apply(&ReshapeOp{Shape: shape.Clone()}, x)
}

// TransposeOp reverses the axes of its input.
//
// Transposition is its own inverse, so Backward transposes grad_output.
type TransposeOp struct {
	autodiff.Base
}

// Forward transposes x.
func (op *TransposeOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Transpose()}, nil
}

// Backward transposes the gradient back.
func (op *TransposeOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{gys[0].Transpose()}, nil
}

// Transpose returns x with its axes reversed.
func Transpose(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&TransposeOp{}, x)
}
