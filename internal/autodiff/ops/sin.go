package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - grad_input = grad_output * cos(input)
type SinOp struct {
	autodiff.Base
}

// Forward computes sin(x).
func (op *SinOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Sin()}, nil
}

// Backward computes grad_output * cos(input).
func (op *SinOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].Mul(op.InputData(0).Cos()))
}

// Sin returns sin(x).
func Sin(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&SinOp{}, x)
}
