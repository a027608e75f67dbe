package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// ExpOp represents the exponential: y = e^x.
//
// Backward pass:
//   - d(e^x)/dx = e^x
//   - grad_input = grad_output * exp(input)
type ExpOp struct {
	autodiff.Base
}

// Forward computes e^x.
func (op *ExpOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Exp()}, nil
}

// Backward computes grad_output * exp(input).
func (op *ExpOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].Mul(op.InputData(0).Exp()))
}

// Exp returns e^x.
func Exp(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&ExpOp{}, x)
}
