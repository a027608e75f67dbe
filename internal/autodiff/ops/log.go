package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// LogOp represents the natural logarithm: y = log(x).
//
// Forward fails with tensor.ErrDomain unless every element of x is positive.
//
// Backward pass:
//   - d(log(x))/dx = 1/x
//   - grad_input = grad_output / input
type LogOp struct {
	autodiff.Base
}

// Forward computes log(x).
func (op *LogOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return single(xs[0].Log())
}

// Backward computes grad_output / input.
func (op *LogOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].Div(op.InputData(0)))
}

// Log returns the natural logarithm of x.
func Log(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&LogOp{}, x)
}
