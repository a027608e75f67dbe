package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// CosOp represents the cosine operation: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
//   - grad_input = -grad_output * sin(input)
type CosOp struct {
	autodiff.Base
}

// Forward computes cos(x).
func (op *CosOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Cos()}, nil
}

// Backward computes -grad_output * sin(input).
func (op *CosOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].Mul(op.InputData(0).Sin().Neg()))
}

// Cos returns cos(x).
func Cos(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&CosOp{}, x)
}
