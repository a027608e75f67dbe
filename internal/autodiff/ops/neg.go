package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// NegOp represents negation: y = -x.
type NegOp struct {
	autodiff.Base
}

// Forward computes -x.
func (op *NegOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Neg()}, nil
}

// Backward returns -grad_output.
func (op *NegOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{gys[0].Neg()}, nil
}

// Neg returns -x.
func Neg(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&NegOp{}, x)
}
