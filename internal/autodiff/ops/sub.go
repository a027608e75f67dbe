package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// SubOp represents elementwise subtraction: y = a - b.
//
// Backward pass:
//   - grad_a = grad_output
//   - grad_b = -grad_output
type SubOp struct {
	autodiff.Base
}

// Forward computes a - b.
func (op *SubOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return single(xs[0].Sub(xs[1]))
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	ga, err := reduceTo(gys[0], &op.Base, 0)
	if err != nil {
		return nil, err
	}
	gb, err := reduceTo(gys[0].Neg(), &op.Base, 1)
	if err != nil {
		return nil, err
	}
	return []*tensor.Array{ga, gb}, nil
}

// Sub returns a - b.
func Sub(a, b *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&SubOp{}, a, b)
}

// SubConst returns x - c.
func SubConst(x *autodiff.Variable, c float64) (*autodiff.Variable, error) {
	return Sub(x, autodiff.Const(c))
}

// RSubConst returns c - x.
func RSubConst(c float64, x *autodiff.Variable) (*autodiff.Variable, error) {
	return Sub(autodiff.Const(c), x)
}
