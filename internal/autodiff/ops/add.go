package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// AddOp represents elementwise addition: y = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, d(a+b)/db = 1
//   - both inputs receive grad_output, summed back to their own shape
type AddOp struct {
	autodiff.Base
}

// Forward computes a + b.
func (op *AddOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return single(xs[0].Add(xs[1]))
}

// Backward passes the output gradient through to both inputs.
func (op *AddOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	ga, err := reduceTo(gys[0], &op.Base, 0)
	if err != nil {
		return nil, err
	}
	gb, err := reduceTo(gys[0], &op.Base, 1)
	if err != nil {
		return nil, err
	}
	return []*tensor.Array{ga, gb}, nil
}

// Add returns a + b.
func Add(a, b *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&AddOp{}, a, b)
}

// AddConst returns x + c.
func AddConst(x *autodiff.Variable, c float64) (*autodiff.Variable, error) {
	return Add(x, autodiff.Const(c))
}
