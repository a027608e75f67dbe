package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// MulOp represents elementwise multiplication: y = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, d(a*b)/db = a
//   - grad_a = grad_output * b
//   - grad_b = grad_output * a
type MulOp struct {
	autodiff.Base
}

// Forward computes a * b.
func (op *MulOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return single(xs[0].Mul(xs[1]))
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	a, b := op.InputData(0), op.InputData(1)

	ga, err := gys[0].Mul(b)
	if err != nil {
		return nil, err
	}
	if ga, err = reduceTo(ga, &op.Base, 0); err != nil {
		return nil, err
	}

	gb, err := gys[0].Mul(a)
	if err != nil {
		return nil, err
	}
	if gb, err = reduceTo(gb, &op.Base, 1); err != nil {
		return nil, err
	}
	return []*tensor.Array{ga, gb}, nil
}

// Mul returns a * b.
func Mul(a, b *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&MulOp{}, a, b)
}

// MulConst returns c * x.
func MulConst(c float64, x *autodiff.Variable) (*autodiff.Variable, error) {
	return Mul(autodiff.Const(c), x)
}
