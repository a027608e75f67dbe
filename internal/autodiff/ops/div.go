package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// DivOp represents elementwise division: y = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
type DivOp struct {
	autodiff.Base
}

// Forward computes a / b.
func (op *DivOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return single(xs[0].Div(xs[1]))
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	a, b := op.InputData(0), op.InputData(1)
	gy := gys[0]

	// grad_a = grad_output / b
	ga, err := gy.Div(b)
	if err != nil {
		return nil, err
	}
	if ga, err = reduceTo(ga, &op.Base, 0); err != nil {
		return nil, err
	}

	// grad_b = -grad_output * a / b²
	num, err := gy.Mul(a)
	if err != nil {
		return nil, err
	}
	gb, err := num.Neg().Div(b.Pow(2))
	if err != nil {
		return nil, err
	}
	if gb, err = reduceTo(gb, &op.Base, 1); err != nil {
		return nil, err
	}
	return []*tensor.Array{ga, gb}, nil
}

// Div returns a / b.
func Div(a, b *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&DivOp{}, a, b)
}
