package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// TanhOp represents the hyperbolic tangent: y = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x)
//
// The output may have been reclaimed by the time Backward runs, so tanh(x) is
// recomputed from the input.
type TanhOp struct {
	autodiff.Base
}

// Forward computes tanh(x).
func (op *TanhOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Tanh()}, nil
}

// Backward computes grad_output * (1 - tanh²(input)).
func (op *TanhOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	y := op.InputData(0).Tanh()
	local, err := tensor.Scalar(1).Sub(y.Pow(2))
	if err != nil {
		return nil, err
	}
	return single(gys[0].Mul(local))
}

// Tanh returns tanh(x).
func Tanh(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&TanhOp{}, x)
}
