package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// PowOp raises its input to a constant power: y = x^C.
//
// Backward pass:
//   - d(x^c)/dx = c * x^(c-1)
//   - grad_input = grad_output * c * x^(c-1)
type PowOp struct {
	autodiff.Base
	C float64
}

// Forward computes x^C.
func (op *PowOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Pow(op.C)}, nil
}

// Backward computes grad_output * C * x^(C-1).
func (op *PowOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	local := op.InputData(0).Pow(op.C - 1).Scale(op.C)
	return single(gys[0].Mul(local))
}

// Pow returns x^c.
func Pow(x *autodiff.Variable, c float64) (*autodiff.Variable, error) {
	return autodiff.Apply(&PowOp{C: c}, x)
}

// SquareOp represents y = x².
type SquareOp struct {
	autodiff.Base
}

// Forward computes x².
func (op *SquareOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return []*tensor.Array{xs[0].Pow(2)}, nil
}

// Backward computes grad_output * 2x.
func (op *SquareOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(gys[0].Mul(op.InputData(0).Scale(2)))
}

// Square returns x².
func Square(x *autodiff.Variable) (*autodiff.Variable, error) {
	return autodiff.Apply(&SquareOp{}, x)
}
