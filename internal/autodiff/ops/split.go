package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// SplitOp splits its input into N equal parts along axis 0.
//
// Forward: outputs = Split(input, N)
//
// Backward:
//
//	Concatenate all output gradients back together along axis 0.
//	grad_input = Concat(grad_output_1, ..., grad_output_N)
//
// Outputs nobody consumed (or that were garbage collected) contribute zeros.
type SplitOp struct {
	autodiff.Base
	N int
}

// Forward splits x into N parts.
func (op *SplitOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
	return xs[0].Split(op.N)
}

// Backward concatenates the output gradients.
func (op *SplitOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
	return single(tensor.Concat(gys...))
}

// Split divides x into n equal parts along axis 0.
// With n == 1 the result holds a single Variable.
func Split(x *autodiff.Variable, n int) ([]*autodiff.Variable, error) {
	return autodiff.ApplyN(&SplitOp{N: n}, x)
}
