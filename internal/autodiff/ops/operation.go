// Package ops implements the differentiable operations of the autodiff engine.
//
// Each operation is a struct embedding autodiff.Base that supplies Forward
// (values) and Backward (chain rule). A fresh value is applied per call; the
// helper functions (Add, Sin, Pow, ...) do that for you:
//
//	x := autodiff.Const(3, autodiff.WithName("x"))
//	y, _ := ops.Pow(x, 2) // y = x²
//	_ = y.Backward()
//	// x.Grad() == 6
//
// Supported operations:
//   - AddOp, SubOp, MulOp, DivOp: elementwise arithmetic; a single-element operand
//     is promoted, and its gradient is summed back to its shape
//   - NegOp, PowOp, SquareOp: negation and constant powers (d(x^c)/dx = c*x^(c-1))
//   - SinOp, CosOp, TanhOp, ExpOp, LogOp: elementwise transcendental functions
//   - ReshapeOp, TransposeOp, SumOp, SumToOp, BroadcastToOp: shape manipulation
//   - SplitOp: splits along axis 0 into several outputs
package ops

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
)

// single packs a single forward result.
func single(y *tensor.Array, err error) ([]*tensor.Array, error) {
	if err != nil {
		return nil, err
	}
	return []*tensor.Array{y}, nil
}

// reduceTo sums a gradient back to the shape of the i-th input of op, undoing
// the single-element promotion done by binary elementwise ops.
func reduceTo(gy *tensor.Array, b *autodiff.Base, i int) (*tensor.Array, error) {
	return gy.SumTo(b.InputData(i).Shape())
}
