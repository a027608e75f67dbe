package autodiff

import (
	"reflect"
	"strings"
	"weak"

	"github.com/born-ml/gograd/internal/tensor"
)

// Function is one differentiable operation of the computation graph.
//
// Concrete operations are structs embedding Base and overriding Forward and Backward:
//
//	type SinOp struct{ autodiff.Base }
//
//	func (op *SinOp) Forward(xs ...*tensor.Array) ([]*tensor.Array, error) {
//		return []*tensor.Array{xs[0].Sin()}, nil
//	}
//
//	func (op *SinOp) Backward(gys ...*tensor.Array) ([]*tensor.Array, error) {
//		gx, err := gys[0].Mul(op.InputData(0).Cos())
//		return []*tensor.Array{gx}, err
//	}
//
// A Function value is applied once (see Apply) and is retained only as long as
// one of its outputs references it as creator.
type Function interface {
	// Forward computes output values from input values. It must not mutate xs.
	Forward(xs ...*tensor.Array) ([]*tensor.Array, error)

	// Backward receives one gradient per output and returns one gradient per input.
	Backward(gys ...*tensor.Array) ([]*tensor.Array, error)

	// Inputs returns the Variables consumed by the Function.
	Inputs() []*Variable

	// Outputs dereferences the produced Variables. Entries are nil for outputs
	// that have been garbage collected.
	Outputs() []*Variable

	// Generation is the maximum generation among the inputs.
	Generation() int

	// Name is the operation name used for display, e.g. "Sin".
	Name() string

	base() *Base
}

// Base carries the graph wiring shared by all Functions. Embed it to implement Function.
//
// Inputs are held strongly; outputs only through weak pointers, so a Function never
// keeps an otherwise unused output alive.
type Base struct {
	name         string
	inputs       []*Variable
	outputs      []weak.Pointer[Variable]
	outputShapes []tensor.Shape
	generation   int

	// depth is 1 + the maximum depth of the inputs (leaves are 0). It strictly
	// increases along every graph edge and breaks generation ties in the backward queue.
	depth int

	applied bool
}

// Forward is not implemented by Base.
func (b *Base) Forward(...*tensor.Array) ([]*tensor.Array, error) {
	return nil, ErrNotImplemented
}

// Backward is not implemented by Base.
func (b *Base) Backward(...*tensor.Array) ([]*tensor.Array, error) {
	return nil, ErrNotImplemented
}

// Inputs returns the Variables consumed by the Function.
func (b *Base) Inputs() []*Variable {
	return b.inputs
}

// Input returns the i-th input Variable.
func (b *Base) Input(i int) *Variable {
	return b.inputs[i]
}

// InputData returns the value of the i-th input.
func (b *Base) InputData(i int) *tensor.Array {
	return b.inputs[i].data
}

// NumOutputs returns the number of outputs produced, reclaimed or not.
func (b *Base) NumOutputs() int {
	return len(b.outputs)
}

// Outputs dereferences the weak output references.
func (b *Base) Outputs() []*Variable {
	outs := make([]*Variable, len(b.outputs))
	for i, ref := range b.outputs {
		outs[i] = ref.Value()
	}
	return outs
}

// Generation returns the Function's generation.
func (b *Base) Generation() int {
	return b.generation
}

// Name returns the operation name.
func (b *Base) Name() string {
	return b.name
}

func (b *Base) base() *Base {
	return b
}

// outputGrads collects one gradient per output. Outputs that were reclaimed, or
// that no consumer reached, contribute zeros of the recorded shape.
func (b *Base) outputGrads() (gys []*tensor.Array, missing int) {
	gys = make([]*tensor.Array, len(b.outputs))
	for i, ref := range b.outputs {
		if y := ref.Value(); y != nil && y.grad != nil {
			gys[i] = y.grad
			continue
		}
		gys[i] = tensor.Zeros(b.outputShapes[i])
		missing++
	}
	return gys, missing
}

// functionName returns the concrete type name of fn without an "Op" suffix,
// e.g. "Sin" for *ops.SinOp.
func functionName(fn Function) string {
	t := reflect.TypeOf(fn)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := strings.TrimSuffix(t.Name(), "Op")
	if name == "" {
		return "Function"
	}
	return name
}
