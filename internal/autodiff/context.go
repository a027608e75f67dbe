package autodiff

import (
	"weak"

	"github.com/born-ml/gograd/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Context carries the configuration of graph construction. It is passed
// explicitly: there is no package-level "no grad" switch.
//
//	y, err := autodiff.NoGrad().Apply(&ops.SinOp{}, x) // y is a leaf, no graph is kept
type Context struct {
	// EnableBackprop records creators and inputs on outputs. When false, Apply
	// only computes values and returns leaf Variables.
	EnableBackprop bool
}

// Background returns the default Context, with backprop enabled.
func Background() Context {
	return Context{EnableBackprop: true}
}

// NoGrad returns a Context that computes values without building a graph.
func NoGrad() Context {
	return Context{EnableBackprop: false}
}

// Apply invokes a single-output Function on inputs using Background().
func Apply(fn Function, inputs ...*Variable) (*Variable, error) {
	return Background().Apply(fn, inputs...)
}

// ApplyN invokes a Function on inputs using Background() and returns all its outputs.
func ApplyN(fn Function, inputs ...*Variable) ([]*Variable, error) {
	return Background().ApplyN(fn, inputs...)
}

// Apply invokes fn and returns its only output directly.
// It returns ErrMultipleOutputs if fn produced more than one value; use ApplyN for those.
func (c Context) Apply(fn Function, inputs ...*Variable) (*Variable, error) {
	outputs, err := c.ApplyN(fn, inputs...)
	if err != nil {
		return nil, err
	}
	if len(outputs) != 1 {
		return nil, errors.Wrapf(ErrMultipleOutputs, "%s produced %d outputs", fn.Name(), len(outputs))
	}
	return outputs[0], nil
}

// ApplyN invokes fn on inputs and wires the graph:
//   - each output gets fn as creator and the maximum input generation as generation;
//   - fn keeps its inputs and weak references to its outputs.
//
// Errors (and panics carrying an error) raised by Forward are returned wrapped with
// the Function's name. On error no graph wiring is recorded.
func (c Context) ApplyN(fn Function, inputs ...*Variable) ([]*Variable, error) {
	if fn == nil {
		return nil, errors.New("autodiff: nil function")
	}
	b := fn.base()
	name := functionName(fn)
	if b.applied {
		return nil, errors.Wrapf(ErrFunctionReused, "%s", name)
	}

	xs := make([]*tensor.Array, len(inputs))
	for i, in := range inputs {
		if in == nil {
			return nil, errors.Wrapf(ErrNilInput, "%s input #%d", name, i)
		}
		xs[i] = in.data
	}

	ys, err := callForward(fn, xs)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s.Forward", name)
	}
	if len(ys) == 0 {
		return nil, errors.Wrapf(ErrNoOutputs, "%s", name)
	}
	for i, y := range ys {
		if y == nil {
			return nil, errors.Wrapf(ErrNoOutputs, "%s output #%d is nil", name, i)
		}
	}

	b.applied = true
	b.name = name
	outputs := make([]*Variable, len(ys))
	if !c.EnableBackprop {
		for i, y := range ys {
			outputs[i] = NewVariable(y)
		}
		return outputs, nil
	}

	generation, depth := 0, 0
	for _, in := range inputs {
		generation = max(generation, in.generation)
		depth = max(depth, in.depth)
	}
	b.generation = generation
	b.depth = depth + 1
	b.inputs = append([]*Variable(nil), inputs...)
	b.outputs = make([]weak.Pointer[Variable], len(ys))
	b.outputShapes = make([]tensor.Shape, len(ys))
	for i, y := range ys {
		out := &Variable{
			data:       y,
			creator:    fn,
			generation: generation,
			depth:      b.depth,
		}
		outputs[i] = out
		b.outputs[i] = weak.Make(out)
		b.outputShapes[i] = y.Shape().Clone()
	}
	if klog.V(3).Enabled() {
		klog.Infof("autodiff: applied %s to %d input(s), %d output(s), generation %d", name, len(inputs), len(ys), generation)
	}
	return outputs, nil
}

// callForward runs fn.Forward, turning panics with an error value into errors.
func callForward(fn Function, xs []*tensor.Array) (ys []*tensor.Array, err error) {
	if panicErr := exceptions.TryCatch[error](func() {
		ys, err = fn.Forward(xs...)
	}); panicErr != nil {
		return nil, panicErr
	}
	return ys, err
}
