// Package expr is a small catalog of single-variable expressions used to demonstrate
// the autodiff engine: each builds a named computation graph from x and can be
// evaluated together with its derivative and a step-by-step walkthrough.
package expr

import (
	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/autodiff/ops"
	"github.com/born-ml/gograd/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// ErrUnknownExpression is returned by Lookup for names not in the catalog.
	ErrUnknownExpression = errors.New("unknown expression")

	// ErrUndefined is returned when the expression is undefined at x, e.g. log(x + 1) for x <= -1.
	ErrUndefined = errors.New("expression undefined at x")
)

// Expression is a catalog entry.
type Expression struct {
	// Name is the catalog key, written in Python-like syntax, e.g. "x ** 2 + x".
	Name string

	// Formula is the human-readable formula, e.g. "x^2 + x".
	Formula string

	build func(x *autodiff.Variable) (y *autodiff.Variable, steps []*autodiff.Variable, err error)
}

// Build constructs the graph for x. Besides the output it returns the named
// intermediate Variables in evaluation order (the output is the last one).
func (e Expression) Build(x *autodiff.Variable) (*autodiff.Variable, []*autodiff.Variable, error) {
	if x.Name() == "" {
		x.SetName("x")
	}
	y, steps, err := e.build(x)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "building %q", e.Name)
	}
	return y, steps, nil
}

var catalog = []Expression{
	{Name: "x ** 2 + x", Formula: "x^2 + x", build: buildSquarePlusX},
	{Name: "x ** 3 + 2 * x", Formula: "x^3 + 2x", build: buildCubePlusTwoX},
	{Name: "sin(x) + x", Formula: "sin(x) + x", build: unaryPlusX("sin", ops.Sin)},
	{Name: "cos(x) + x", Formula: "cos(x) + x", build: unaryPlusX("cos", ops.Cos)},
	{Name: "exp(x) - x", Formula: "exp(x) - x", build: buildExpMinusX},
	{Name: "log(x + 1)", Formula: "log(x + 1)", build: buildLogXPlusOne},
}

// Names lists the catalog in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}
	return names
}

// Lookup finds an expression by name.
func Lookup(name string) (Expression, error) {
	for _, e := range catalog {
		if e.Name == name {
			return e, nil
		}
	}
	return Expression{}, errors.Wrapf(ErrUnknownExpression, "%q", name)
}

// named sets the display name of v and returns it.
func named(v *autodiff.Variable, name string) *autodiff.Variable {
	v.SetName(name)
	return v
}

func buildSquarePlusX(x *autodiff.Variable) (*autodiff.Variable, []*autodiff.Variable, error) {
	x2, err := ops.Pow(x, 2)
	if err != nil {
		return nil, nil, err
	}
	named(x2, "x^2")
	y, err := ops.Add(x2, x)
	if err != nil {
		return nil, nil, err
	}
	named(y, "x^2+x")
	return y, []*autodiff.Variable{x2, y}, nil
}

func buildCubePlusTwoX(x *autodiff.Variable) (*autodiff.Variable, []*autodiff.Variable, error) {
	x3, err := ops.Pow(x, 3)
	if err != nil {
		return nil, nil, err
	}
	named(x3, "x^3")
	x2x, err := ops.MulConst(2, x)
	if err != nil {
		return nil, nil, err
	}
	named(x2x, "2x")
	y, err := ops.Add(x3, x2x)
	if err != nil {
		return nil, nil, err
	}
	named(y, "x^3+2x")
	return y, []*autodiff.Variable{x3, x2x, y}, nil
}

func unaryPlusX(fname string, fn func(*autodiff.Variable) (*autodiff.Variable, error)) func(*autodiff.Variable) (*autodiff.Variable, []*autodiff.Variable, error) {
	return func(x *autodiff.Variable) (*autodiff.Variable, []*autodiff.Variable, error) {
		fx, err := fn(x)
		if err != nil {
			return nil, nil, err
		}
		named(fx, fname+"(x)")
		y, err := ops.Add(fx, x)
		if err != nil {
			return nil, nil, err
		}
		named(y, fname+"(x)+x")
		return y, []*autodiff.Variable{fx, y}, nil
	}
}

func buildExpMinusX(x *autodiff.Variable) (*autodiff.Variable, []*autodiff.Variable, error) {
	ex, err := ops.Exp(x)
	if err != nil {
		return nil, nil, err
	}
	named(ex, "exp(x)")
	y, err := ops.Sub(ex, x)
	if err != nil {
		return nil, nil, err
	}
	named(y, "exp(x)-x")
	return y, []*autodiff.Variable{ex, y}, nil
}

func buildLogXPlusOne(x *autodiff.Variable) (*autodiff.Variable, []*autodiff.Variable, error) {
	xp1, err := ops.AddConst(x, 1)
	if err != nil {
		return nil, nil, err
	}
	named(xp1, "x+1")
	y, err := ops.Log(xp1)
	if errors.Is(err, tensor.ErrDomain) {
		return nil, nil, errors.Wrap(ErrUndefined, "x + 1 must be greater than 0 for log(x + 1)")
	}
	if err != nil {
		return nil, nil, err
	}
	named(y, "log(x+1)")
	return y, []*autodiff.Variable{xp1, y}, nil
}

// Step is one line of the walkthrough: an intermediate value of the expression.
type Step struct {
	Label string
	Value float64
}

// Result is the evaluation of an expression at a scalar x.
type Result struct {
	Expression Expression
	X          float64
	Y          float64
	Grad       float64 // dy/dx

	// Steps lists intermediate values in evaluation order, ending with y.
	Steps []Step

	// Output is the terminal Variable, kept so the graph can be rendered.
	Output *autodiff.Variable
}

// Evaluate builds the named expression at x, runs the backward pass and
// collects the walkthrough. opts are passed on to Backward.
func Evaluate(name string, x float64, opts ...autodiff.BackwardOption) (*Result, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	xv := autodiff.Const(x, autodiff.WithName("x"))
	y, steps, err := e.Build(xv)
	if err != nil {
		return nil, err
	}
	if err := y.Backward(opts...); err != nil {
		return nil, errors.WithMessagef(err, "backward of %q", name)
	}

	res := &Result{Expression: e, X: x, Output: y}
	if res.Y, err = y.Data().Item(); err != nil {
		return nil, err
	}
	if res.Grad, err = xv.Grad().Item(); err != nil {
		return nil, err
	}
	for _, s := range steps {
		v, err := s.Data().Item()
		if err != nil {
			return nil, err
		}
		res.Steps = append(res.Steps, Step{Label: s.Name(), Value: v})
	}
	klog.V(1).Infof("expr: %s at x=%g: y=%g, dy/dx=%g", name, x, res.Y, res.Grad)
	return res, nil
}
