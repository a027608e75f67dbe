package autodiff

import (
	"fmt"

	"github.com/born-ml/gograd/internal/tensor"
	"github.com/pkg/errors"
)

// Variable is a node of the computation graph holding a value, an optional
// accumulated gradient and a reference to the Function that created it.
//
// Variables built by the user (or by Functions under a no-grad Context) have no
// creator: they are the leaves of the graph. Backward only ever writes the grad
// of a Variable, never its data.
type Variable struct {
	data       *tensor.Array
	grad       *tensor.Array // nil until a backward pass reaches this node
	creator    Function
	generation int
	depth      int // topological depth, see Base.depth
	name       string
}

// VariableOption configures NewVariable.
type VariableOption func(*Variable)

// WithName sets the display name of a Variable.
func WithName(name string) VariableOption {
	return func(v *Variable) {
		v.name = name
	}
}

// NewVariable creates a leaf Variable holding data.
func NewVariable(data *tensor.Array, opts ...VariableOption) *Variable {
	if data == nil {
		panic("autodiff.NewVariable: nil data")
	}
	v := &Variable{data: data}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Const creates a leaf Variable holding the scalar c.
func Const(c float64, opts ...VariableOption) *Variable {
	return NewVariable(tensor.Scalar(c), opts...)
}

// AsVariable converts x into a Variable. It accepts *Variable (returned as is),
// *tensor.Array, float64, int and []float64 (as a vector).
func AsVariable(x any) (*Variable, error) {
	switch v := x.(type) {
	case *Variable:
		if v == nil {
			return nil, ErrNilInput
		}
		return v, nil
	case *tensor.Array:
		if v == nil {
			return nil, ErrNilInput
		}
		return NewVariable(v), nil
	case float64:
		return Const(v), nil
	case int:
		return Const(float64(v)), nil
	case []float64:
		if len(v) == 0 {
			return nil, errors.Wrap(ErrUnsupportedValue, "empty slice")
		}
		return NewVariable(tensor.Vector(v...)), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedValue, "%T", x)
	}
}

// Data returns the Variable's value.
func (v *Variable) Data() *tensor.Array {
	return v.data
}

// Grad returns the accumulated gradient, or nil if no backward pass reached v.
func (v *Variable) Grad() *tensor.Array {
	return v.grad
}

// SetGrad seeds the gradient. It is used to start a backward pass from
// something other than ones, or to inject an external gradient.
func (v *Variable) SetGrad(g *tensor.Array) error {
	if g != nil && !g.Shape().Equal(v.data.Shape()) {
		return errors.Wrapf(ErrGradientShape, "grad %s vs data %s", g.Shape(), v.data.Shape())
	}
	v.grad = g
	return nil
}

// ClearGrad drops the accumulated gradient. Gradients accumulate across
// backward passes, so call it before reusing a leaf.
func (v *Variable) ClearGrad() {
	v.grad = nil
}

// Name returns the display name, empty if unset.
func (v *Variable) Name() string {
	return v.name
}

// SetName sets the display name. It has no effect on computation.
func (v *Variable) SetName(name string) {
	v.name = name
}

// Shape returns the shape of the Variable's data.
func (v *Variable) Shape() tensor.Shape {
	return v.data.Shape()
}

// Size returns the number of elements of the Variable's data.
func (v *Variable) Size() int {
	return v.data.Size()
}

// Creator returns the Function that produced v, or nil for leaves.
func (v *Variable) Creator() Function {
	return v.creator
}

// IsLeaf reports whether v has no creator.
func (v *Variable) IsLeaf() bool {
	return v.creator == nil
}

// Generation returns the generation number: 0 for leaves, otherwise the
// generation of the creator, which is the maximum generation of its inputs.
func (v *Variable) Generation() int {
	return v.generation
}

// String implements fmt.Stringer.
func (v *Variable) String() string {
	if v.name != "" {
		return fmt.Sprintf("variable(%s=%s)", v.name, v.data)
	}
	return fmt.Sprintf("variable(%s)", v.data)
}
