package ops

import (
	"math"
	"testing"

	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	epsilonGrad = 1e-6
	tolerance   = 1e-5
)

// numericalGradient computes the gradient of sum(fn(x)) by central differences.
func numericalGradient(t *testing.T, fn func(*autodiff.Variable) (*autodiff.Variable, error), x *tensor.Array) *tensor.Array {
	t.Helper()
	data := x.Data()
	grad := make([]float64, len(data))
	eval := func(values []float64) float64 {
		in := must.M1(tensor.FromSlice(values, x.Shape()))
		out, err := autodiff.NoGrad().Apply(&SumOp{}, must.M1(fn(autodiff.NewVariable(in))))
		require.NoError(t, err)
		return must.M1(out.Data().Item())
	}
	for i := range data {
		original := data[i]
		data[i] = original + epsilonGrad
		fPlus := eval(data)
		data[i] = original - epsilonGrad
		fMinus := eval(data)
		data[i] = original
		grad[i] = (fPlus - fMinus) / (2 * epsilonGrad)
	}
	return must.M1(tensor.FromSlice(grad, x.Shape()))
}

// checkGradient compares the autodiff gradient of sum(fn(x)) with finite differences.
func checkGradient(t *testing.T, fn func(*autodiff.Variable) (*autodiff.Variable, error), x *tensor.Array) {
	t.Helper()
	v := autodiff.NewVariable(x)
	y := must.M1(Sum(must.M1(fn(v))))
	require.NoError(t, y.Backward())

	want := numericalGradient(t, fn, x)
	require.NotNil(t, v.Grad())
	assert.True(t, tensor.AllClose(want, v.Grad(), tolerance), "autodiff %s vs numerical %s", v.Grad(), want)
}

var testInput = tensor.Vector(0.3, 1.2, 2.5)

func TestUnaryGradients(t *testing.T) {
	cases := map[string]func(*autodiff.Variable) (*autodiff.Variable, error){
		"sin":    Sin,
		"cos":    Cos,
		"tanh":   Tanh,
		"exp":    Exp,
		"log":    Log,
		"neg":    Neg,
		"square": Square,
		"pow3":   func(x *autodiff.Variable) (*autodiff.Variable, error) { return Pow(x, 3) },
		"pow-half": func(x *autodiff.Variable) (*autodiff.Variable, error) {
			return Pow(x, -0.5)
		},
		"transpose": Transpose,
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			checkGradient(t, fn, testInput)
		})
	}
}

func TestBinaryGradients(t *testing.T) {
	other := tensor.Vector(0.7, -1.1, 1.9)
	cases := map[string]func(a, b *autodiff.Variable) (*autodiff.Variable, error){
		"add": Add,
		"sub": Sub,
		"mul": Mul,
		"div": Div,
	}
	for name, fn := range cases {
		t.Run(name+"/lhs", func(t *testing.T) {
			checkGradient(t, func(x *autodiff.Variable) (*autodiff.Variable, error) {
				return fn(x, autodiff.NewVariable(other))
			}, testInput)
		})
		t.Run(name+"/rhs", func(t *testing.T) {
			checkGradient(t, func(x *autodiff.Variable) (*autodiff.Variable, error) {
				return fn(autodiff.NewVariable(other), x)
			}, testInput)
		})
		t.Run(name+"/scalar", func(t *testing.T) {
			// Scalar operand promoted to a vector: its gradient sums over the vector.
			checkGradient(t, func(x *autodiff.Variable) (*autodiff.Variable, error) {
				return fn(autodiff.NewVariable(other), x)
			}, tensor.Scalar(0.8))
		})
	}
}

func TestShapeGradients(t *testing.T) {
	m := must.M1(tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}))

	checkGradient(t, func(x *autodiff.Variable) (*autodiff.Variable, error) {
		r, err := Reshape(x, tensor.Shape{3, 2})
		if err != nil {
			return nil, err
		}
		// Weight by position so the gradient is not uniform.
		w := autodiff.NewVariable(must.M1(tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})))
		return Mul(r, w)
	}, m)

	checkGradient(t, func(x *autodiff.Variable) (*autodiff.Variable, error) {
		s, err := SumTo(x, tensor.Shape{})
		if err != nil {
			return nil, err
		}
		return Square(s)
	}, m)

	checkGradient(t, func(x *autodiff.Variable) (*autodiff.Variable, error) {
		b, err := BroadcastTo(x, tensor.Shape{2, 2})
		if err != nil {
			return nil, err
		}
		return Exp(b)
	}, tensor.Scalar(0.5))
}

func TestSplitGradient(t *testing.T) {
	checkGradient(t, func(x *autodiff.Variable) (*autodiff.Variable, error) {
		parts, err := Split(x, 2)
		if err != nil {
			return nil, err
		}
		a, err := Square(parts[0])
		if err != nil {
			return nil, err
		}
		b, err := Sin(parts[1])
		if err != nil {
			return nil, err
		}
		return Mul(a, b)
	}, tensor.Vector(0.5, 1.5, -0.25, 2))
}

func TestPow(t *testing.T) {
	// y = x^c → gy * c * x^(c-1)
	x := autodiff.Const(2)
	y := must.M1(Pow(x, 3))
	assert.Equal(t, 8.0, must.M1(y.Data().Item()))
	require.NoError(t, y.Backward())
	assert.Equal(t, 12.0, must.M1(x.Grad().Item()))
}

func TestSin(t *testing.T) {
	// y = sin(x) → gy * cos(x)
	x := autodiff.Const(math.Pi / 3)
	y := must.M1(Sin(x))
	require.NoError(t, y.Backward())
	assert.InDelta(t, 0.5, must.M1(x.Grad().Item()), 1e-12)
}

func TestConstHelpers(t *testing.T) {
	x := autodiff.Const(4)

	y := must.M1(AddConst(x, 1))
	assert.Equal(t, 5.0, must.M1(y.Data().Item()))

	y = must.M1(SubConst(x, 1))
	assert.Equal(t, 3.0, must.M1(y.Data().Item()))

	y = must.M1(RSubConst(1, x))
	assert.Equal(t, -3.0, must.M1(y.Data().Item()))
	require.NoError(t, y.Backward())
	assert.Equal(t, -1.0, must.M1(x.Grad().Item()))

	y = must.M1(MulConst(2, x))
	assert.Equal(t, 8.0, must.M1(y.Data().Item()))
}

func TestIdentityShortcuts(t *testing.T) {
	x := autodiff.NewVariable(tensor.Vector(1, 2))
	assert.Same(t, x, must.M1(Reshape(x, tensor.Shape{2})))
	assert.Same(t, x, must.M1(SumTo(x, tensor.Shape{2})))
	assert.Same(t, x, must.M1(BroadcastTo(x, tensor.Shape{2})))
}

func TestOpNames(t *testing.T) {
	x := autodiff.Const(1)
	for want, fn := range map[string]func(*autodiff.Variable) (*autodiff.Variable, error){
		"Sin":    Sin,
		"Cos":    Cos,
		"Exp":    Exp,
		"Square": Square,
		"Neg":    Neg,
	} {
		y := must.M1(fn(x))
		assert.Equal(t, want, y.Creator().Name())
	}
}

func TestDomainErrors(t *testing.T) {
	_, err := Log(autodiff.NewVariable(tensor.Vector(1, 0)))
	assert.True(t, errors.Is(err, tensor.ErrDomain))

	_, err = Split(autodiff.NewVariable(tensor.Vector(1, 2, 3)), 2)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	_, err = Reshape(autodiff.NewVariable(tensor.Vector(1, 2, 3)), tensor.Shape{2})
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}
