// Package tensor provides the float64 n-dimensional arrays carried by autodiff Variables.
//
// Arrays are immutable: every operation allocates a new result, so an Array can be
// shared freely between Variables, gradients and Functions without defensive copies.
//
// Elementwise binary operations accept operands of equal shape, or one operand holding
// a single element which is promoted to the other's shape:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
//	y, _ := x.Mul(tensor.Scalar(2)) // [2, 4, 6]
package tensor

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Array is an immutable row-major float64 array.
type Array struct {
	data  []float64
	shape Shape
}

// newArray wraps data without copying. The caller must not retain data.
func newArray(data []float64, shape Shape) *Array {
	return &Array{data: data, shape: shape.Clone()}
}

// Scalar creates a 0-dimensional array holding v.
func Scalar(v float64) *Array {
	return &Array{data: []float64{v}, shape: Shape{}}
}

// FromSlice creates an array with the given shape, copying data.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d values cannot fill shape %s", len(data), shape)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return newArray(buf, shape), nil
}

// Vector creates a 1-dimensional array from values.
func Vector(values ...float64) *Array {
	buf := make([]float64, len(values))
	copy(buf, values)
	return newArray(buf, Shape{len(values)})
}

// Full creates an array of the given shape filled with v.
func Full(shape Shape, v float64) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	buf := make([]float64, shape.NumElements())
	if v != 0 {
		for i := range buf {
			buf[i] = v
		}
	}
	return newArray(buf, shape), nil
}

// Zeros creates a zero-filled array. Panics on an invalid shape.
func Zeros(shape Shape) *Array {
	a, err := Full(shape, 0)
	if err != nil {
		panic(err)
	}
	return a
}

// Ones creates a one-filled array. Panics on an invalid shape.
func Ones(shape Shape) *Array {
	a, err := Full(shape, 1)
	if err != nil {
		panic(err)
	}
	return a
}

// ZerosLike returns zeros with the shape of a.
func ZerosLike(a *Array) *Array {
	return Zeros(a.shape)
}

// OnesLike returns ones with the shape of a.
func OnesLike(a *Array) *Array {
	return Ones(a.shape)
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) (*Array, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "linspace with %d points", n)
	}
	buf := make([]float64, n)
	if n == 1 {
		buf[0] = start
		return newArray(buf, Shape{1}), nil
	}
	step := (stop - start) / float64(n-1)
	for i := range buf {
		buf[i] = start + float64(i)*step
	}
	buf[n-1] = stop
	return newArray(buf, Shape{n}), nil
}

// Shape returns the array's shape. The returned slice must not be modified.
func (a *Array) Shape() Shape {
	return a.shape
}

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int {
	return len(a.shape)
}

// Size returns the number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// Data returns a copy of the elements in row-major order.
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// At returns the element at flat (row-major) index i.
func (a *Array) At(i int) float64 {
	return a.data[i]
}

// Item returns the single value of a one-element array.
func (a *Array) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, errors.Wrapf(ErrNotScalar, "shape %s", a.shape)
	}
	return a.data[0], nil
}

// AllClose reports whether a and b have the same shape and all elements
// differ by at most tol.
func AllClose(a, b *Array, tol float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i, v := range a.data {
		if math.Abs(v-b.data[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the array like NumPy: scalars print bare, arrays as nested brackets.
func (a *Array) String() string {
	if len(a.shape) == 0 {
		return formatFloat(a.data[0])
	}
	var sb strings.Builder
	a.writeNested(&sb, 0, 0)
	return sb.String()
}

func (a *Array) writeNested(sb *strings.Builder, dim, offset int) {
	strides := a.shape.ComputeStrides()
	sb.WriteByte('[')
	for i := 0; i < a.shape[dim]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		pos := offset + i*strides[dim]
		if dim == len(a.shape)-1 {
			sb.WriteString(formatFloat(a.data[pos]))
		} else {
			a.writeNested(sb, dim+1, pos)
		}
	}
	sb.WriteByte(']')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
