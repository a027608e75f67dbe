package tensor

import "github.com/pkg/errors"

// Reshape returns a copy of a with a new shape holding the same number of elements.
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(a.data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape %s into %s", a.shape, shape)
	}
	return newArray(a.Data(), shape), nil
}

// Transpose reverses the order of the axes. Scalars and vectors are returned as copies.
func (a *Array) Transpose() *Array {
	ndim := len(a.shape)
	if ndim < 2 {
		return newArray(a.Data(), a.shape)
	}

	outShape := make(Shape, ndim)
	for i := range outShape {
		outShape[i] = a.shape[ndim-1-i]
	}
	inStrides := a.shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()

	out := make([]float64, len(a.data))
	for flat := range out {
		// Decompose the output index, then reverse it to address the input.
		rem := flat
		src := 0
		for d := 0; d < ndim; d++ {
			idx := rem / outStrides[d]
			rem %= outStrides[d]
			src += idx * inStrides[ndim-1-d]
		}
		out[flat] = a.data[src]
	}
	return newArray(out, outShape)
}

// Sum adds all elements into a scalar.
func (a *Array) Sum() *Array {
	var sum float64
	for _, v := range a.data {
		sum += v
	}
	return Scalar(sum)
}

// SumTo reduces a to shape by summation. It is the inverse of the single-element
// promotion done by elementwise ops and of BroadcastTo: the target must either
// equal a's shape or hold a single element.
func (a *Array) SumTo(shape Shape) (*Array, error) {
	if a.shape.Equal(shape) {
		return a, nil
	}
	if shape.NumElements() != 1 {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot sum %s to %s", a.shape, shape)
	}
	return a.Sum().Reshape(shape)
}

// BroadcastTo expands a single-element array (or returns a itself when the
// shapes already match) to shape.
func (a *Array) BroadcastTo(shape Shape) (*Array, error) {
	if a.shape.Equal(shape) {
		return a, nil
	}
	if len(a.data) != 1 {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot broadcast %s to %s", a.shape, shape)
	}
	return Full(shape, a.data[0])
}

// Split divides a into n equal parts along axis 0.
func (a *Array) Split(n int) ([]*Array, error) {
	if len(a.shape) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "cannot split a scalar")
	}
	if n <= 0 || a.shape[0]%n != 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot split axis 0 of %s into %d parts", a.shape, n)
	}
	partShape := a.shape.Clone()
	partShape[0] /= n
	partSize := partShape.NumElements()

	parts := make([]*Array, n)
	for i := range parts {
		buf := make([]float64, partSize)
		copy(buf, a.data[i*partSize:(i+1)*partSize])
		parts[i] = newArray(buf, partShape)
	}
	return parts, nil
}

// Concat joins arrays along axis 0. All parts must agree on the remaining axes.
func Concat(parts ...*Array) (*Array, error) {
	if len(parts) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "nothing to concatenate")
	}
	first := parts[0].shape
	if len(first) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "cannot concatenate scalars")
	}

	outShape := first.Clone()
	outShape[0] = 0
	for _, p := range parts {
		if len(p.shape) != len(first) || !p.shape[1:].Equal(first[1:]) {
			return nil, errors.Wrapf(ErrShapeMismatch, "cannot concatenate %s with %s", first, p.shape)
		}
		outShape[0] += p.shape[0]
	}

	out := make([]float64, 0, outShape.NumElements())
	for _, p := range parts {
		out = append(out, p.data...)
	}
	return newArray(out, outShape), nil
}
