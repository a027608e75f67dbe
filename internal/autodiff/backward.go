package autodiff

import (
	"github.com/born-ml/gograd/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// BackwardOption configures Variable.Backward.
type BackwardOption func(*backwardConfig)

type backwardConfig struct {
	retainGrad bool
	observer   func(Function)
}

// RetainGrad controls whether intermediate Variables keep their gradients.
// The default is true. With false, the grads of every processed Function's
// outputs (including the Variable Backward was called on) are dropped once
// consumed, leaving gradients only on leaves.
func RetainGrad(retain bool) BackwardOption {
	return func(c *backwardConfig) {
		c.retainGrad = retain
	}
}

// WithObserver registers fn to be called with each Function right before its
// Backward runs, in processing order.
func WithObserver(fn func(Function)) BackwardOption {
	return func(c *backwardConfig) {
		c.observer = fn
	}
}

// Backward computes the gradient of v with respect to every Variable it was
// computed from, accumulating into their Grad.
//
// The algorithm:
//  1. Seed v's grad with ones if it is unset.
//  2. Keep a worklist of Functions, highest generation first, seeded with v's creator.
//  3. Pop a Function, collect its output grads, and call its Backward.
//  4. Add each returned gradient to the matching input's grad (sums over all paths),
//     and enqueue the input's creator unless it was already queued.
//
// Each Function runs at most once per call. Gradients accumulate across calls;
// use ClearGrad between passes over the same leaves. On error the graph's grads
// are left partially updated and should be discarded.
func (v *Variable) Backward(opts ...BackwardOption) error {
	cfg := backwardConfig{retainGrad: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if v.grad == nil {
		v.grad = tensor.OnesLike(v.data)
	}
	if v.creator == nil {
		return nil
	}

	queue := &functionQueue{}
	seen := make(map[*Base]struct{})
	enqueue := func(fn Function) {
		b := fn.base()
		if _, found := seen[b]; found {
			return
		}
		seen[b] = struct{}{}
		queue.push(fn)
	}
	enqueue(v.creator)

	for queue.Len() > 0 {
		fn := queue.pop()
		b := fn.base()
		if cfg.observer != nil {
			cfg.observer(fn)
		}

		gys, missing := b.outputGrads()
		if missing > 0 && klog.V(2).Enabled() {
			klog.Infof("autodiff: %s has %d of %d output(s) without gradient, using zeros", b.name, missing, len(gys))
		}
		gxs, err := callBackward(fn, gys)
		if err != nil {
			return errors.WithMessagef(err, "%s.Backward", b.name)
		}
		if len(gxs) != len(b.inputs) {
			return errors.Wrapf(ErrGradientArity, "%s returned %d gradient(s) for %d input(s)", b.name, len(gxs), len(b.inputs))
		}

		for i, x := range b.inputs {
			if err := x.accumulate(gxs[i]); err != nil {
				return errors.WithMessagef(err, "%s input #%d", b.name, i)
			}
			if x.creator != nil {
				enqueue(x.creator)
			}
		}

		if !cfg.retainGrad {
			for _, y := range b.Outputs() {
				if y != nil {
					y.grad = nil
				}
			}
		}
	}
	return nil
}

// accumulate adds gx into v's grad. A nil gx contributes nothing.
func (v *Variable) accumulate(gx *tensor.Array) error {
	if gx == nil {
		return nil
	}
	if !gx.Shape().Equal(v.data.Shape()) {
		return errors.Wrapf(ErrGradientShape, "grad %s vs data %s", gx.Shape(), v.data.Shape())
	}
	if v.grad == nil {
		v.grad = gx
		return nil
	}
	sum, err := v.grad.Add(gx)
	if err != nil {
		return err
	}
	v.grad = sum
	return nil
}

// callBackward runs fn.Backward, turning panics with an error value into errors.
func callBackward(fn Function, gys []*tensor.Array) (gxs []*tensor.Array, err error) {
	if panicErr := exceptions.TryCatch[error](func() {
		gxs, err = fn.Backward(gys...)
	}); panicErr != nil {
		return nil, panicErr
	}
	return gxs, err
}
