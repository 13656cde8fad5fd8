package twig

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
)

// Disposable is a resource that must be released explicitly.
type Disposable interface {
	Dispose() error
}

// DisposeFunc adapts a plain function to Disposable.
type DisposeFunc func() error

// Dispose calls f.
func (f DisposeFunc) Dispose() error { return f() }

// imageDisposer releases an *ebiten.Image.
type imageDisposer struct {
	img *ebiten.Image
}

func (d imageDisposer) Dispose() error {
	d.img.Deallocate()
	return nil
}

// ImageDisposer wraps img so it can be handed to SafeDispose or DisposeAll.
// A nil img yields a nil Disposable.
func ImageDisposer(img *ebiten.Image) Disposable {
	if img == nil {
		return nil
	}
	return imageDisposer{img: img}
}

// DisposeError reports a failed release. Cause is either the error returned by
// Dispose or the value recovered from a panic.
type DisposeError struct {
	Resource string
	Cause    any
}

func (e *DisposeError) Error() string {
	if err, ok := e.Cause.(error); ok {
		return fmt.Sprintf("twig: disposing %s: %v", e.Resource, err)
	}
	return fmt.Sprintf("twig: disposing %s: panic: %v", e.Resource, e.Cause)
}

// Unwrap returns Cause when it is an error.
func (e *DisposeError) Unwrap() error {
	err, _ := e.Cause.(error)
	return err
}

// SafeDispose releases d. A nil d (including a typed nil pointer) is a no-op.
// Failures, whether returned or panicked, are logged to l and returned as a
// *DisposeError; they never propagate as panics.
func SafeDispose(d Disposable, l Logger) (err error) {
	if isNil(d) {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = disposeFailure(d, r, l)
		}
	}()
	if e := d.Dispose(); e != nil {
		return disposeFailure(d, e, l)
	}
	return nil
}

// SafeDisposeRenderer releases r unless it is nil or still drawing.
func SafeDisposeRenderer(r ShapeRenderer, l Logger) error {
	if isNil(r) || r.IsDrawing() {
		return nil
	}
	return SafeDispose(r, l)
}

// DisposeAll releases every resource in ds. A failure on one entry does not
// prevent releasing the rest. The result joins every failure.
func DisposeAll(l Logger, ds ...Disposable) error {
	var errs []error
	for _, d := range ds {
		if err := SafeDispose(d, l); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func disposeFailure(d Disposable, cause any, l Logger) error {
	e := &DisposeError{Resource: typeName(d), Cause: cause}
	logf(l, "got a %s when disposing an instance of %s, ignoring it", typeName(cause), e.Resource)
	return e
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
