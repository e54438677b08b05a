/*
package dep provides utilities for dependency injection.

okay, just the one.
*/
package dep

import (
	"fmt"
	"reflect"
	"runtime"
)

// Required passes t through, or panics if t is missing.  A typed nil
// pointer counts as missing; it would only blow up later and further from
// the cause.
func Required[T any](t T) T {
	v := reflect.ValueOf(t)
	present := v.IsValid()
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		present = present && !v.IsNil()
	}
	if present {
		return t
	}

	// Get caller information
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		panic(fmt.Sprintf("missing required dependency of type %T", t))
	}
	fn := runtime.FuncForPC(pc)
	if fn != nil {
		panic(fmt.Sprintf("missing required dependency in %s (%s:%d)", fn.Name(), file, line))
	}
	panic(fmt.Sprintf("missing required dependency (%s:%d)", file, line))
}
