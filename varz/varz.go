/*
varz provides helpers to create expvar variables with package-qualified names.

varz, ironically, doesn't export /varz, and in a command-line tool nobody is
coming to scrape it anyway.  The counters are still handy in tests, which can
read them back through expvar.Get.
*/
package varz

import (
	"expvar"
	"runtime"
	"strings"
)

// NewInt registers a counter named after the calling package, so two
// packages can each have a "cacheHits" without colliding.
func NewInt(name string) *expvar.Int {
	return expvar.NewInt(callerPackage() + "." + name)
}

// callerPackage names the package two frames up.  The runtime reports a
// fully qualified function name; chopping the last dot-segment leaves the
// package path.  A counter declared in a var block reports from the
// generated init, which the chop removes the same way.
func callerPackage() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "varz.unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "varz.unknown"
	}
	name := fn.Name()
	if dot := strings.LastIndex(name, "."); dot != -1 {
		name = name[:dot]
	}
	return name
}
