package assert

import "github.com/oomph-ac/strider/oerror"

// IsTrue panics with an *oerror.Error built from message and args if ok is false. It is used for
// invariants that can only break through a programming error, never through player input.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
