package morton

// Assertions enables precondition panics. Tests switch it on; production
// builds keep the permissive contract where a violated precondition yields
// a well-typed but meaningless bit pattern instead of a failure.
var Assertions = false

func assert(cond bool, msg string) {
	if Assertions && !cond {
		panic(msg)
	}
}
