package debug

// Assert panics if the condition is false. Used to guard structural
// invariants that only a programming error can break.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
