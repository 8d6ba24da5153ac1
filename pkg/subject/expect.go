package subject

// failureRecorder is a TestingT and FailureStrategy that keeps
// the first failure instead of failing the test.
type failureRecorder struct {
	err *AssertionError
}

func (r *failureRecorder) Helper() {}

// Errorf is unused: failures reach Fail first.
func (r *failureRecorder) Errorf(string, ...any) {}

func (r *failureRecorder) FailNow() {}

func (r *failureRecorder) Fail(err *AssertionError) {
	if r.err == nil {
		r.err = err
	}
}

// ExpectFailure runs fn with a TestingT that captures the first
// assertion failure and returns it. It returns nil when fn does
// not fail. Panics other than the captured failure propagate.
func ExpectFailure(fn func(t TestingT)) (failure *AssertionError) {
	rec := &failureRecorder{}
	defer func() {
		r := recover()
		if r == nil {
			failure = rec.err
			return
		}
		if err, ok := r.(*AssertionError); ok && err == rec.err {
			failure = err
			return
		}
		panic(r)
	}()
	fn(rec)
	return rec.err
}
