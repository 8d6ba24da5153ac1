package subject

// Factory builds a subject S over a possibly absent T.
type Factory[S, T any] func(meta *Metadata, actual *T) S

// Derive computes a child value from the parent's value and wraps
// it in a subject whose path ends with label. An absent parent
// fails before compute runs.
func Derive[T, U, S any](
	parent Subject[T],
	label string,
	compute func(T) U,
	factory Factory[S, U],
) S {
	parent.meta.T().Helper()
	v := parent.NonAbsent()
	u := compute(v)
	parent.meta.recorder.RecordDerivation(parent.kind, label)
	return factory(parent.meta.Child(label), &u)
}

// DeriveE is Derive for computations that can fail. A compute
// error is raised with panic unchanged so callers can match it
// with errors.Is.
func DeriveE[T, U, S any](
	parent Subject[T],
	label string,
	compute func(T) (U, error),
	factory Factory[S, U],
) S {
	parent.meta.T().Helper()
	v := parent.NonAbsent()
	u, err := compute(v)
	if err != nil {
		panic(err)
	}
	parent.meta.recorder.RecordDerivation(parent.kind, label)
	return factory(parent.meta.Child(label), &u)
}

// Builder starts root subjects of one type.
type Builder[S, T any] struct {
	meta    *Metadata
	factory Factory[S, T]
}

// AssertAbout returns a Builder that creates root subjects with
// factory.
func AssertAbout[S, T any](t TestingT, factory Factory[S, T], opts ...Option) Builder[S, T] {
	RequireArgument(factory != nil, "factory")
	return Builder[S, T]{meta: NewMetadata(t, opts...), factory: factory}
}

// That wraps a present value.
func (b Builder[S, T]) That(actual T) S {
	return b.factory(b.meta, &actual)
}

// ThatPtr wraps a possibly absent value. The value is copied so
// later writes through actual are not observed.
func (b Builder[S, T]) ThatPtr(actual *T) S {
	if actual == nil {
		return b.factory(b.meta, nil)
	}
	v := *actual
	return b.factory(b.meta, &v)
}
