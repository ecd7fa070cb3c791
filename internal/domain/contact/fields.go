package contact

// fields stores the time and id as named fields. They are unexported, so the
// accessors below are the only way in from another package.
type fields[T, I any] struct {
	t T
	i I
}

// MakeFields builds a record backed by a named-field struct.
func MakeFields[T, I any](time T, id I) Record[T, I] {
	return fields[T, I]{t: time, i: id}
}

func (f fields[T, I]) time() T { return f.t }
func (f fields[T, I]) id() I   { return f.i }
