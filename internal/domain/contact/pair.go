package contact

// pair stores the time at position 0 and the id at position 1.
type pair[T, I any] [2]any

// MakePair builds a record backed by a positional pair.
func MakePair[T, I any](time T, id I) Record[T, I] {
	return pair[T, I]{time, id}
}

// The comma-ok form keeps nil interface tokens from panicking.
func (p pair[T, I]) time() T {
	t, _ := p[0].(T)
	return t
}

func (p pair[T, I]) id() I {
	i, _ := p[1].(I)
	return i
}
