package contact

// dispatch is a record made only of behavior: it closes over the time and
// id and hands back one of them depending on the flag.
type dispatch[T, I any] func(pick bool) any

// MakeDispatch builds a record backed by a closure.
func MakeDispatch[T, I any](time T, id I) Record[T, I] {
	return dispatch[T, I](func(pick bool) any {
		if pick {
			return time
		}
		return id
	})
}

func (d dispatch[T, I]) time() T {
	t, _ := d(true).(T)
	return t
}

func (d dispatch[T, I]) id() I {
	i, _ := d(false).(I)
	return i
}
