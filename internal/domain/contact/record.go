package contact

// Record is a logged contact seen from outside the barrier.
// The unexported methods keep other packages from implementing or unpacking it.
type Record[T, I any] interface {
	time() T
	id() I
}

// Constructor builds a Record from a time and an id.
type Constructor[T, I any] func(time T, id I) Record[T, I]

// MakeRecord builds a record with the default representation.
func MakeRecord[T, I any](time T, id I) Record[T, I] {
	return MakePair(time, id)
}

// GetTime returns the time a record was built with.
func GetTime[T, I any](r Record[T, I]) T {
	return r.time()
}

// GetID returns the id a record was built with.
func GetID[T, I any](r Record[T, I]) I {
	return r.id()
}

// Representation names a Constructor.
type Representation[T, I any] struct {
	Name string
	Make Constructor[T, I]
}

// Representations lists every built-in representation, default first.
func Representations[T, I any]() []Representation[T, I] {
	return []Representation[T, I]{
		{Name: "pair", Make: MakePair[T, I]},
		{Name: "dispatch", Make: MakeDispatch[T, I]},
		{Name: "fields", Make: MakeFields[T, I]},
	}
}
