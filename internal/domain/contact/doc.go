// Package contact models a logged contact: a time paired with an identifier.
//
// The package is an abstraction barrier. Callers build records with a
// Constructor and read them back with GetTime and GetID, and nothing else.
// Three representations sit behind the barrier:
//
//   - MakePair: a two-slot positional pair, selectors index slot 0 and 1.
//   - MakeDispatch: a function value with no fields at all; the selectors
//     call it with true for the time and false for the id.
//   - MakeFields: a struct with unexported named fields.
//
// Any of them satisfies the round-trip laws
//
//	GetTime(mk(t, id)) == t
//	GetID(mk(t, id)) == id
//
// so code written against a Constructor keeps working when the
// representation is swapped:
//
//	func lastCall(mk contact.Constructor[shared.LogTime, shared.CallSign]) shared.CallSign {
//	    return contact.GetID(mk("18:35", "SK7MW"))
//	}
//
//	lastCall(contact.MakePair[shared.LogTime, shared.CallSign])
//	lastCall(contact.MakeDispatch[shared.LogTime, shared.CallSign])
//
// The time and id are opaque tokens. The barrier never inspects them.
package contact
