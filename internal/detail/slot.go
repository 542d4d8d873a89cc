// Package detail holds the latest player and team detail lookups as observable slots.
package detail

// Kind tags the variant held by a Slot.
type Kind int

const (
	SlotEmpty Kind = iota
	SlotLoaded
	SlotError
)

func (k Kind) String() string {
	switch k {
	case SlotLoaded:
		return "loaded"
	case SlotError:
		return "error"
	default:
		return "empty"
	}
}

// Slot is the outcome of the latest request for one detail view.
// ID is the id that request asked for; it is zero while the slot is empty.
type Slot[T any] struct {
	Kind  Kind
	ID    int
	Value T
	Err   error
}

// Loaded reports whether the slot holds a value.
func (s Slot[T]) Loaded() bool { return s.Kind == SlotLoaded }

func loaded[T any](id int, v T) Slot[T] {
	return Slot[T]{Kind: SlotLoaded, ID: id, Value: v}
}

func failed[T any](id int, err error) Slot[T] {
	return Slot[T]{Kind: SlotError, ID: id, Err: err}
}
