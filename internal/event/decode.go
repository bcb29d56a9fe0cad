package event

import (
	"errors"
	"fmt"
)

// ErrPayloadType is returned when an event carries a payload of another type
var ErrPayloadType = errors.New("unexpected event payload type")

// DecodePayload returns the typed payload of an event. Publishers put either
// T or *T on the bus; a nil *T is rejected.
func DecodePayload[T any](input interface{}) (T, error) {
	var zero T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	return zero, fmt.Errorf("%w: want %T, got %T", ErrPayloadType, zero, input)
}
