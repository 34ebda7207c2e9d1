package model

import "encoding/json"

// Optional is a JSON field that remembers whether it appeared in the
// request at all. Set reports presence, Valid reports a non-null value.
// encoding/json invokes UnmarshalJSON for explicit nulls but not for
// omitted keys, which is what makes the distinction observable.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		o.Valid = false

		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}

	o.Valid = true

	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

// NewOptional returns a present, non-null Optional.
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: value}
}

// NullOptional returns a present but explicitly null Optional.
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func applyChange[T any](changes map[string]any, column string, value Optional[T]) {
	if !value.Set {
		return
	}

	if !value.Valid {
		changes[column] = nil

		return
	}

	changes[column] = value.Value
}
