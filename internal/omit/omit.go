package omit

import (
	"bytes"
	"encoding/json"
)

func New[T any](value T) Omit[T] {
	return Omit[T]{
		Value: value,
		OK:    true,
	}
}

func NewZero[T any]() Omit[T] {
	return Omit[T]{
		OK: false,
	}
}

// Omit is a tri-state optional: unset, or set to any value of T including the
// zero value. JSON null and absent fields both decode to the unset state.
type Omit[T any] struct {
	Value T    `json:"value"`
	OK    bool `json:"ok"`
}

func (o Omit[T]) IsZero() bool {
	return !o.OK
}

func (o Omit[T]) MarshalJSON() ([]byte, error) {
	if !o.OK {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Omit[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*o = Omit[T]{}
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	o.Value = value
	o.OK = true

	return nil
}
