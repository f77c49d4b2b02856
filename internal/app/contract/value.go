package contract

import (
	"encoding/json"
	"reflect"
)

const keyValue = "value"

// SingleValue - конверт ровно для одного значения.
// В плоской раскладке (по умолчанию) поля значения-объекта лежат в корне,
// скалярные значения пишутся как {"value": v}.
type SingleValue[T any] struct {
	value  T
	nested bool
}

func ValueOf[T any](v T) SingleValue[T] {
	return SingleValue[T]{value: v}
}

// OkValue оборачивает одиночное значение в успешный конверт
func OkValue[T any](policy Policy, v T) Envelope[SingleValue[T]] {
	return Ok(policy, ValueOf(v))
}

func (s SingleValue[T]) Value() T {
	return s.value
}

func (s SingleValue[T]) Layout() Layout {
	if s.nested {
		return Nested
	}
	return Flattened
}

func (s SingleValue[T]) Nest() SingleValue[T] {
	s.nested = true
	return s
}

func (s SingleValue[T]) Flatten() SingleValue[T] {
	s.nested = false
	return s
}

func (s SingleValue[T]) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(s.value)
	if err != nil {
		return nil, err
	}
	if !s.nested && isObject(raw) {
		return raw, nil
	}
	return writeObject([]member{{key: keyValue, raw: raw}}), nil
}

func (s *SingleValue[T]) UnmarshalJSON(data []byte) error {
	decoded := SingleValue[T]{nested: s.nested}
	if !s.nested && objectShaped[T]() && !nullValue(data) {
		if err := json.Unmarshal(data, &decoded.value); err != nil {
			return err
		}
		*s = decoded
		return nil
	}

	known, _, err := split(data, keyValue)
	if err != nil {
		return err
	}
	raw, ok := known[keyValue]
	if !ok && !s.nested {
		// значение неизвестного статически типа, записанное плоско
		raw = data
	}
	if !isNull(raw) {
		if err := json.Unmarshal(raw, &decoded.value); err != nil {
			return err
		}
	}
	*s = decoded
	return nil
}

// nullValue - объект ровно из одного члена "value": null, так пишется
// нулевой указатель
func nullValue(data []byte) bool {
	known, rest, err := split(data, keyValue)
	if err != nil || rest != nil {
		return false
	}
	raw, ok := known[keyValue]
	return ok && isNull(raw)
}

// objectShaped - T кодируется JSON объектом. time.Time и подобные типы со
// своим MarshalJSON сюда не попадают.
func objectShaped[T any]() bool {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map:
		return true
	case reflect.Struct:
		raw, err := json.Marshal(reflect.New(t).Elem().Interface())
		return err == nil && isObject(raw)
	default:
		return false
	}
}
