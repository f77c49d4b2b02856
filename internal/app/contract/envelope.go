package contract

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Response - тело ответа, которое отдается транспорту
type Response interface {
	json.Marshaler
	Code() int
	Message() string
	Success() bool
}

// Empty - пустой payload, сериализуется как {}
type Empty struct{}

// Envelope - общий конверт ответа: данные, код и сообщение.
// Success вычисляется из кода и политики и никогда не хранится.
type Envelope[T any] struct {
	data    T
	code    int
	message string
	policy  Policy
	layout  Layout
}

func NewEnvelope[T any](policy Policy, data T, code int, message string) Envelope[T] {
	return Envelope[T]{data: data, code: code, message: message, policy: policy}
}

// Ok оборачивает данные с кодом и сообщением успеха
func Ok[T any](policy Policy, data T) Envelope[T] {
	return NewEnvelope(policy, data, policy.OkCode, policy.OkMessage)
}

// MessageOnly - успешный ответ только с сообщением
func MessageOnly(policy Policy, message string) Envelope[Empty] {
	return NewEnvelope(policy, Empty{}, policy.OkCode, message)
}

func Failure(policy Policy, code int, message string) Envelope[Empty] {
	return NewEnvelope(policy, Empty{}, code, message)
}

// FailureFrom строит конверт ошибки.
// Violations дают BadRequestCode и список полей, *Error сохраняет свой код,
// остальные ошибки скрываются за ErrorCode и ErrorMessage.
func FailureFrom(policy Policy, err error) Envelope[any] {
	var violations Violations
	if errors.As(err, &violations) {
		return NewEnvelope[any](policy, NewListResult([]Violation(violations)), policy.BadRequestCode, violations.Error())
	}
	var bizErr *Error
	if errors.As(err, &bizErr) {
		return NewEnvelope[any](policy, Empty{}, bizErr.Code, bizErr.Message)
	}
	return NewEnvelope[any](policy, Empty{}, policy.ErrorCode, policy.ErrorMessage)
}

// DecodeEnvelope декодирует конверт с заданной политикой и раскладкой
func DecodeEnvelope[T any](policy Policy, layout Layout, data []byte) (Envelope[T], error) {
	env := Envelope[T]{policy: policy, layout: layout}
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope[T]{}, err
	}
	return env, nil
}

func (e Envelope[T]) Data() T {
	return e.data
}

func (e Envelope[T]) Code() int {
	return e.code
}

func (e Envelope[T]) Message() string {
	return e.message
}

func (e Envelope[T]) Success() bool {
	return e.policy.IsOk(e.code)
}

func (e Envelope[T]) Layout() Layout {
	return e.layout
}

// Flatten поднимает поля data в корень конверта
func (e Envelope[T]) Flatten() Envelope[T] {
	e.layout = Flattened
	return e
}

func (e Envelope[T]) Nest() Envelope[T] {
	e.layout = Nested
	return e
}

// Unwrap возвращает данные успешного ответа, иначе *Error с
// PreconditionFailedCode и сообщением конверта
func (e Envelope[T]) Unwrap() (T, error) {
	if !e.Success() {
		var zero T
		return zero, NewError(e.policy.PreconditionFailedCode, e.message)
	}
	return e.data, nil
}

func (e Envelope[T]) String() string {
	return fmt.Sprintf("Envelope(code=%d, message=%q, success=%t, data=%+v)", e.code, e.message, e.Success(), e.data)
}

const (
	keySuccess = "success"
	keyCode    = "code"
	keyMessage = "message"
	keyData    = "data"
)

func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	members := make([]member, 0, 4)
	if e.policy.ExposeSuccess {
		m, err := field(keySuccess, e.Success())
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	for _, kv := range []struct {
		key string
		v   any
	}{{keyCode, e.code}, {keyMessage, e.message}} {
		m, err := field(kv.key, kv.v)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if e.layout == Flattened {
		all, err := inline(members, e.data)
		if err != nil {
			return nil, err
		}
		return writeObject(all), nil
	}

	m, err := field(keyData, e.data)
	if err != nil {
		return nil, err
	}
	return writeObject(append(members, m)), nil
}

// UnmarshalJSON сохраняет политику и раскладку получателя; входящее
// поле success игнорируется. Без ExposeSuccess success в плоской раскладке
// считается полем данных.
func (e *Envelope[T]) UnmarshalJSON(data []byte) error {
	reserved := []string{keyCode, keyMessage}
	if e.policy.ExposeSuccess {
		reserved = append(reserved, keySuccess)
	}
	if e.layout == Nested {
		reserved = append(reserved, keyData)
	}
	known, rest, err := split(data, reserved...)
	if err != nil {
		return err
	}

	decoded := Envelope[T]{policy: e.policy, layout: e.layout}
	if raw, ok := known[keyCode]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &decoded.code); err != nil {
			return fmt.Errorf("contract: decode code: %w", err)
		}
	}
	if raw, ok := known[keyMessage]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &decoded.message); err != nil {
			return fmt.Errorf("contract: decode message: %w", err)
		}
	}

	payload := rest
	if e.layout == Nested {
		payload = known[keyData]
	}
	if !isNull(payload) {
		if err := json.Unmarshal(payload, &decoded.data); err != nil {
			return fmt.Errorf("contract: decode data: %w", err)
		}
	}

	*e = decoded
	return nil
}
