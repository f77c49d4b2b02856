package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Layout определяет, как вложенный payload попадает в JSON родителя
type Layout int

const (
	// Nested - payload лежит под собственным ключом
	Nested Layout = iota
	// Flattened - поля payload подняты на уровень родителя
	Flattened
)

func (l Layout) String() string {
	if l == Flattened {
		return "flattened"
	}
	return "nested"
}

var (
	ErrNotObject       = errors.New("contract: flattened payload must be a JSON object")
	ErrFlattenConflict = errors.New("contract: flattened payload key collides with envelope key")
	ErrMalformed       = errors.New("contract: malformed JSON")
)

// member - одна пара ключ/значение JSON объекта, порядок сохраняется
type member struct {
	key string
	raw json.RawMessage
}

func field(key string, v any) (member, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return member{}, fmt.Errorf("contract: encode %q: %w", key, err)
	}
	return member{key: key, raw: raw}, nil
}

// objectMembers разбирает JSON объект в порядке следования ключей.
// null дает пустой список.
func objectMembers(data []byte) ([]member, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		return nil, nil
	}
	if !res.IsObject() {
		return nil, ErrNotObject
	}

	var members []member
	res.ForEach(func(key, value gjson.Result) bool {
		members = append(members, member{key: key.String(), raw: json.RawMessage(value.Raw)})
		return true
	})
	return members, nil
}

// inline добавляет поля payload к siblings; совпадение ключей - ошибка
func inline(siblings []member, payload any) ([]member, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("contract: encode payload: %w", err)
	}
	members, err := objectMembers(raw)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(siblings))
	for _, m := range siblings {
		taken[m.key] = struct{}{}
	}
	for _, m := range members {
		if _, ok := taken[m.key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrFlattenConflict, m.key)
		}
	}
	return append(siblings, members...), nil
}

// split отделяет зарезервированные ключи от остальных полей.
// Остаток возвращается как JSON объект или nil, если полей не осталось.
func split(data []byte, reserved ...string) (map[string]json.RawMessage, []byte, error) {
	members, err := objectMembers(data)
	if err != nil {
		return nil, nil, err
	}

	isReserved := make(map[string]struct{}, len(reserved))
	for _, k := range reserved {
		isReserved[k] = struct{}{}
	}

	known := make(map[string]json.RawMessage, len(reserved))
	var rest []member
	for _, m := range members {
		if _, ok := isReserved[m.key]; ok {
			known[m.key] = m.raw
			continue
		}
		rest = append(rest, m)
	}
	if len(rest) == 0 {
		return known, nil, nil
	}
	return known, writeObject(rest), nil
}

func writeObject(members []member) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(m.key)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.raw)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func isObject(raw []byte) bool {
	return gjson.ValidBytes(raw) && gjson.ParseBytes(raw).IsObject()
}

// isNull - отсутствующее или null значение
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || gjson.ParseBytes(raw).Type == gjson.Null
}
