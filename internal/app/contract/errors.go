package contract

import (
	"fmt"
	"strings"
)

// Error - бизнес-ошибка с прикладным кодом ответа
type Error struct {
	Code    int
	Message string
}

func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}

// Violation - нарушение ограничения одного поля запроса
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations - список нарушений, ключом служит имя поля
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return strings.Join(msgs, "\n")
}

// Fields возвращает сообщения, сгруппированные по имени поля
func (v Violations) Fields() map[string][]string {
	out := make(map[string][]string, len(v))
	for _, violation := range v {
		out[violation.Field] = append(out[violation.Field], violation.Message)
	}
	return out
}
