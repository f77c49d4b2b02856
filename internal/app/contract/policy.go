package contract

// Policy - таблица кодов ответа. Передается явно туда, где строятся конверты;
// какой код считать успешным, решает вызывающая сторона.
type Policy struct {
	OkCode    int
	OkMessage string

	ErrorCode    int
	ErrorMessage string

	BadRequestCode    int
	BadRequestMessage string

	PreconditionFailedCode int
	UnauthorizedCode       int

	NotFoundCode    int
	NotFoundMessage string

	// ExposeSuccess добавляет вычисляемое поле success первым в JSON конверта
	ExposeSuccess bool
}

// DefaultPolicy возвращает значения по умолчанию; каждый вызов - новая копия
func DefaultPolicy() Policy {
	return Policy{
		OkCode:                 20000,
		OkMessage:              "ok",
		ErrorCode:              50000,
		ErrorMessage:           "too many visitors, please retry later",
		BadRequestCode:         40000,
		BadRequestMessage:      "bad request, please check the input",
		PreconditionFailedCode: 40010,
		UnauthorizedCode:       40100,
		NotFoundCode:           40404,
		NotFoundMessage:        "object not found",
		ExposeSuccess:          true,
	}
}

// IsOk - код совпадает с кодом успеха политики
func (p Policy) IsOk(code int) bool {
	return code == p.OkCode
}
