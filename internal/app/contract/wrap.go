package contract

import "reflect"

// Wrap приводит произвольное возвращаемое обработчиком значение к Response:
//   - nil -> Ok(Empty)
//   - Response -> без изменений
//   - срез или массив -> Ok(ListResult)
//   - bool, строка, число -> Ok(SingleValue)
//   - остальное -> Ok(body)
func Wrap(policy Policy, body any) Response {
	if body == nil {
		return Ok(policy, Empty{})
	}
	if resp, ok := body.(Response); ok {
		return resp
	}

	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return Ok[any](policy, NewListResult([]any{}))
		}
		rows := make([]any, v.Len())
		for i := range rows {
			rows[i] = v.Index(i).Interface()
		}
		return Ok[any](policy, NewListResult(rows))
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Ok[any](policy, ValueOf(body))
	case reflect.Pointer:
		if v.IsNil() {
			return Ok(policy, Empty{})
		}
	}
	return Ok(policy, body)
}
