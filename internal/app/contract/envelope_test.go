package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestEnvelopeFieldOrder(t *testing.T) {
	policy := DefaultPolicy()

	raw, err := json.Marshal(Ok(policy, person{Name: "Tony", Age: 18}))
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"code":20000,"message":"ok","data":{"name":"Tony","age":18}}`, string(raw))

	policy.ExposeSuccess = false
	raw, err = json.Marshal(Ok(policy, person{Name: "Tony", Age: 18}))
	require.NoError(t, err)
	assert.Equal(t, `{"code":20000,"message":"ok","data":{"name":"Tony","age":18}}`, string(raw))
}

func TestEnvelopeSuccessFollowsPolicy(t *testing.T) {
	policy := DefaultPolicy()
	assert.True(t, NewEnvelope(policy, 1, 20000, "").Success())
	assert.False(t, NewEnvelope(policy, 1, 40000, "").Success())

	policy.OkCode = 0
	assert.True(t, NewEnvelope(policy, 1, 0, "").Success())
	assert.False(t, NewEnvelope(policy, 1, 20000, "").Success())
}

func TestEnvelopeFlatten(t *testing.T) {
	policy := DefaultPolicy()

	raw, err := json.Marshal(Ok(policy, person{Name: "Tony", Age: 18}).Flatten())
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"code":20000,"message":"ok","name":"Tony","age":18}`, string(raw))

	_, err = Ok(policy, map[string]int{"code": 1}).Flatten().MarshalJSON()
	assert.True(t, errors.Is(err, ErrFlattenConflict))

	_, err = Ok(policy, 5).Flatten().MarshalJSON()
	assert.True(t, errors.Is(err, ErrNotObject))
}

func TestMessageOnlyAndFailure(t *testing.T) {
	policy := DefaultPolicy()

	raw, err := json.Marshal(MessageOnly(policy, "saved"))
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"code":20000,"message":"saved","data":{}}`, string(raw))

	fail := Failure(policy, policy.NotFoundCode, policy.NotFoundMessage)
	assert.False(t, fail.Success())
	assert.Equal(t, 40404, fail.Code())
}

func TestEnvelopeUnwrap(t *testing.T) {
	policy := DefaultPolicy()

	v, err := Ok(policy, "payload").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "payload", v)

	_, err = NewEnvelope(policy, "payload", 40000, "nope").Unwrap()
	var bizErr *Error
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, policy.PreconditionFailedCode, bizErr.Code)
	assert.Equal(t, "nope", bizErr.Message)
}

func TestFailureFrom(t *testing.T) {
	policy := DefaultPolicy()

	violations := Violations{
		{Field: "page", Message: "page must be at least 1"},
		{Field: "size", Message: "size must be at least 1"},
	}
	env := FailureFrom(policy, violations)
	assert.Equal(t, policy.BadRequestCode, env.Code())
	assert.Equal(t, "page must be at least 1\nsize must be at least 1", env.Message())

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"code":40000,"message":"page must be at least 1\nsize must be at least 1",
		"data":{"rows":[{"field":"page","message":"page must be at least 1"},{"field":"size","message":"size must be at least 1"}]}}`,
		string(raw))

	env = FailureFrom(policy, fmt.Errorf("lookup: %w", NewError(40404, "interval not found")))
	assert.Equal(t, 40404, env.Code())
	assert.Equal(t, "interval not found", env.Message())

	env = FailureFrom(policy, errors.New("db is down"))
	assert.Equal(t, policy.ErrorCode, env.Code())
	assert.Equal(t, policy.ErrorMessage, env.Message())
}

func TestDecodeEnvelope(t *testing.T) {
	policy := DefaultPolicy()

	env, err := DecodeEnvelope[person](policy, Nested,
		[]byte(`{"success":false,"code":20000,"message":"ok","data":{"name":"Ann","age":3}}`))
	require.NoError(t, err)
	assert.True(t, env.Success())
	assert.Equal(t, person{Name: "Ann", Age: 3}, env.Data())

	flat, err := DecodeEnvelope[person](policy, Flattened,
		[]byte(`{"code":40000,"message":"bad","name":"Ann","age":3}`))
	require.NoError(t, err)
	assert.False(t, flat.Success())
	assert.Equal(t, "bad", flat.Message())
	assert.Equal(t, person{Name: "Ann", Age: 3}, flat.Data())
	assert.Equal(t, Flattened, flat.Layout())

	_, err = DecodeEnvelope[person](policy, Nested, []byte(`"oops"`))
	assert.Error(t, err)
}

type flag struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
}

func TestDecodeEnvelopeSuccessField(t *testing.T) {
	policy := DefaultPolicy()
	policy.ExposeSuccess = false

	raw, err := json.Marshal(Ok(policy, flag{Name: "a", Success: true}).Flatten())
	require.NoError(t, err)
	assert.Equal(t, `{"code":20000,"message":"ok","name":"a","success":true}`, string(raw))

	env, err := DecodeEnvelope[flag](policy, Flattened, raw)
	require.NoError(t, err)
	assert.Equal(t, flag{Name: "a", Success: true}, env.Data())

	env, err = DecodeEnvelope[flag](DefaultPolicy(), Flattened,
		[]byte(`{"success":true,"code":20000,"message":"ok","name":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, flag{Name: "a"}, env.Data())
}

func TestEnvelopeRoundTrip(t *testing.T) {
	policy := DefaultPolicy()
	page := NewPageResult([]person{{Name: "Ann"}}, 1, 10, 1)

	raw, err := json.Marshal(Ok(policy, page))
	require.NoError(t, err)

	env, err := DecodeEnvelope[PageResult[person]](policy, Nested, raw)
	require.NoError(t, err)
	assert.Equal(t, page, env.Data())

	again, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestViolationsFields(t *testing.T) {
	v := Violations{
		{Field: "page", Message: "a"},
		{Field: "page", Message: "b"},
		{Field: "size", Message: "c"},
	}
	assert.Equal(t, map[string][]string{"page": {"a", "b"}, "size": {"c"}}, v.Fields())
}
