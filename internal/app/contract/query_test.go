package contract

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameCriteria struct {
	Name string `json:"name"`
}

func TestNewPagingDefaults(t *testing.T) {
	tests := []struct {
		name      string
		opts      []PagingOption
		wantPage  int64
		wantSize  int64
		wantAscs  []string
		wantDescs []string
	}{
		{name: "no args", wantPage: 1, wantSize: 10, wantAscs: []string{}, wantDescs: []string{}},
		{name: "page", opts: []PagingOption{WithPage(3)}, wantPage: 3, wantSize: 10, wantAscs: []string{}, wantDescs: []string{}},
		{name: "page and size", opts: []PagingOption{WithPage(3), WithSize(20)}, wantPage: 3, wantSize: 20, wantAscs: []string{}, wantDescs: []string{}},
		{
			name:     "page size sort",
			opts:     []PagingOption{WithPage(3), WithSize(20), WithSort([]string{"title"}, nil)},
			wantPage: 3, wantSize: 20, wantAscs: []string{"title"}, wantDescs: []string{},
		},
		{
			name:     "page sort",
			opts:     []PagingOption{WithPage(2), WithSort(nil, []string{"tone", "id"})},
			wantPage: 2, wantSize: 10, wantAscs: []string{}, wantDescs: []string{"tone", "id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaging(tt.opts...)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.Size)
			require.NotNil(t, p.Sort.Ascs)
			require.NotNil(t, p.Sort.Descs)
			assert.Equal(t, tt.wantAscs, p.Sort.Ascs)
			assert.Equal(t, tt.wantDescs, p.Sort.Descs)
		})
	}
}

func TestNewQueryFull(t *testing.T) {
	q := NewQuery("ann", WithPage(2), WithSize(5), WithAscs("name"), WithDescs())

	assert.Equal(t, "ann", q.Criteria)
	assert.Equal(t, int64(2), q.Page)
	assert.Equal(t, int64(5), q.Size)
	assert.Equal(t, []string{"name"}, q.Sort.Ascs)
	assert.Equal(t, []string{}, q.Sort.Descs)
	assert.Equal(t, Nested, q.Layout())
	assert.Equal(t, Flattened, q.Flatten().Layout())
	assert.Equal(t, Nested, q.Flatten().Nest().Layout())
}

func TestNewSortSpecNormalizesNil(t *testing.T) {
	s := NewSortSpec(nil, nil)
	assert.True(t, s.IsEmpty())

	raw, err := json.Marshal(SortSpec{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ascs":[],"descs":[]}`, string(raw))

	var decoded SortSpec
	require.NoError(t, json.Unmarshal([]byte(`{"ascs":null}`), &decoded))
	assert.Equal(t, []string{}, decoded.Ascs)
	assert.Equal(t, []string{}, decoded.Descs)
}

func TestPagingOffset(t *testing.T) {
	assert.Equal(t, int64(0), NewPaging().Offset())
	assert.Equal(t, int64(40), NewPaging(WithPage(3), WithSize(20)).Offset())
	assert.Equal(t, int64(0), NewPaging(WithPage(0)).Offset())
	assert.Equal(t, int64(math.MaxInt64), NewPaging(WithPage(math.MaxInt64/10+2), WithSize(10)).Offset())
}

func TestQueryNestedJSON(t *testing.T) {
	q := NewQuery("ann", WithPage(2), WithSize(5), WithAscs("name"))

	raw, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, `{"query":"ann","page":2,"size":5,"ascs":["name"],"descs":[]}`, string(raw))

	decoded := EmptyQuery[string]()
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, q, decoded)

	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestQueryFlattenedJSON(t *testing.T) {
	q := NewQuery(nameCriteria{Name: "ann"}, WithPage(2), WithSize(5), WithAscs("name")).Flatten()

	raw, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"ann","page":2,"size":5,"ascs":["name"],"descs":[]}`, string(raw))

	decoded := EmptyQuery[nameCriteria]().Flatten()
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, q, decoded)

	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestQueryNestedAndFlattenedAgree(t *testing.T) {
	var nested Query[string]
	require.NoError(t, json.Unmarshal(
		[]byte(`{"query":"ann","page":2,"size":5,"ascs":["name"],"descs":[]}`), &nested))

	flat := EmptyQuery[nameCriteria]().Flatten()
	require.NoError(t, json.Unmarshal(
		[]byte(`{"name":"ann","page":2,"size":5,"ascs":["name"],"descs":[]}`), &flat))

	assert.Equal(t, nested.Paging, flat.Paging)
	assert.Equal(t, nested.Criteria, flat.Criteria.Name)

	// тот же тип критериев в обеих раскладках
	var nestedStruct Query[nameCriteria]
	require.NoError(t, json.Unmarshal(
		[]byte(`{"query":{"name":"ann"},"page":2,"size":5,"ascs":["name"],"descs":[]}`), &nestedStruct))
	assert.Equal(t, nestedStruct, flat.Nest())
}

func TestQueryUnmarshalDefaults(t *testing.T) {
	var q Query[*nameCriteria]
	require.NoError(t, json.Unmarshal([]byte(`{"ascs":null}`), &q))

	assert.Nil(t, q.Criteria)
	assert.Equal(t, int64(1), q.Page)
	assert.Equal(t, int64(10), q.Size)
	assert.Equal(t, []string{}, q.Sort.Ascs)
	assert.Equal(t, []string{}, q.Sort.Descs)
}

func TestQueryUnmarshalKeepsInvalidValues(t *testing.T) {
	var q Query[string]
	require.NoError(t, json.Unmarshal([]byte(`{"page":0,"size":-1}`), &q))

	assert.Equal(t, int64(0), q.Page)
	assert.Equal(t, int64(-1), q.Size)
}

func TestQueryFlattenedWithoutCriteria(t *testing.T) {
	q := EmptyQuery[*nameCriteria]().Flatten()
	require.NoError(t, json.Unmarshal([]byte(`{"page":4}`), &q))

	assert.Nil(t, q.Criteria)
	assert.Equal(t, int64(4), q.Page)
	assert.Equal(t, Flattened, q.Layout())

	raw, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, `{"page":4,"size":10,"ascs":[],"descs":[]}`, string(raw))
}

func TestQueryFlattenedErrors(t *testing.T) {
	type clashing struct {
		Page int `json:"page"`
	}

	_, err := NewQuery(clashing{Page: 1}).Flatten().MarshalJSON()
	assert.True(t, errors.Is(err, ErrFlattenConflict))

	_, err = NewQuery("ann").Flatten().MarshalJSON()
	assert.True(t, errors.Is(err, ErrNotObject))

	var q Query[string]
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &q))
	assert.Error(t, json.Unmarshal([]byte(`{"page":"two"}`), &q))
}

func TestQueryString(t *testing.T) {
	q := NewQuery(nameCriteria{Name: "ann"}, WithPage(2)).Flatten()
	assert.Contains(t, q.String(), "FlattenQuery(page=2, size=10")
	assert.Contains(t, NewQuery("x").String(), "Query(page=1")
}
