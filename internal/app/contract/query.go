package contract

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	DefaultPage int64 = 1
	DefaultSize int64 = 10
)

// SortSpec - упорядоченные списки полей сортировки.
// Порядок важен: первое поле имеет наибольший приоритет.
type SortSpec struct {
	Ascs  []string `json:"ascs"`
	Descs []string `json:"descs"`
}

// NewSortSpec нормализует nil в пустые списки
func NewSortSpec(ascs, descs []string) SortSpec {
	return SortSpec{Ascs: emptyIfNil(ascs), Descs: emptyIfNil(descs)}
}

// IsEmpty - сортировка не задана
func (s SortSpec) IsEmpty() bool {
	return len(s.Ascs) == 0 && len(s.Descs) == 0
}

func (s SortSpec) MarshalJSON() ([]byte, error) {
	type plain SortSpec
	return json.Marshal(plain(NewSortSpec(s.Ascs, s.Descs)))
}

func (s *SortSpec) UnmarshalJSON(data []byte) error {
	type plain SortSpec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = NewSortSpec(p.Ascs, p.Descs)
	return nil
}

// Paging - не зависящая от критериев часть запроса страницы
type Paging struct {
	Page int64    `json:"page" binding:"min=1"`
	Size int64    `json:"size" binding:"min=1"`
	Sort SortSpec `json:"sort"`
}

type PagingOption func(*Paging)

func WithPage(page int64) PagingOption {
	return func(p *Paging) { p.Page = page }
}

func WithSize(size int64) PagingOption {
	return func(p *Paging) { p.Size = size }
}

func WithSort(ascs, descs []string) PagingOption {
	return func(p *Paging) { p.Sort = NewSortSpec(ascs, descs) }
}

func WithAscs(fields ...string) PagingOption {
	return func(p *Paging) { p.Sort.Ascs = emptyIfNil(fields) }
}

func WithDescs(fields ...string) PagingOption {
	return func(p *Paging) { p.Sort.Descs = emptyIfNil(fields) }
}

// NewPaging применяет опции поверх значений по умолчанию (page=1, size=10, без сортировки)
func NewPaging(opts ...PagingOption) Paging {
	p := Paging{Page: DefaultPage, Size: DefaultSize, Sort: NewSortSpec(nil, nil)}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Offset возвращает число строк, пропускаемых до текущей страницы.
// При переполнении int64 результат ограничен math.MaxInt64.
func (p Paging) Offset() int64 {
	if p.Page < 1 || p.Size < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt64/p.Size {
		return math.MaxInt64
	}
	return (p.Page - 1) * p.Size
}

// Query - запрос страницы с произвольными критериями C.
// Значения page/size не проверяются при создании: ограничения объявлены тегами
// и проверяются валидатором на границе запроса.
type Query[C any] struct {
	Criteria C `json:"query"`
	Paging
	layout Layout
}

// NewQuery создает запрос с критериями во вложенной раскладке
func NewQuery[C any](criteria C, opts ...PagingOption) Query[C] {
	return Query[C]{Criteria: criteria, Paging: NewPaging(opts...)}
}

// EmptyQuery создает запрос без критериев. Удобен как цель для декодирования.
func EmptyQuery[C any](opts ...PagingOption) Query[C] {
	var zero C
	return NewQuery(zero, opts...)
}

func (q Query[C]) Layout() Layout {
	return q.layout
}

// Flatten возвращает копию, в JSON которой поля критериев подняты на уровень page/size
func (q Query[C]) Flatten() Query[C] {
	q.layout = Flattened
	return q
}

// Nest возвращает копию с критериями под ключом "query"
func (q Query[C]) Nest() Query[C] {
	q.layout = Nested
	return q
}

func (q Query[C]) WithCriteria(criteria C) Query[C] {
	q.Criteria = criteria
	return q
}

func (q Query[C]) String() string {
	name := "Query"
	if q.layout == Flattened {
		name = "FlattenQuery"
	}
	return fmt.Sprintf("%s(page=%d, size=%d, ascs=%v, descs=%v, query=%+v)",
		name, q.Page, q.Size, q.Sort.Ascs, q.Sort.Descs, q.Criteria)
}

const (
	keyQuery = "query"
	keyPage  = "page"
	keySize  = "size"
	keyAscs  = "ascs"
	keyDescs = "descs"
)

func (q Query[C]) MarshalJSON() ([]byte, error) {
	var members []member
	if q.layout == Nested {
		m, err := field(keyQuery, q.Criteria)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	paging, err := pagingMembers(q.Paging)
	if err != nil {
		return nil, err
	}
	if q.layout == Nested {
		return writeObject(append(members, paging...)), nil
	}

	// критерии идут первыми, как если бы были объявлены на месте поля query
	criteria, err := inline(nil, q.Criteria)
	if err != nil {
		return nil, err
	}
	for _, c := range criteria {
		for _, p := range paging {
			if c.key == p.key {
				return nil, fmt.Errorf("%w: %q", ErrFlattenConflict, c.key)
			}
		}
	}
	return writeObject(append(criteria, paging...)), nil
}

// UnmarshalJSON сохраняет раскладку получателя: для плоского JSON
// декодируйте в EmptyQuery[C]().Flatten().
func (q *Query[C]) UnmarshalJSON(data []byte) error {
	reserved := []string{keyPage, keySize, keyAscs, keyDescs}
	if q.layout == Nested {
		reserved = append(reserved, keyQuery)
	}

	known, rest, err := split(data, reserved...)
	if err != nil {
		return err
	}

	decoded := Query[C]{Paging: NewPaging(), layout: q.layout}
	if err := decodePaging(known, &decoded.Paging); err != nil {
		return err
	}

	var criteria []byte
	if q.layout == Nested {
		criteria = known[keyQuery]
	} else {
		criteria = rest
	}
	if !isNull(criteria) {
		if err := json.Unmarshal(criteria, &decoded.Criteria); err != nil {
			return fmt.Errorf("contract: decode query criteria: %w", err)
		}
	}

	*q = decoded
	return nil
}

func pagingMembers(p Paging) ([]member, error) {
	sort := NewSortSpec(p.Sort.Ascs, p.Sort.Descs)
	values := []struct {
		key string
		v   any
	}{
		{keyPage, p.Page},
		{keySize, p.Size},
		{keyAscs, sort.Ascs},
		{keyDescs, sort.Descs},
	}

	members := make([]member, 0, len(values))
	for _, v := range values {
		m, err := field(v.key, v.v)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func decodePaging(known map[string]json.RawMessage, p *Paging) error {
	if raw, ok := known[keyPage]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &p.Page); err != nil {
			return fmt.Errorf("contract: decode page: %w", err)
		}
	}
	if raw, ok := known[keySize]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &p.Size); err != nil {
			return fmt.Errorf("contract: decode size: %w", err)
		}
	}

	var ascs, descs []string
	if raw, ok := known[keyAscs]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &ascs); err != nil {
			return fmt.Errorf("contract: decode ascs: %w", err)
		}
	}
	if raw, ok := known[keyDescs]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &descs); err != nil {
			return fmt.Errorf("contract: decode descs: %w", err)
		}
	}
	p.Sort = NewSortSpec(ascs, descs)
	return nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
