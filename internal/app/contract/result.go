package contract

import (
	"encoding/json"
	"fmt"
)

// ListResult - контейнер строк без пагинации. Rows никогда не возвращает nil.
type ListResult[T any] struct {
	rows []T
}

func NewListResult[T any](rows []T) ListResult[T] {
	return ListResult[T]{rows: rows}
}

func (l ListResult[T]) Rows() []T {
	return emptyIfNil(l.rows)
}

// FirstMatch возвращает первую строку, удовлетворяющую predicate
func (l ListResult[T]) FirstMatch(predicate func(T) bool) (T, bool) {
	return firstMatch(l.rows, predicate)
}

// MapList применяет transform к каждой строке по порядку
func MapList[T, R any](l ListResult[T], transform func(T) R) ListResult[R] {
	return ListResult[R]{rows: mapRows(l.rows, transform)}
}

func (l ListResult[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rows []T `json:"rows"`
	}{Rows: l.Rows()})
}

func (l *ListResult[T]) UnmarshalJSON(data []byte) error {
	var aux struct {
		Rows []T `json:"rows"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.rows = emptyIfNil(aux.Rows)
	return nil
}

// PageResult - одна страница результата.
// Pages и HasNext всегда вычисляются из size/total/rows и не хранятся.
type PageResult[T any] struct {
	rows  []T
	page  int64
	size  int64
	total int64
}

// NewPageResult создает страницу; total - число записей по всем страницам.
// Соответствие len(rows) <= size обеспечивает источник данных.
func NewPageResult[T any](rows []T, page, size, total int64) PageResult[T] {
	return PageResult[T]{rows: rows, page: page, size: size, total: total}
}

// PageOf создает страницу для параметров запроса
func PageOf[T any](paging Paging, rows []T, total int64) PageResult[T] {
	return NewPageResult(rows, paging.Page, paging.Size, total)
}

func (p PageResult[T]) Rows() []T {
	return emptyIfNil(p.rows)
}

func (p PageResult[T]) Page() int64 {
	return p.page
}

func (p PageResult[T]) Size() int64 {
	return p.size
}

func (p PageResult[T]) Total() int64 {
	return p.total
}

// Pages - ceil(total / size); 0 при неположительном size
func (p PageResult[T]) Pages() int64 {
	if p.size <= 0 || p.total <= 0 {
		return 0
	}
	pages := p.total / p.size
	if p.total%p.size != 0 {
		pages++
	}
	return pages
}

// HasNext сообщает, что страница заполнена не полностью: len(rows) < size.
// Это не то же самое, что page*size < total.
func (p PageResult[T]) HasNext() bool {
	return int64(len(p.rows)) < p.size
}

// ForEach вызывает action для каждой строки по порядку и возвращает новую
// страницу с теми же строками
func (p PageResult[T]) ForEach(action func(T)) PageResult[T] {
	rows := make([]T, 0, len(p.rows))
	for _, row := range p.rows {
		action(row)
		rows = append(rows, row)
	}
	return PageResult[T]{rows: rows, page: p.page, size: p.size, total: p.total}
}

// FirstMatch возвращает первую строку, удовлетворяющую predicate.
// Для пустой страницы возвращает нулевое значение и false.
func (p PageResult[T]) FirstMatch(predicate func(T) bool) (T, bool) {
	return firstMatch(p.rows, predicate)
}

func (p PageResult[T]) String() string {
	return fmt.Sprintf("PageResult(page=%d, size=%d, total=%d, pages=%d, hasNext=%t, rows=%d)",
		p.page, p.size, p.total, p.Pages(), p.HasNext(), len(p.rows))
}

// MapPage отображает строки страницы, page/size/total копируются без изменений
func MapPage[T, R any](p PageResult[T], transform func(T) R) PageResult[R] {
	return PageResult[R]{rows: mapRows(p.rows, transform), page: p.page, size: p.size, total: p.total}
}

// TryMapPage как MapPage, но останавливается на первой ошибке transform и
// возвращает ее как есть
func TryMapPage[T, R any](p PageResult[T], transform func(T) (R, error)) (PageResult[R], error) {
	rows := make([]R, 0, len(p.rows))
	for _, row := range p.rows {
		r, err := transform(row)
		if err != nil {
			return PageResult[R]{}, err
		}
		rows = append(rows, r)
	}
	return PageResult[R]{rows: rows, page: p.page, size: p.size, total: p.total}, nil
}

type pageJSON[T any] struct {
	Page    int64 `json:"page"`
	Size    int64 `json:"size"`
	Total   int64 `json:"total"`
	Pages   int64 `json:"pages"`
	HasNext bool  `json:"hasNext"`
	Rows    []T   `json:"rows"`
}

func (p PageResult[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(pageJSON[T]{
		Page:    p.page,
		Size:    p.size,
		Total:   p.total,
		Pages:   p.Pages(),
		HasNext: p.HasNext(),
		Rows:    p.Rows(),
	})
}

// UnmarshalJSON игнорирует входящие pages и hasNext
func (p *PageResult[T]) UnmarshalJSON(data []byte) error {
	var aux pageJSON[T]
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = PageResult[T]{rows: emptyIfNil(aux.Rows), page: aux.Page, size: aux.Size, total: aux.Total}
	return nil
}

func mapRows[T, R any](rows []T, transform func(T) R) []R {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		out = append(out, transform(row))
	}
	return out
}

func firstMatch[T any](rows []T, predicate func(T) bool) (T, bool) {
	for _, row := range rows {
		if predicate(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}
