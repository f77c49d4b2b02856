package repository

import (
	"errors"
	"fmt"
	"math"

	"Contract-Service/internal/app/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tieBreakColumn добавляется последним, чтобы порядок страниц был стабильным
const tieBreakColumn = "id"

var ErrInvalidPaging = errors.New("repository: page and size must be positive")

// SortFieldError - поле сортировки не входит в белый список
type SortFieldError struct {
	Field string
}

func (e *SortFieldError) Error() string {
	return fmt.Sprintf("unknown sort field %q", e.Field)
}

// Paginate строит scope с OFFSET, LIMIT и ORDER BY.
// columns сопоставляет имена полей запроса с колонками таблицы.
func Paginate(p contract.Paging, columns map[string]string) (func(*gorm.DB) *gorm.DB, error) {
	if p.Page < 1 || p.Size < 1 {
		return nil, ErrInvalidPaging
	}
	// OFFSET (page-1)*size должен помещаться в int64
	if p.Page-1 > math.MaxInt64/p.Size {
		return nil, fmt.Errorf("%w: page %d is out of range for size %d", ErrInvalidPaging, p.Page, p.Size)
	}
	orders, err := orderColumns(p.Sort, columns)
	if err != nil {
		return nil, err
	}

	return func(db *gorm.DB) *gorm.DB {
		for _, order := range orders {
			db = db.Order(order)
		}
		return db.Offset(int(p.Offset())).Limit(int(p.Size))
	}, nil
}

// orderColumns - сначала ascs, затем descs, повторное поле игнорируется
func orderColumns(sort contract.SortSpec, columns map[string]string) ([]clause.OrderByColumn, error) {
	orders := make([]clause.OrderByColumn, 0, len(sort.Ascs)+len(sort.Descs)+1)
	seen := make(map[string]bool)

	add := func(fields []string, desc bool) error {
		for _, field := range fields {
			column, ok := columns[field]
			if !ok {
				return &SortFieldError{Field: field}
			}
			if seen[column] {
				continue
			}
			seen[column] = true
			orders = append(orders, clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
		}
		return nil
	}
	if err := add(sort.Ascs, false); err != nil {
		return nil, err
	}
	if err := add(sort.Descs, true); err != nil {
		return nil, err
	}
	if !seen[tieBreakColumn] {
		orders = append(orders, clause.OrderByColumn{Column: clause.Column{Name: tieBreakColumn}})
	}
	return orders, nil
}
