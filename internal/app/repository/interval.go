// internal/app/repository/interval.go
package repository

import (
	"Contract-Service/internal/app/contract"
	"Contract-Service/internal/app/ds"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var ErrIntervalNotFound = errors.New("interval not found")

type IntervalRepository struct {
	db *gorm.DB
}

func NewIntervalRepository(db *gorm.DB) *IntervalRepository {
	return &IntervalRepository{
		db: db,
	}
}

// ==================== ОСНОВНОЙ МЕТОД С ПАГИНАЦИЕЙ ====================

// Page возвращает страницу интервалов по запросу с фильтрами
func (r *IntervalRepository) Page(
	ctx context.Context,
	q contract.Query[ds.IntervalCriteria],
) (contract.PageResult[ds.Interval], error) {
	paginate, err := Paginate(q.Paging, ds.IntervalSortColumns)
	if err != nil {
		return contract.PageResult[ds.Interval]{}, err
	}
	filter := intervalFilter(q.Criteria)

	// Получаем общее количество записей
	var total int64
	if err := r.db.WithContext(ctx).Model(&ds.Interval{}).Scopes(filter).Count(&total).Error; err != nil {
		return contract.PageResult[ds.Interval]{}, fmt.Errorf("count intervals: %w", err)
	}

	var intervals []ds.Interval
	if err := r.db.WithContext(ctx).Scopes(filter, paginate).Find(&intervals).Error; err != nil {
		return contract.PageResult[ds.Interval]{}, fmt.Errorf("find intervals: %w", err)
	}

	return contract.PageOf(q.Paging, intervals, total), nil
}

// likeEscaper экранирует % и _ в подстроке LIKE обратным слешем, escape-символом Postgres по умолчанию
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// intervalFilter применяется отдельно к COUNT и SELECT, statement не переиспользуется
func intervalFilter(c ds.IntervalCriteria) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("is_delete = ?", false)
		if c.Title != "" {
			db = db.Where("LOWER(title) LIKE LOWER(?)", "%"+likeEscaper.Replace(c.Title)+"%")
		}
		if c.ToneMin > 0 {
			db = db.Where("tone >= ?", c.ToneMin)
		}
		if c.ToneMax > 0 {
			db = db.Where("tone <= ?", c.ToneMax)
		}
		return db
	}
}

// ==================== ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ====================

// Get возвращает один интервал
func (r *IntervalRepository) Get(ctx context.Context, id uint) (ds.Interval, error) {
	interval := ds.Interval{}
	err := r.db.WithContext(ctx).Where("id = ? AND is_delete = ?", id, false).First(&interval).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Interval{}, ErrIntervalNotFound
	}
	if err != nil {
		return ds.Interval{}, fmt.Errorf("get interval %d: %w", id, err)
	}
	return interval, nil
}

// Create создает интервал
func (r *IntervalRepository) Create(ctx context.Context, interval *ds.Interval) error {
	interval.IsDelete = false
	if err := r.db.WithContext(ctx).Create(interval).Error; err != nil {
		return fmt.Errorf("create interval: %w", err)
	}
	return nil
}

// Delete удаляет интервал (мягкое удаление), false - интервала не было
func (r *IntervalRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Model(&ds.Interval{}).
		Where("id = ? AND is_delete = ?", id, false).
		Update("is_delete", true)
	if result.Error != nil {
		return false, fmt.Errorf("delete interval %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
