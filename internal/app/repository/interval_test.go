package repository

import (
	"context"
	"errors"
	"math"
	"testing"

	"Contract-Service/internal/app/contract"
	"Contract-Service/internal/app/ds"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (*IntervalRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewIntervalRepository(db), mock
}

func TestIntervalPage(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "intervals" WHERE is_delete = \$1 AND LOWER\(title\) LIKE LOWER\(\$2\)`).
		WithArgs(false, "%maj%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT \* FROM "intervals" WHERE is_delete = \$1 AND LOWER\(title\) LIKE LOWER\(\$2\) ORDER BY "tone" DESC,\s?"id" LIMIT \S+ OFFSET \S+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "tone"}).
			AddRow(6, "Major sixth", "M6", 4.5).
			AddRow(3, "Major third", "M3", 2.0))

	q := contract.NewQuery(ds.IntervalCriteria{Title: "maj"},
		contract.WithPage(2), contract.WithSize(5), contract.WithDescs("tone"))
	page, err := repo.Page(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Page())
	assert.Equal(t, int64(5), page.Size())
	assert.Equal(t, int64(12), page.Total())
	assert.Equal(t, int64(3), page.Pages())
	assert.True(t, page.HasNext())
	require.Len(t, page.Rows(), 2)
	assert.Equal(t, "Major sixth", page.Rows()[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntervalPageEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "intervals" WHERE is_delete = \$1 AND tone >= \$2 AND tone <= \$3`).
		WithArgs(false, 1.0, 2.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "intervals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	page, err := repo.Page(context.Background(),
		contract.NewQuery(ds.IntervalCriteria{ToneMin: 1, ToneMax: 2}))
	require.NoError(t, err)

	assert.NotNil(t, page.Rows())
	assert.Empty(t, page.Rows())
	assert.Equal(t, int64(0), page.Pages())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntervalPageEscapesTitle(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "intervals" WHERE is_delete = \$1 AND LOWER\(title\) LIKE LOWER\(\$2\)`).
		WithArgs(false, `%50\%\_off\\%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "intervals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Page(context.Background(),
		contract.NewQuery(ds.IntervalCriteria{Title: `50%_off\`}))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntervalPageOffsetOverflow(t *testing.T) {
	repo, mock := newMockRepo(t)

	_, err := repo.Page(context.Background(),
		contract.NewQuery(ds.IntervalCriteria{}, contract.WithPage(math.MaxInt64/10+2), contract.WithSize(10)))
	assert.ErrorIs(t, err, ErrInvalidPaging)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntervalPageRejectsQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	_, err := repo.Page(context.Background(),
		contract.NewQuery(ds.IntervalCriteria{}, contract.WithAscs("photo")))
	var sortErr *SortFieldError
	require.True(t, errors.As(err, &sortErr))
	assert.Equal(t, "photo", sortErr.Field)

	_, err = repo.Page(context.Background(),
		contract.NewQuery(ds.IntervalCriteria{}, contract.WithSize(0)))
	assert.ErrorIs(t, err, ErrInvalidPaging)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntervalPageCountError(t *testing.T) {
	repo, mock := newMockRepo(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT count\(\*\) FROM "intervals"`).WillReturnError(boom)

	_, err := repo.Page(context.Background(), contract.EmptyQuery[ds.IntervalCriteria]())
	assert.ErrorIs(t, err, boom)
}

func TestIntervalGet(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "intervals" WHERE id = \$1 AND is_delete = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "tone"}).
			AddRow(3, "Major third", "M3", 2.0))
	mock.ExpectQuery(`SELECT \* FROM "intervals" WHERE id = \$1 AND is_delete = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	interval, err := repo.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Major third", interval.Title)

	_, err = repo.Get(context.Background(), 4)
	assert.ErrorIs(t, err, ErrIntervalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntervalCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "intervals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	interval := ds.Interval{Title: "Octave", Description: "P8", Tone: 6, IsDelete: true}
	require.NoError(t, repo.Create(context.Background(), &interval))

	assert.Equal(t, uint(7), interval.ID)
	assert.False(t, interval.IsDelete)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntervalDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "intervals" SET "is_delete"=\$1 WHERE id = \$2 AND is_delete = \$3`).
		WithArgs(true, 5, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "intervals" SET "is_delete"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 6)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
