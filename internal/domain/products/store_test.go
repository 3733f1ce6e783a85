package products

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "code", "name", "description", "price", "vendor_name", "vendor_email", "created_at", "updated_at"}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Repository{db: db}, mock
}

func ptr(f float64) *float64 { return &f }

func TestSearchFilterClauses(t *testing.T) {
	tests := []struct {
		name      string
		filter    SearchFilter
		wantWhere []string
		wantArgs  []any
	}{
		{
			name: "empty",
		},
		{
			name:      "name and vendor substring",
			filter:    SearchFilter{Name: "phone", VendorName: "acme"},
			wantWhere: []string{"name ILIKE $1", "vendor_name ILIKE $2"},
			wantArgs:  []any{"%phone%", "%acme%"},
		},
		{
			name:      "code and price range",
			filter:    SearchFilter{Code: "C1", MinPrice: ptr(10), MaxPrice: ptr(20)},
			wantWhere: []string{"code = $1", "price >= $2", "price <= $3"},
			wantArgs:  []any{"C1", 10.0, 20.0},
		},
		{
			name:      "only upper bound",
			filter:    SearchFilter{MaxPrice: ptr(5)},
			wantWhere: []string{"price <= $1"},
			wantArgs:  []any{5.0},
		},
		{
			name:      "wildcards are literal",
			filter:    SearchFilter{Name: "50%_off"},
			wantWhere: []string{"name ILIKE $1"},
			wantArgs:  []any{`%50\%\_off%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.clauses()
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestRepositorySearch(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE price >= $1 AND price <= $2 ORDER BY id")).
		WithArgs(10.0, 20.0).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "C1", "P", "d", 10.0, "A", "a@x.com", now, now).
			AddRow(int64(2), "C2", "Q", "d", 20.0, "A", "a@x.com", now, now))

	list, err := repo.Search(context.Background(), SearchFilter{MinPrice: ptr(10), MaxPrice: ptr(20)})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a@x.com", list[0].VendorInfo.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryList(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	rows := sqlmock.NewRows(columns)
	for i := 6; i <= 10; i++ {
		rows.AddRow(int64(i), "C", "P", "d", 1.5, "A", "a@x.com", now, now)
	}
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).WithArgs(5, 5).WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	list, total, err := repo.List(context.Background(), 5, 5)
	require.NoError(t, err)
	assert.Len(t, list, 5)
	assert.Equal(t, 12, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate(t *testing.T) {
	now := time.Now()

	t.Run("ok", func(t *testing.T) {
		repo, mock := newMock(t)
		p := &Product{Code: "C1", Name: "P", Description: "d", Price: 5, VendorInfo: VendorInfo{Name: "A", Email: "a@x.com"}}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
			WithArgs("C1", "P", "d", 5.0, "A", "a@x.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

		require.NoError(t, repo.Create(context.Background(), p))
		assert.Equal(t, int64(1), p.ID)
	})

	t.Run("duplicate code", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "products_code_key"})

		err := repo.Create(context.Background(), &Product{Code: "C1"})
		assert.ErrorIs(t, err, ErrDuplicateCode)
	})
}

func TestRepositoryGetByCode(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE code = $1")).WithArgs("C1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), "C1", "P", "d", 5.0, "A", "a@x.com", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE code = $1")).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	p, err := repo.GetByCode(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "P", p.Name)

	_, err = repo.GetByCode(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryUpdateAndDelete(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products")).
		WithArgs("P2", "d2", 7.0, "A", "a@x.com", "C1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE code = $1")).WithArgs("C1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE code = $1")).WithArgs("C1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	p := &Product{Code: "C1", Name: "P2", Description: "d2", Price: 7, VendorInfo: VendorInfo{Name: "A", Email: "a@x.com"}}
	require.NoError(t, repo.Update(context.Background(), p))
	assert.ErrorIs(t, repo.Update(context.Background(), &Product{Code: "gone"}), ErrNotFound)

	require.NoError(t, repo.Delete(context.Background(), "C1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "C1"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductBelongsTo(t *testing.T) {
	p := &Product{Code: "C1", VendorInfo: VendorInfo{Name: "A", Email: "a@x.com"}}

	tests := []struct {
		name        string
		vendorID    int64
		vendorEmail string
		actorID     int64
		want        bool
	}{
		{"owner", 1, "a@x.com", 1, true},
		{"owner email case", 1, "A@X.com", 1, true},
		{"same email different actor", 1, "a@x.com", 2, false},
		{"different vendor email", 2, "b@x.com", 2, false},
		{"unresolved vendor", 0, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.BelongsTo(tt.vendorID, tt.vendorEmail, tt.actorID))
		})
	}

	var nilProduct *Product
	assert.False(t, nilProduct.BelongsTo(1, "a@x.com", 1))
}
