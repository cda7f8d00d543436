package paginate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type post struct {
	ID        int `gorm:"primaryKey"`
	Title     string
	Status    string
	Rating    float64
	Tags      string
	CreatedAt time.Time
}

func setupDB(t *testing.T, n int) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:paginate_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&post{}))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		status := "open"
		if i%3 == 0 {
			status = "paused"
		}
		require.NoError(t, db.Create(&post{
			ID:        i,
			Title:     fmt.Sprintf("Post %d", i),
			Status:    status,
			Rating:    float64(i % 6),
			Tags:      fmt.Sprintf(`["t%d","all"]`, i%2),
			CreatedAt: start.Add(time.Duration(i) * time.Hour),
		}).Error)
	}
	return db
}

func TestParse(t *testing.T) {
	tests := []struct {
		page, limit string
		want        Params
	}{
		{"", "", Params{Page: 1, Limit: 10}},
		{"3", "25", Params{Page: 3, Limit: 25}},
		{"0", "0", Params{Page: 1, Limit: 1}},
		{"-4", "-1", Params{Page: 1, Limit: 1}},
		{"abc", "xyz", Params{Page: 1, Limit: 10}},
		{"2", "5000", Params{Page: 2, Limit: MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.page+"/"+tt.limit, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.page, tt.limit))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Params{Page: 1, Limit: 10}, Normalize(0, 0))
	assert.Equal(t, Params{Page: 1, Limit: 1}, Normalize(-2, -2))
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Total: 0, TotalPages: 0, Page: 1, Limit: 10}, NewPagination(0, NewParams(1, 10)))
	assert.Equal(t, 3, NewPagination(21, NewParams(1, 10)).TotalPages)
	assert.Equal(t, 2, NewPagination(20, NewParams(1, 10)).TotalPages)
	assert.Equal(t, 7, NewPagination(7, NewParams(1, 1)).TotalPages)
}

func TestFind_PageBoundsHold(t *testing.T) {
	db := setupDB(t, 23)
	ctx := context.Background()

	for _, limit := range []int{1, 4, 10, 23, 50} {
		for page := 1; page <= 4; page++ {
			p := NewParams(page, limit)
			res, err := Find[post](ctx, db, p, Query{})
			require.NoError(t, err)

			assert.LessOrEqual(t, len(res.Results), limit)
			assert.EqualValues(t, 23, res.Pagination.Total)
			assert.Equal(t, (23+limit-1)/limit, res.Pagination.TotalPages)
			assert.Equal(t, page, res.Pagination.Page)
			assert.Equal(t, limit, res.Pagination.Limit)
		}
	}
}

func TestFind_NewestFirst(t *testing.T) {
	db := setupDB(t, 5)

	res, err := Find[post](context.Background(), db, NewParams(1, 2), Query{})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Equal(t, 5, res.Results[0].ID)
	assert.Equal(t, 4, res.Results[1].ID)
}

func TestFind_PastLastPage(t *testing.T) {
	db := setupDB(t, 7)

	res, err := Find[post](context.Background(), db, NewParams(9, 5), Query{})
	require.NoError(t, err)

	assert.Empty(t, res.Results)
	assert.NotNil(t, res.Results)
	assert.EqualValues(t, 7, res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.TotalPages)
}

func TestFind_Filter(t *testing.T) {
	db := setupDB(t, 12)
	ctx := context.Background()

	res, err := Find[post](ctx, db, NewParams(1, 100), Query{Filter: NewFilter().Eq("status", "paused")})
	require.NoError(t, err)
	assert.EqualValues(t, 4, res.Pagination.Total)

	res, err = Find[post](ctx, db, NewParams(1, 100), Query{Filter: NewFilter().Ne("status", "paused").Contains("POST 1", "title")})
	require.NoError(t, err)
	// Post 1, 10, 11 (12 is paused)
	assert.EqualValues(t, 3, res.Pagination.Total)

	lo, hi := 2.0, 3.0
	res, err = Find[post](ctx, db, NewParams(1, 100), Query{Filter: NewFilter().Range("rating", &lo, &hi)})
	require.NoError(t, err)
	for _, r := range res.Results {
		assert.True(t, r.Rating >= 2 && r.Rating <= 3)
	}
	assert.EqualValues(t, 4, res.Pagination.Total)

	res, err = Find[post](ctx, db, NewParams(1, 100), Query{Filter: NewFilter().HasAny("tags", []string{"t1"})})
	require.NoError(t, err)
	assert.EqualValues(t, 6, res.Pagination.Total)

	res, err = Find[post](ctx, db, NewParams(1, 100), Query{Filter: NewFilter().In("status", nil)})
	require.NoError(t, err)
	assert.EqualValues(t, 12, res.Pagination.Total)
}

func TestFilter_ContainsEscapesWildcards(t *testing.T) {
	db := setupDB(t, 3)

	res, err := Find[post](context.Background(), db, NewParams(1, 10), Query{Filter: NewFilter().Contains("%", "title")})
	require.NoError(t, err)
	assert.Zero(t, res.Pagination.Total)
}

func TestSlice(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}

	res := Slice(all, NewParams(2, 2))
	assert.Equal(t, []int{3, 4}, res.Results)
	assert.Equal(t, 3, res.Pagination.TotalPages)

	res = Slice(all, NewParams(4, 2))
	assert.Empty(t, res.Results)
	assert.EqualValues(t, 5, res.Pagination.Total)
}

func TestMap(t *testing.T) {
	in := &Result[int]{Results: []int{1, 2}, Pagination: NewPagination(2, NewParams(1, 10))}
	out := Map(in, func(i int) string { return fmt.Sprint(i * 10) })

	assert.Equal(t, []string{"10", "20"}, out.Results)
	assert.Equal(t, in.Pagination, out.Pagination)
}
