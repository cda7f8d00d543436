package location

import (
	"context"
	"testing"
	"time"

	"jobvibe/internal/cache"
	"jobvibe/internal/database/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db   *gorm.DB
	repo *Repository
	svc  *Service
	mr   *miniredis.Miniredis
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t, &State{}, &City{}, &JobTitle{})
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := NewRepository(db)
	return &fixture{db: db, repo: repo, svc: NewService(repo, cache.New(rdb, time.Hour)), mr: mr}
}

func (fx *fixture) state(t *testing.T, name string, cities ...string) State {
	t.Helper()
	_, err := fx.repo.SeedState(context.Background(), name, "", cities)
	require.NoError(t, err)
	var st State
	require.NoError(t, fx.db.Where("name = ?", name).First(&st).Error)
	return st
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, name(it))
	}
	return out
}

func cityName(c City) string { return c.Name }

func TestSeedState_Idempotent(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	n, err := fx.repo.SeedState(ctx, "Kerala", "KL", []string{"Kochi", "Kozhikode"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = fx.repo.SeedState(ctx, "Kerala", "KL", []string{"Kochi", "Thrissur"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = fx.repo.SeedJobTitle(ctx, "Go Engineer", "engineering")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = fx.repo.SeedJobTitle(ctx, "Go Engineer", "engineering")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStates_ReadThroughCache(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	fx.state(t, "Kerala")

	states, err := fx.svc.States(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.True(t, fx.mr.Exists("jobvibe:"+keyStates))

	// served from the cache until it expires
	fx.state(t, "Goa")
	states, err = fx.svc.States(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 1)

	fx.mr.FastForward(2 * time.Hour)
	states, err = fx.svc.States(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Goa", "Kerala"}, names(states, func(s State) string { return s.Name }))
}

func TestCityWrites_InvalidateCache(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	kerala := fx.state(t, "Kerala", "Kochi")
	goa := fx.state(t, "Goa", "Panaji")

	cities, err := fx.svc.CitiesByState(ctx, kerala.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kochi"}, names(cities, cityName))
	all, err := fx.svc.Cities(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	created, err := fx.svc.CreateCity(ctx, kerala.ID, CityRequest{Name: " Alappuzha "})
	require.NoError(t, err)
	assert.Equal(t, "Alappuzha", created.Name)

	cities, err = fx.svc.CitiesByState(ctx, kerala.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alappuzha", "Kochi"}, names(cities, cityName))
	all, err = fx.svc.Cities(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = fx.svc.CreateCity(ctx, kerala.ID, CityRequest{Name: "Kochi"})
	assert.ErrorIs(t, err, ErrCityExists)
	_, err = fx.svc.CreateCity(ctx, "missing", CityRequest{Name: "Nowhere"})
	assert.ErrorIs(t, err, ErrStateNotFound)

	updated, err := fx.svc.UpdateCity(ctx, created.ID, CityRequest{Name: "Alleppey"})
	require.NoError(t, err)
	assert.Equal(t, "Alleppey", updated.Name)

	require.NoError(t, fx.svc.DeleteCity(ctx, created.ID))
	assert.ErrorIs(t, fx.svc.DeleteCity(ctx, created.ID), ErrCityNotFound)

	cities, err = fx.svc.Cities(ctx, goa.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Panaji"}, names(cities, cityName))
}

func TestCitiesByState_UnknownState(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.svc.CitiesByState(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestWithoutRedis(t *testing.T) {
	db := dbtest.Open(t, &State{}, &City{}, &JobTitle{})
	repo := NewRepository(db)
	svc := NewService(repo, cache.New(nil, time.Hour))
	ctx := context.Background()

	_, err := repo.SeedJobTitle(ctx, "Designer", "")
	require.NoError(t, err)
	titles, err := svc.JobTitles(ctx)
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "Designer", titles[0].Name)
}
