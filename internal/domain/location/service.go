package location

import (
	"context"
	"log/slog"
	"strings"

	"jobvibe/internal/cache"
	"jobvibe/internal/pkg/apperr"
)

const (
	keyStates    = "lookup:states"
	keyCities    = "lookup:cities:"
	keyJobTitles = "lookup:job-titles"
)

// Service serves the lookup lists, read through the cache. City writes
// drop every cached city list.
type Service struct {
	repo  *Repository
	cache *cache.Cache
}

func NewService(repo *Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

func (s *Service) States(ctx context.Context) ([]State, error) {
	return remember(ctx, s.cache, keyStates, s.repo.States)
}

func (s *Service) CitiesByState(ctx context.Context, stateID string) ([]City, error) {
	if err := s.requireState(ctx, stateID); err != nil {
		return nil, err
	}
	return s.Cities(ctx, stateID)
}

// Cities lists all cities, or one state's when stateID is set.
func (s *Service) Cities(ctx context.Context, stateID string) ([]City, error) {
	key := keyCities + "all"
	if stateID != "" {
		key = keyCities + stateID
	}
	return remember(ctx, s.cache, key, func(ctx context.Context) ([]City, error) {
		return s.repo.Cities(ctx, stateID)
	})
}

func (s *Service) JobTitles(ctx context.Context) ([]JobTitle, error) {
	return remember(ctx, s.cache, keyJobTitles, s.repo.JobTitles)
}

func (s *Service) CreateCity(ctx context.Context, stateID string, req CityRequest) (*City, error) {
	if err := s.requireState(ctx, stateID); err != nil {
		return nil, err
	}
	c := &City{StateID: stateID, Name: strings.TrimSpace(req.Name)}
	if err := s.repo.CreateCity(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateCities(ctx)
	return c, nil
}

func (s *Service) UpdateCity(ctx context.Context, id string, req CityRequest) (*City, error) {
	if err := s.repo.RenameCity(ctx, id, strings.TrimSpace(req.Name)); err != nil {
		return nil, err
	}
	s.invalidateCities(ctx)
	return s.repo.GetCity(ctx, id)
}

func (s *Service) DeleteCity(ctx context.Context, id string) error {
	if err := s.repo.DeleteCity(ctx, id); err != nil {
		return err
	}
	s.invalidateCities(ctx)
	return nil
}

func (s *Service) requireState(ctx context.Context, id string) error {
	ok, err := s.repo.StateExists(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return ErrStateNotFound
	}
	return nil
}

func (s *Service) invalidateCities(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, keyCities); err != nil {
		slog.Warn("invalidate city cache", "error", err)
	}
}

func remember[T any](ctx context.Context, c *cache.Cache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	out, err := cache.Remember(ctx, c, key, load)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
