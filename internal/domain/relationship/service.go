package relationship

import (
	"context"
	"errors"
	"strings"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/pkg/apperr"
)

type UserStore interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
}

type Service struct {
	repo  *Repository
	users UserStore
}

func NewService(repo *Repository, users UserStore) *Service {
	return &Service{repo: repo, users: users}
}

func (s *Service) Block(ctx context.Context, blockerID, blockedID string) error {
	blockedID = strings.TrimSpace(blockedID)
	if blockerID == blockedID {
		return ErrCannotBlockSelf
	}
	if _, err := s.users.GetByID(ctx, blockedID); err != nil {
		return err
	}
	if err := s.repo.Block(ctx, blockerID, blockedID); err != nil {
		if errors.Is(err, ErrAlreadyBlocked) {
			return err
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *Service) Unblock(ctx context.Context, blockerID, blockedID string) error {
	return s.repo.Unblock(ctx, blockerID, blockedID)
}

func (s *Service) IsBlocked(ctx context.Context, a, b string) (bool, error) {
	return s.repo.IsBlocked(ctx, a, b)
}

func (s *Service) ListBlocked(ctx context.Context, userID, baseURL string) ([]BlockedView, error) {
	blocks, err := s.repo.ListBlocked(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	out := make([]BlockedView, 0, len(blocks))
	for _, b := range blocks {
		v := BlockedView{BlockedAt: b.CreatedAt}
		if b.Blocked != nil {
			v.User = b.Blocked.Summarize(baseURL)
		} else {
			v.User = auth.Summary{ID: b.BlockedID}
		}
		out = append(out, v)
	}
	return out, nil
}
