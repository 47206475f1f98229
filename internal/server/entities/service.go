package entities

import (
	"context"
	"errors"
	"fmt"

	"github.com/irlquest/server/internal/common"
)

// Service enforces ownership on top of the repository: a caller may only
// observe or mutate records whose owner matches the caller's identity.
// Ownership mismatches are reported as common.ErrorNotFound so the existence
// of another identity's record is never revealed.
type Service[T any, P any] struct {
	repo Repository[T, P]
	kind *Kind[T, P]
}

func NewService[T any, P any](repo Repository[T, P], kind *Kind[T, P]) *Service[T, P] {
	return &Service[T, P]{repo: repo, kind: kind}
}

func (s *Service[T, P]) List(ctx context.Context, uid int64, skip, limit int) ([]*T, error) {
	records, err := s.repo.List(ctx, &uid, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", s.kind.Table, err)
	}
	return records, nil
}

func (s *Service[T, P]) Get(ctx context.Context, uid int64, id int64) (*T, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching from %s: %w", s.kind.Table, err)
	}

	owner, ok := s.kind.Owner(record)
	if !ok || owner != uid {
		return nil, common.ErrorNotFound
	}

	return record, nil
}

func (s *Service[T, P]) Create(ctx context.Context, uid int64, record *T) (*T, error) {
	s.kind.SetOwner(record, uid)

	record, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("error creating in %s: %w", s.kind.Table, err)
	}

	return record, nil
}

// Update checks ownership before issuing the write; the check's result is
// observed before the write is sent (no read-modify-write atomicity is
// assumed across concurrent requests).
func (s *Service[T, P]) Update(ctx context.Context, uid int64, id int64, patch *P) (*T, error) {
	if _, err := s.Get(ctx, uid, id); err != nil {
		return nil, err
	}

	record, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating %s: %w", s.kind.Table, err)
	}

	return record, nil
}

func (s *Service[T, P]) Delete(ctx context.Context, uid int64, id int64) (bool, error) {
	if _, err := s.Get(ctx, uid, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting from %s: %w", s.kind.Table, err)
	}

	return deleted, nil
}
