package catalog

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrDuplicateName = errors.New("product already exists")
	ErrNotFound      = errors.New("product not found")
	ErrInvalidInput  = errors.New("english name and non-negative rate required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the merchant's catalog snapshot, newest first. Billing
// sessions fetch this once at creation and never again.
func (s *Service) List(ctx context.Context, userID string) ([]Product, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	nameEn string,
	nameGu string,
	rate float64,
) (*Product, error) {

	nameEn = strings.TrimSpace(nameEn)
	nameGu = strings.TrimSpace(nameGu)

	if nameEn == "" || rate < 0 {
		return nil, ErrInvalidInput
	}

	exists, _ := s.repo.ExistsByNameEn(ctx, userID, nameEn, 0)
	if exists {
		return nil, ErrDuplicateName
	}

	product := &Product{
		UserID: userID,
		NameEn: nameEn,
		NameGu: nameGu,
		Rate:   rate,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) Update(
	ctx context.Context,
	userID string,
	id int64,
	nameEn string,
	nameGu string,
	rate float64,
) error {

	nameEn = strings.TrimSpace(nameEn)
	nameGu = strings.TrimSpace(nameGu)

	if nameEn == "" || rate < 0 {
		return ErrInvalidInput
	}

	exists, _ := s.repo.ExistsByNameEn(ctx, userID, nameEn, id)
	if exists {
		return ErrDuplicateName
	}

	updated, err := s.repo.Update(ctx, &Product{
		ID:     id,
		UserID: userID,
		NameEn: nameEn,
		NameGu: nameGu,
		Rate:   rate,
	})
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, userID string, id int64) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
