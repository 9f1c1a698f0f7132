package unidade

import (
	"context"

	"github.com/google/uuid"

	"github.com/gerenciador-leitos/api/internal/platform/db"
)

// lenientWrite keeps the original write contract: updating or deleting a
// row that does not exist succeeds with zero rows affected. Set to false
// to surface db.ErrNotFound instead.
const lenientWrite = true

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}
	u := &Unidade{
		Email:     req.Email,
		Nome:      req.Nome,
		Tipo:      req.Tipo,
		Municipio: req.Municipio,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Unidade, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*Unidade, error) {
	return s.repo.ListAll(ctx)
}

// ListWithAvailableBeds returns each facility that has at least one bed
// whose situacao is not the occupied sentinel, once per facility.
func (s *Service) ListWithAvailableBeds(ctx context.Context) ([]*Unidade, error) {
	return s.repo.ListWithAvailableBeds(ctx)
}

func (s *Service) Update(ctx context.Context, u *Unidade) error {
	if err := u.Validate(); err != nil {
		return err
	}
	affected, err := s.repo.Update(ctx, u)
	if err != nil {
		return err
	}
	if !lenientWrite && affected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !lenientWrite && affected == 0 {
		return db.ErrNotFound
	}
	return nil
}
