package leito

import (
	"context"

	"github.com/google/uuid"

	"github.com/gerenciador-leitos/api/internal/platform/db"
)

// lenientWrite keeps the original write contract: updating or deleting a
// row that does not exist succeeds with zero rows affected.
const lenientWrite = true

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create allocates an identifier and inserts the bed. A unidade_id that
// references no existing facility surfaces as db.ErrInvalidReference.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}
	l := &Leito{
		Tipo:      req.Tipo,
		Situacao:  req.Situacao,
		UnidadeID: req.UnidadeID,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return uuid.Nil, err
	}
	return l.ID, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Leito, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*Leito, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Update(ctx context.Context, l *Leito) error {
	if err := l.Validate(); err != nil {
		return err
	}
	affected, err := s.repo.Update(ctx, l)
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
