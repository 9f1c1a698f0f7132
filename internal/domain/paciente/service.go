package paciente

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

// Create allocates an identifier and inserts the patient. A leito_id that
// references no existing bed surfaces as db.ErrInvalidReference.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}
	p := &Paciente{
		Nome:     req.Nome,
		Sexo:     req.Sexo,
		Idade:    req.Idade,
		Email:    req.Email,
		Telefone: req.Telefone,
		Covid19:  req.Covid19,
		LeitoID:  req.LeitoID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return uuid.Nil, err
	}
	return p.ID, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Paciente, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*Paciente, error) {
	return s.repo.ListAll(ctx)
}

// ListCovidByUnidade returns the COVID-positive patients whose bed belongs
// to the given facility. An unknown facility yields an empty result, not an
// error.
func (s *Service) ListCovidByUnidade(ctx context.Context, unidadeID uuid.UUID) ([]*Paciente, error) {
	return s.repo.ListCovidByUnidade(ctx, unidadeID)
}

func (s *Service) Update(ctx context.Context, p *Paciente) error {
	if err := p.Validate(); err != nil {
		return err
	}
	affected, err := s.repo.Update(ctx, p)
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
