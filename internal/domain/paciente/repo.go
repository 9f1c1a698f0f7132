package paciente

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Paciente) error
	GetByID(ctx context.Context, id uuid.UUID) (*Paciente, error)
	ListAll(ctx context.Context) ([]*Paciente, error)
	ListCovidByUnidade(ctx context.Context, unidadeID uuid.UUID) ([]*Paciente, error)
	Update(ctx context.Context, p *Paciente) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
