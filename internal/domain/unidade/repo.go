package unidade

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, u *Unidade) error
	GetByID(ctx context.Context, id uuid.UUID) (*Unidade, error)
	ListAll(ctx context.Context) ([]*Unidade, error)
	ListWithAvailableBeds(ctx context.Context) ([]*Unidade, error)
	Update(ctx context.Context, u *Unidade) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
