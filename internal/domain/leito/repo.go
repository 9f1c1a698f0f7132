package leito

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, l *Leito) error
	GetByID(ctx context.Context, id uuid.UUID) (*Leito, error)
	ListAll(ctx context.Context) ([]*Leito, error)
	Update(ctx context.Context, l *Leito) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
