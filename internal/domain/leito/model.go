package leito

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidPayload marks a request that decoded but failed validation.
var ErrInvalidPayload = errors.New("invalid payload")

// Leito maps to the leito table: a bed belonging to exactly one unidade.
type Leito struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Tipo      string    `db:"tipo" json:"tipo"`
	Situacao  string    `db:"situacao" json:"situacao"`
	UnidadeID uuid.UUID `db:"unidade_id" json:"unidade_id"`
}

// CreateRequest is the POST /leitos payload.
type CreateRequest struct {
	Tipo      string    `json:"tipo"`
	Situacao  string    `json:"situacao"`
	UnidadeID uuid.UUID `json:"unidade_id"`
}

func (r *CreateRequest) Validate() error {
	return validateFields(r.Tipo, r.Situacao, r.UnidadeID)
}

// Validate checks the full record as an update payload.
func (l *Leito) Validate() error {
	if l.ID == uuid.Nil {
		return fmt.Errorf("%w: id is required", ErrInvalidPayload)
	}
	return validateFields(l.Tipo, l.Situacao, l.UnidadeID)
}

func validateFields(tipo, situacao string, unidadeID uuid.UUID) error {
	switch {
	case tipo == "":
		return fmt.Errorf("%w: tipo is required", ErrInvalidPayload)
	case situacao == "":
		return fmt.Errorf("%w: situacao is required", ErrInvalidPayload)
	case unidadeID == uuid.Nil:
		return fmt.Errorf("%w: unidade_id is required", ErrInvalidPayload)
	}
	return nil
}
