package unidade

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidPayload marks a request that decoded but failed validation.
var ErrInvalidPayload = errors.New("invalid payload")

// Unidade maps to the unidadesaude table (Unidade de Saúde, a health
// facility). The full record is the update payload and the read response.
type Unidade struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Nome      string    `db:"nome" json:"nome"`
	Tipo      string    `db:"tipo" json:"tipo"`
	Municipio string    `db:"municipio" json:"municipio"`
}

// CreateRequest is the POST /unidades payload. The identifier is allocated
// server-side.
type CreateRequest struct {
	Email     string `json:"email"`
	Nome      string `json:"nome"`
	Tipo      string `json:"tipo"`
	Municipio string `json:"municipio"`
}

func (r *CreateRequest) Validate() error {
	return validateFields(r.Email, r.Nome, r.Tipo, r.Municipio)
}

// Validate checks the full record as an update payload.
func (u *Unidade) Validate() error {
	if u.ID == uuid.Nil {
		return fmt.Errorf("%w: id is required", ErrInvalidPayload)
	}
	return validateFields(u.Email, u.Nome, u.Tipo, u.Municipio)
}

func validateFields(email, nome, tipo, municipio string) error {
	switch {
	case email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidPayload)
	case nome == "":
		return fmt.Errorf("%w: nome is required", ErrInvalidPayload)
	case tipo == "":
		return fmt.Errorf("%w: tipo is required", ErrInvalidPayload)
	case municipio == "":
		return fmt.Errorf("%w: municipio is required", ErrInvalidPayload)
	}
	return nil
}
