package paciente

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidPayload marks a request that decoded but failed validation.
var ErrInvalidPayload = errors.New("invalid payload")

// Paciente maps to the paciente table: a patient assigned to exactly one
// leito. Idade and Telefone are stored as free text, as registered.
type Paciente struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Nome     string    `db:"nome" json:"nome"`
	Sexo     string    `db:"sexo" json:"sexo"`
	Idade    string    `db:"idade" json:"idade"`
	Email    string    `db:"email" json:"email"`
	Telefone string    `db:"telefone" json:"telefone"`
	Covid19  string    `db:"covid_19" json:"covid_19"`
	LeitoID  uuid.UUID `db:"leito_id" json:"leito_id"`
}

// CreateRequest is the POST /pacientes payload.
type CreateRequest struct {
	Nome     string    `json:"nome"`
	Sexo     string    `json:"sexo"`
	Idade    string    `json:"idade"`
	Email    string    `json:"email"`
	Telefone string    `json:"telefone"`
	Covid19  string    `json:"covid_19"`
	LeitoID  uuid.UUID `json:"leito_id"`
}

func (r *CreateRequest) Validate() error {
	return validateFields(r.Nome, r.Sexo, r.Idade, r.Email, r.Telefone, r.Covid19, r.LeitoID)
}

// Validate checks the full record as an update payload.
func (p *Paciente) Validate() error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("%w: id is required", ErrInvalidPayload)
	}
	return validateFields(p.Nome, p.Sexo, p.Idade, p.Email, p.Telefone, p.Covid19, p.LeitoID)
}

func validateFields(nome, sexo, idade, email, telefone, covid19 string, leitoID uuid.UUID) error {
	switch {
	case nome == "":
		return fmt.Errorf("%w: nome is required", ErrInvalidPayload)
	case sexo == "":
		return fmt.Errorf("%w: sexo is required", ErrInvalidPayload)
	case idade == "":
		return fmt.Errorf("%w: idade is required", ErrInvalidPayload)
	case email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidPayload)
	case telefone == "":
		return fmt.Errorf("%w: telefone is required", ErrInvalidPayload)
	case covid19 == "":
		return fmt.Errorf("%w: covid_19 is required", ErrInvalidPayload)
	case leitoID == uuid.Nil:
		return fmt.Errorf("%w: leito_id is required", ErrInvalidPayload)
	}
	return nil
}
