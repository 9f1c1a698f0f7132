package paciente

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerenciador-leitos/api/internal/platform/db"
)

// covidPositivo is the COVID status sentinel the facility query filters on.
const covidPositivo = "Sim"

type pacienteRepoPG struct {
	pool  *pgxpool.Pool
	newID func() uuid.UUID
}

// NewRepositoryPG builds the Postgres-backed repository. newID allocates
// identifiers for created records; pass nil to use random UUIDs.
func NewRepositoryPG(pool *pgxpool.Pool, newID func() uuid.UUID) Repository {
	if newID == nil {
		newID = uuid.New
	}
	return &pacienteRepoPG{pool: pool, newID: newID}
}

const pacienteCols = `id, nome, sexo, idade, email, telefone, covid_19, leito_id`

func scanPaciente(row pgx.Row) (*Paciente, error) {
	var p Paciente
	err := row.Scan(&p.ID, &p.Nome, &p.Sexo, &p.Idade, &p.Email, &p.Telefone, &p.Covid19, &p.LeitoID)
	return &p, err
}

func (r *pacienteRepoPG) Create(ctx context.Context, p *Paciente) error {
	p.ID = r.newID()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO paciente (id, nome, sexo, idade, email, telefone, covid_19, leito_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Nome, p.Sexo, p.Idade, p.Email, p.Telefone, p.Covid19, p.LeitoID)
	return db.MapError(err)
}

func (r *pacienteRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Paciente, error) {
	p, err := scanPaciente(r.pool.QueryRow(ctx,
		`SELECT `+pacienteCols+` FROM paciente WHERE id = $1`, id))
	if err != nil {
		return nil, db.MapError(err)
	}
	return p, nil
}

func (r *pacienteRepoPG) ListAll(ctx context.Context) ([]*Paciente, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+pacienteCols+` FROM paciente ORDER BY id`)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()
	return collectPacientes(rows)
}

func (r *pacienteRepoPG) ListCovidByUnidade(ctx context.Context, unidadeID uuid.UUID) ([]*Paciente, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT P.id, P.nome, P.sexo, P.idade, P.email, P.telefone, P.covid_19, P.leito_id
		FROM (unidadesaude AS U JOIN leito AS L ON U.id = L.unidade_id)
			JOIN paciente AS P ON L.id = P.leito_id
		WHERE P.covid_19 = $1 AND U.id = $2
		ORDER BY P.id`, covidPositivo, unidadeID)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()
	return collectPacientes(rows)
}

func collectPacientes(rows pgx.Rows) ([]*Paciente, error) {
	pacientes := make([]*Paciente, 0)
	for rows.Next() {
		p, err := scanPaciente(rows)
		if err != nil {
			return nil, db.MapError(err)
		}
		pacientes = append(pacientes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.MapError(err)
	}
	return pacientes, nil
}

func (r *pacienteRepoPG) Update(ctx context.Context, p *Paciente) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE paciente
		SET nome = $1, sexo = $2, idade = $3, email = $4, telefone = $5, covid_19 = $6, leito_id = $7
		WHERE id = $8`,
		p.Nome, p.Sexo, p.Idade, p.Email, p.Telefone, p.Covid19, p.LeitoID, p.ID)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *pacienteRepoPG) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM paciente WHERE id = $1`, id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}
