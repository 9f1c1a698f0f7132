package unidade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerenciador-leitos/api/internal/platform/db"
)

// situacaoOcupado is the occupancy sentinel: a bed with any other situacao
// counts as available.
const situacaoOcupado = "Ocupado"

type unidadeRepoPG struct {
	pool  *pgxpool.Pool
	newID func() uuid.UUID
}

// NewRepositoryPG builds the Postgres-backed repository. newID allocates
// identifiers for created records; pass nil to use random UUIDs.
func NewRepositoryPG(pool *pgxpool.Pool, newID func() uuid.UUID) Repository {
	if newID == nil {
		newID = uuid.New
	}
	return &unidadeRepoPG{pool: pool, newID: newID}
}

const unidadeCols = `id, email, nome, tipo, municipio`

func scanUnidade(row pgx.Row) (*Unidade, error) {
	var u Unidade
	err := row.Scan(&u.ID, &u.Email, &u.Nome, &u.Tipo, &u.Municipio)
	return &u, err
}

func (r *unidadeRepoPG) Create(ctx context.Context, u *Unidade) error {
	u.ID = r.newID()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO unidadesaude (id, email, nome, tipo, municipio, subscribed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Nome, u.Tipo, u.Municipio, time.Now().UTC())
	return db.MapError(err)
}

func (r *unidadeRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Unidade, error) {
	u, err := scanUnidade(r.pool.QueryRow(ctx,
		`SELECT `+unidadeCols+` FROM unidadesaude WHERE id = $1`, id))
	if err != nil {
		return nil, db.MapError(err)
	}
	return u, nil
}

func (r *unidadeRepoPG) ListAll(ctx context.Context) ([]*Unidade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+unidadeCols+` FROM unidadesaude ORDER BY id`)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()
	return collectUnidades(rows)
}

func (r *unidadeRepoPG) ListWithAvailableBeds(ctx context.Context) ([]*Unidade, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT U.id, U.email, U.nome, U.tipo, U.municipio
		FROM unidadesaude AS U JOIN leito AS L ON U.id = L.unidade_id
		WHERE L.situacao <> $1
		ORDER BY U.id`, situacaoOcupado)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()
	return collectUnidades(rows)
}

func collectUnidades(rows pgx.Rows) ([]*Unidade, error) {
	unidades := make([]*Unidade, 0)
	for rows.Next() {
		u, err := scanUnidade(rows)
		if err != nil {
			return nil, db.MapError(err)
		}
		unidades = append(unidades, u)
	}
	if err := rows.Err(); err != nil {
		return nil, db.MapError(err)
	}
	return unidades, nil
}

func (r *unidadeRepoPG) Update(ctx context.Context, u *Unidade) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE unidadesaude
		SET email = $1, nome = $2, tipo = $3, municipio = $4
		WHERE id = $5`,
		u.Email, u.Nome, u.Tipo, u.Municipio, u.ID)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *unidadeRepoPG) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM unidadesaude WHERE id = $1`, id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}
