package leito

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerenciador-leitos/api/internal/platform/db"
)

type leitoRepoPG struct {
	pool  *pgxpool.Pool
	newID func() uuid.UUID
}

// NewRepositoryPG builds the Postgres-backed repository. newID allocates
// identifiers for created records; pass nil to use random UUIDs.
func NewRepositoryPG(pool *pgxpool.Pool, newID func() uuid.UUID) Repository {
	if newID == nil {
		newID = uuid.New
	}
	return &leitoRepoPG{pool: pool, newID: newID}
}

const leitoCols = `id, tipo, situacao, unidade_id`

func scanLeito(row pgx.Row) (*Leito, error) {
	var l Leito
	err := row.Scan(&l.ID, &l.Tipo, &l.Situacao, &l.UnidadeID)
	return &l, err
}

func (r *leitoRepoPG) Create(ctx context.Context, l *Leito) error {
	l.ID = r.newID()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO leito (id, tipo, situacao, unidade_id)
		VALUES ($1, $2, $3, $4)`,
		l.ID, l.Tipo, l.Situacao, l.UnidadeID)
	return db.MapError(err)
}

func (r *leitoRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Leito, error) {
	l, err := scanLeito(r.pool.QueryRow(ctx,
		`SELECT `+leitoCols+` FROM leito WHERE id = $1`, id))
	if err != nil {
		return nil, db.MapError(err)
	}
	return l, nil
}

func (r *leitoRepoPG) ListAll(ctx context.Context) ([]*Leito, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+leitoCols+` FROM leito ORDER BY id`)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	leitos := make([]*Leito, 0)
	for rows.Next() {
		l, err := scanLeito(rows)
		if err != nil {
			return nil, db.MapError(err)
		}
		leitos = append(leitos, l)
	}
	if err := rows.Err(); err != nil {
		return nil, db.MapError(err)
	}
	return leitos, nil
}

func (r *leitoRepoPG) Update(ctx context.Context, l *Leito) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leito
		SET tipo = $1, situacao = $2, unidade_id = $3
		WHERE id = $4`,
		l.Tipo, l.Situacao, l.UnidadeID, l.ID)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *leitoRepoPG) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leito WHERE id = $1`, id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}
