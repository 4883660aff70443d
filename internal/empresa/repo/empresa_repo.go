package repo

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/agendafacil/service-agenda-go/internal/empresa/entity"
)

// EmpresaRepo provides data access for the empresas table using sqlx.
type EmpresaRepo struct {
	db *sqlx.DB
}

func NewEmpresaRepo(db *sqlx.DB) *EmpresaRepo { return &EmpresaRepo{db: db} }

const empresaColumns = `id, nome, cnpj, telefone, endereco, cidade, estado, cep, descricao, logo_url, user_id, created_at`

// EnsureTable ensures the empresas table and its index exist (idempotent).
func (r *EmpresaRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS empresas (
  id BIGSERIAL PRIMARY KEY,
  nome TEXT NOT NULL,
  cnpj TEXT,
  telefone TEXT,
  endereco TEXT,
  cidade TEXT,
  estado TEXT,
  cep TEXT,
  descricao TEXT,
  logo_url TEXT,
  user_id BIGINT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return err
	}

	// Check if index exists; use to_regclass for the index name.
	var idxName sql.NullString
	if err := r.db.QueryRowContext(ctx, "SELECT to_regclass('public.idx_empresas_user_id')").Scan(&idxName); err != nil {
		return err
	}
	if !idxName.Valid {
		if _, err := r.db.ExecContext(ctx, `CREATE INDEX idx_empresas_user_id ON empresas (user_id)`); err != nil {
			return err
		}
	}
	return nil
}

// List returns all companies.
func (r *EmpresaRepo) List(ctx context.Context) ([]entity.Empresa, error) {
	const q = `SELECT ` + empresaColumns + ` FROM empresas`
	empresas := []entity.Empresa{}
	if err := r.db.SelectContext(ctx, &empresas, q); err != nil {
		return nil, err
	}
	return empresas, nil
}

// GetByID returns one company or sql.ErrNoRows.
func (r *EmpresaRepo) GetByID(ctx context.Context, id int64) (*entity.Empresa, error) {
	const q = `SELECT ` + empresaColumns + ` FROM empresas WHERE id = $1`
	var row entity.Empresa
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateLogoURLByUser sets the logo of the company owned by the given user.
func (r *EmpresaRepo) UpdateLogoURLByUser(ctx context.Context, userID int64, logoURL string) error {
	const q = `UPDATE empresas SET logo_url = $2 WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, q, userID, logoURL)
	return err
}
