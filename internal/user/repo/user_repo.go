package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/agendafacil/service-agenda-go/internal/user/entity"
)

// UserRepo provides data access for the users table using sqlx.
type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, nome, email, telefone, senha, tipo, cpf, cnpj, empresa_id, cargo, foto_url, ativo, created_at`

// EnsureTable creates the users table if not exists (idempotent).
// This is a convenience for early development; prefer migrations in production.
func (r *UserRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
  id BIGSERIAL PRIMARY KEY,
  nome TEXT NOT NULL,
  email TEXT NOT NULL,
  telefone TEXT,
  senha TEXT NOT NULL,
  tipo TEXT NOT NULL DEFAULT 'cliente',
  cpf TEXT,
  cnpj TEXT,
  empresa_id BIGINT,
  cargo TEXT,
  foto_url TEXT,
  ativo BOOLEAN NOT NULL DEFAULT true,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
CREATE INDEX IF NOT EXISTS idx_users_tipo ON users(tipo);
CREATE INDEX IF NOT EXISTS idx_users_empresa_id ON users(empresa_id);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// FindByIdentifier returns the single user matching the login identifier
// (email, telefone or cnpj) combined with tipo, or sql.ErrNoRows.
func (r *UserRepo) FindByIdentifier(ctx context.Context, identifier, tipo string) (*entity.User, error) {
	const q = `SELECT ` + userColumns + `
	  FROM users
	  WHERE (email = $1 OR telefone = $1 OR cnpj = $1) AND tipo = $2
	  LIMIT 1`
	var row entity.User
	if err := r.db.GetContext(ctx, &row, q, identifier, tipo); err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByID fetches a full user row.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var row entity.User
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// GetTipo returns only the tipo of a user, or sql.ErrNoRows.
func (r *UserRepo) GetTipo(ctx context.Context, id int64) (string, error) {
	const q = `SELECT tipo FROM users WHERE id = $1`
	var tipo string
	if err := r.db.GetContext(ctx, &tipo, q, id); err != nil {
		return "", err
	}
	return tipo, nil
}

// UpdateFotoURL sets the profile photo of a non-company user.
func (r *UserRepo) UpdateFotoURL(ctx context.Context, id int64, fotoURL string) error {
	const q = `UPDATE users SET foto_url = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, fotoURL)
	return err
}

// ListFuncionarios returns the employee projection for one company. The
// column list is fixed so senha can never leak into the response.
func (r *UserRepo) ListFuncionarios(ctx context.Context, empresaID int64) ([]entity.Funcionario, error) {
	const q = `SELECT id, nome, email, telefone, cpf, cargo, foto_url, ativo, created_at
	  FROM users
	  WHERE tipo = 'funcionario' AND empresa_id = $1`
	funcionarios := []entity.Funcionario{}
	if err := r.db.SelectContext(ctx, &funcionarios, q, empresaID); err != nil {
		return nil, err
	}
	return funcionarios, nil
}
