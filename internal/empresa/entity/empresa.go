package entity

import "time"

// Empresa represents a row in the `empresas` table. The user_id column
// back-references the owner User of tipo empresa.
type Empresa struct {
	ID        int64     `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome"`
	CNPJ      *string   `db:"cnpj" json:"cnpj"`
	Telefone  *string   `db:"telefone" json:"telefone"`
	Endereco  *string   `db:"endereco" json:"endereco"`
	Cidade    *string   `db:"cidade" json:"cidade"`
	Estado    *string   `db:"estado" json:"estado"`
	CEP       *string   `db:"cep" json:"cep"`
	Descricao *string   `db:"descricao" json:"descricao"`
	LogoURL   *string   `db:"logo_url" json:"logo_url"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
