package entity

import "time"

// Tipo values for the users.tipo enumeration.
const (
	TipoCliente     = "cliente"
	TipoFuncionario = "funcionario"
	TipoEmpresa     = "empresa"
)

// User represents a row in the `users` table. Senha is loaded only for the
// login comparison and never serialized.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome"`
	Email     string    `db:"email" json:"email"`
	Telefone  *string   `db:"telefone" json:"telefone"`
	Senha     string    `db:"senha" json:"-"`
	Tipo      string    `db:"tipo" json:"tipo"`
	CPF       *string   `db:"cpf" json:"cpf"`
	CNPJ      *string   `db:"cnpj" json:"cnpj"`
	EmpresaID *int64    `db:"empresa_id" json:"empresa_id"`
	Cargo     *string   `db:"cargo" json:"cargo"`
	FotoURL   *string   `db:"foto_url" json:"foto_url"`
	Ativo     bool      `db:"ativo" json:"ativo"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Profile is the sanitized projection returned by login and profile reads.
type Profile struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Email     string  `json:"email"`
	Telefone  *string `json:"telefone"`
	Tipo      string  `json:"tipo"`
	CPF       *string `json:"cpf"`
	CNPJ      *string `json:"cnpj"`
	EmpresaID *int64  `json:"empresa_id"`
	Cargo     *string `json:"cargo"`
	FotoURL   *string `json:"foto_url"`
}

// Profile projects the user without its credential.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Telefone:  u.Telefone,
		Tipo:      u.Tipo,
		CPF:       u.CPF,
		CNPJ:      u.CNPJ,
		EmpresaID: u.EmpresaID,
		Cargo:     u.Cargo,
		FotoURL:   u.FotoURL,
	}
}

// Funcionario is the fixed field subset returned by employee listings.
type Funcionario struct {
	ID        int64     `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome"`
	Email     string    `db:"email" json:"email"`
	Telefone  *string   `db:"telefone" json:"telefone"`
	CPF       *string   `db:"cpf" json:"cpf"`
	Cargo     *string   `db:"cargo" json:"cargo"`
	FotoURL   *string   `db:"foto_url" json:"foto_url"`
	Ativo     bool      `db:"ativo" json:"ativo"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
