package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agendafacil/service-agenda-go/internal/auth"
	"github.com/agendafacil/service-agenda-go/internal/user/entity"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrNotFound           = errors.New("usuário não encontrado")
)

// userStore is the data access needed by the service.
type userStore interface {
	FindByIdentifier(ctx context.Context, identifier, tipo string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetTipo(ctx context.Context, id int64) (string, error)
	UpdateFotoURL(ctx context.Context, id int64, fotoURL string) error
	ListFuncionarios(ctx context.Context, empresaID int64) ([]entity.Funcionario, error)
}

// empresaStore covers the company-side write of a profile update.
type empresaStore interface {
	UpdateLogoURLByUser(ctx context.Context, userID int64, logoURL string) error
}

// Service orchestrates login and profile flows.
type Service struct {
	store    userStore
	empresas empresaStore
	verifier auth.PasswordVerifier
}

func NewService(store userStore, empresas empresaStore, verifier auth.PasswordVerifier) *Service {
	if verifier == nil {
		verifier = auth.PlainVerifier{}
	}
	return &Service{store: store, empresas: empresas, verifier: verifier}
}

// Login validates credentials and returns the sanitized profile. The lookup
// matches the identifier against email, telefone or cnpj combined with tipo;
// tipo defaults to cliente when omitted. Absent rows and password mismatches
// are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, identifier, senha, tipo string) (*entity.Profile, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrInvalidCredentials
	}
	if tipo == "" {
		tipo = entity.TipoCliente
	}
	u, err := s.store.FindByIdentifier(ctx, identifier, tipo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !s.verifier.Verify(u.Senha, senha) {
		return nil, ErrInvalidCredentials
	}
	return u.Profile(), nil
}

// Profile returns the sanitized projection for the authenticated user.
func (s *Service) Profile(ctx context.Context, id int64) (*entity.Profile, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u.Profile(), nil
}

// ProfileUpdate is the partial PUT body. Which field applies depends on the
// user's tipo; the other one is ignored.
type ProfileUpdate struct {
	LogoURL *string `json:"logo_url"`
	FotoURL *string `json:"foto_url"`
}

// UpdateProfile branches on the user's tipo: company users mutate the linked
// company's logo, everyone else mutates their own photo. A body carrying
// neither field performs no write and still succeeds.
func (s *Service) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) error {
	tipo, err := s.store.GetTipo(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get tipo: %w", err)
	}
	if tipo == entity.TipoEmpresa {
		if upd.LogoURL != nil {
			if err := s.empresas.UpdateLogoURLByUser(ctx, id, *upd.LogoURL); err != nil {
				return fmt.Errorf("update logo: %w", err)
			}
		}
		return nil
	}
	if upd.FotoURL != nil {
		if err := s.store.UpdateFotoURL(ctx, id, *upd.FotoURL); err != nil {
			return fmt.Errorf("update foto: %w", err)
		}
	}
	return nil
}

// Funcionarios lists the employees of one company.
func (s *Service) Funcionarios(ctx context.Context, empresaID int64) ([]entity.Funcionario, error) {
	funcionarios, err := s.store.ListFuncionarios(ctx, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	return funcionarios, nil
}
