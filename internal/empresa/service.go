package empresa

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agendafacil/service-agenda-go/internal/empresa/entity"
)

var ErrNotFound = errors.New("empresa não encontrada")

// empresaStore is the data access needed by the service.
type empresaStore interface {
	List(ctx context.Context) ([]entity.Empresa, error)
	GetByID(ctx context.Context, id int64) (*entity.Empresa, error)
}

// Service encapsulates read access to companies.
type Service struct {
	store empresaStore
}

func NewService(store empresaStore) *Service {
	return &Service{store: store}
}

// List returns all companies.
func (s *Service) List(ctx context.Context) ([]entity.Empresa, error) {
	empresas, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	return empresas, nil
}

// Get returns one company by id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Empresa, error) {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return e, nil
}
