package empresa

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/agendafacil/service-agenda-go/internal/empresa/entity"
)

type fakeEmpresaStore struct {
	empresas map[int64]*entity.Empresa
	err      error
}

func newFakeStore(empresas ...*entity.Empresa) *fakeEmpresaStore {
	m := make(map[int64]*entity.Empresa, len(empresas))
	for _, e := range empresas {
		m[e.ID] = e
	}
	return &fakeEmpresaStore{empresas: m}
}

func (f *fakeEmpresaStore) List(context.Context) ([]entity.Empresa, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []entity.Empresa{}
	for _, e := range f.empresas {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmpresaStore) GetByID(_ context.Context, id int64) (*entity.Empresa, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.empresas[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return e, nil
}

func newTestHandler(store *fakeEmpresaStore) *Handler {
	return NewHandler(NewService(store), zap.NewNop().Sugar())
}

func seededEmpresa() *entity.Empresa {
	logo := "https://cdn/logo.png"
	return &entity.Empresa{
		ID:        10,
		Nome:      "Barbearia Central",
		LogoURL:   &logo,
		UserID:    3,
		CreatedAt: time.Now(),
	}
}

func TestListHandler(t *testing.T) {
	h := newTestHandler(newFakeStore(seededEmpresa()))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/empresas", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var empresas []entity.Empresa
	if err := json.NewDecoder(rec.Body).Decode(&empresas); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(empresas) != 1 || empresas[0].ID != 10 {
		t.Errorf("empresas = %+v, want one record with id 10", empresas)
	}
}

func TestListHandlerEmpty(t *testing.T) {
	h := newTestHandler(newFakeStore())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/empresas", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %s, want empty JSON array", got)
	}
}

func TestGetHandler(t *testing.T) {
	h := newTestHandler(newFakeStore(seededEmpresa()))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/empresas/{id}", h.Get)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/empresas/10", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var e entity.Empresa
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.ID != 10 || e.Nome != "Barbearia Central" {
		t.Errorf("empresa = %+v, want id 10", e)
	}
}

func TestGetHandlerNotFound(t *testing.T) {
	h := newTestHandler(newFakeStore(seededEmpresa()))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/empresas/{id}", h.Get)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/empresas/999", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Empresa não encontrada") {
		t.Errorf("body = %s, want not-found message", rec.Body.String())
	}
}

func TestGetHandlerBadID(t *testing.T) {
	h := newTestHandler(newFakeStore())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/empresas/{id}", h.Get)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/empresas/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetHandlerStoreError(t *testing.T) {
	store := newFakeStore()
	store.err = sql.ErrConnDone
	h := newTestHandler(store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/empresas/{id}", h.Get)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/empresas/10", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Erro interno do servidor") {
		t.Errorf("body = %s, want generic service error", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "connection") {
		t.Error("store error detail must not leak to the caller")
	}
}
