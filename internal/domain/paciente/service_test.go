package paciente

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gerenciador-leitos/api/internal/platform/db"
)

// -- Mock Repository --

// mockRepo keeps a leito -> unidade assignment so that the FK check on
// create/update and the covid join behave like the real store.
type mockRepo struct {
	pacientes    map[uuid.UUID]*Paciente
	leitoUnidade map[uuid.UUID]uuid.UUID
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		pacientes:    make(map[uuid.UUID]*Paciente),
		leitoUnidade: make(map[uuid.UUID]uuid.UUID),
	}
}

func (m *mockRepo) Create(_ context.Context, p *Paciente) error {
	if _, ok := m.leitoUnidade[p.LeitoID]; !ok {
		return db.ErrInvalidReference
	}
	p.ID = uuid.New()
	stored := *p
	m.pacientes[p.ID] = &stored
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Paciente, error) {
	p, ok := m.pacientes[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) ListAll(_ context.Context) ([]*Paciente, error) {
	result := make([]*Paciente, 0)
	for _, p := range m.pacientes {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockRepo) ListCovidByUnidade(_ context.Context, unidadeID uuid.UUID) ([]*Paciente, error) {
	result := make([]*Paciente, 0)
	for _, p := range m.pacientes {
		if p.Covid19 != "Sim" {
			continue
		}
		if m.leitoUnidade[p.LeitoID] == unidadeID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, p *Paciente) (int64, error) {
	if _, ok := m.pacientes[p.ID]; !ok {
		return 0, nil
	}
	if _, ok := m.leitoUnidade[p.LeitoID]; !ok {
		return 0, db.ErrInvalidReference
	}
	stored := *p
	m.pacientes[p.ID] = &stored
	return 1, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.pacientes[id]; !ok {
		return 0, nil
	}
	delete(m.pacientes, id)
	return 1, nil
}

// -- Tests --

func validCreate(leitoID uuid.UUID) *CreateRequest {
	return &CreateRequest{
		Nome:     "João da Silva",
		Sexo:     "M",
		Idade:    "45",
		Email:    "joao@gmail.com",
		Telefone: "84999990000",
		Covid19:  "Sim",
		LeitoID:  leitoID,
	}
}

func TestService_CreateThenGet(t *testing.T) {
	repo := newMockRepo()
	leitoID := uuid.New()
	repo.leitoUnidade[leitoID] = uuid.New()
	svc := NewService(repo)

	req := validCreate(leitoID)
	id, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Nome != req.Nome || p.Sexo != req.Sexo || p.Idade != req.Idade ||
		p.Email != req.Email || p.Telefone != req.Telefone ||
		p.Covid19 != req.Covid19 || p.LeitoID != req.LeitoID {
		t.Errorf("record does not match payload: %+v", p)
	}
}

func TestService_Create_MissingLeito(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.Create(context.Background(), validCreate(uuid.New()))
	if !errors.Is(err, db.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}

func TestService_Create_MissingField(t *testing.T) {
	repo := newMockRepo()
	leitoID := uuid.New()
	repo.leitoUnidade[leitoID] = uuid.New()
	svc := NewService(repo)

	req := validCreate(leitoID)
	req.Telefone = ""
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestService_ListCovidByUnidade(t *testing.T) {
	repo := newMockRepo()
	unidadeA := uuid.New()
	unidadeB := uuid.New()
	leitoA := uuid.New()
	leitoB := uuid.New()
	repo.leitoUnidade[leitoA] = unidadeA
	repo.leitoUnidade[leitoB] = unidadeB
	svc := NewService(repo)

	positive := validCreate(leitoA)
	positiveID, err := svc.Create(context.Background(), positive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	negative := validCreate(leitoA)
	negative.Covid19 = "Não"
	if _, err := svc.Create(context.Background(), negative); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	otherFacility := validCreate(leitoB)
	if _, err := svc.Create(context.Background(), otherFacility); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.ListCovidByUnidade(context.Background(), unidadeA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result[0].ID != positiveID {
		t.Fatalf("expected exactly the positive patient of unidade A, got %d records", len(result))
	}

	// Membership follows the current record: moving the patient's bed to
	// another facility removes them from the next query.
	moved := *result[0]
	moved.LeitoID = leitoB
	if err := svc.Update(context.Background(), &moved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err = svc.ListCovidByUnidade(context.Background(), unidadeA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected no patients after bed reassignment, got %d", len(result))
	}
}

func TestService_ListCovidByUnidade_UnknownUnidade(t *testing.T) {
	svc := NewService(newMockRepo())
	result, err := svc.ListCovidByUnidade(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected empty result for unknown unidade, got error %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("expected empty slice, got %v", result)
	}
}

func TestService_Update_ReplacesAllFields(t *testing.T) {
	repo := newMockRepo()
	leitoID := uuid.New()
	repo.leitoUnidade[leitoID] = uuid.New()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), validCreate(leitoID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := &Paciente{
		ID:       id,
		Nome:     "Maria Souza",
		Sexo:     "F",
		Idade:    "60",
		Email:    "maria@gmail.com",
		Telefone: "84988887777",
		Covid19:  "Não",
		LeitoID:  leitoID,
	}
	if err := svc.Update(context.Background(), updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *p != *updated {
		t.Errorf("expected full replacement, got %+v", p)
	}
}

func TestService_Update_MissingRowSucceeds(t *testing.T) {
	svc := NewService(newMockRepo())
	p := &Paciente{
		ID: uuid.New(), Nome: "X", Sexo: "M", Idade: "30",
		Email: "x@b.com", Telefone: "84", Covid19: "Não", LeitoID: uuid.New(),
	}
	if err := svc.Update(context.Background(), p); err != nil {
		t.Errorf("expected lenient update to succeed, got %v", err)
	}
}

func TestService_DeleteThenGet(t *testing.T) {
	repo := newMockRepo()
	leitoID := uuid.New()
	repo.leitoUnidade[leitoID] = uuid.New()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), validCreate(leitoID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), id); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
