package catalog_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopecas-web/internal/application/catalog"
	"autopecas-web/internal/application/dto"
	"autopecas-web/internal/domain"
	"autopecas-web/internal/domain/entity"
)

// fakePartRepo repositório de autopeças em memória para os testes do caso de uso.
type fakePartRepo struct {
	parts      map[string]*entity.Part
	lastSearch string
	inUse      map[string]bool
}

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{parts: map[string]*entity.Part{}, inUse: map[string]bool{}}
}

func (f *fakePartRepo) Create(part *entity.Part) error {
	f.parts[part.ID] = part
	return nil
}

func (f *fakePartRepo) GetByID(id string) (*entity.Part, error) {
	return f.parts[id], nil
}

func (f *fakePartRepo) GetByIDForUpdate(id string) (*entity.Part, error) {
	return f.parts[id], nil
}

func (f *fakePartRepo) List(search string) ([]*entity.Part, error) {
	f.lastSearch = search
	var out []*entity.Part
	for _, p := range f.parts {
		if search == "" || strings.Contains(strings.ToLower(p.Name), search) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakePartRepo) Update(part *entity.Part) error {
	f.parts[part.ID] = part
	return nil
}

func (f *fakePartRepo) UpdateStock(id string, stock int) error {
	f.parts[id].Stock = stock
	return nil
}

func (f *fakePartRepo) Delete(id string) error {
	if f.inUse[id] {
		return domain.ErrPartInUse
	}
	delete(f.parts, id)
	return nil
}

func validForm() dto.PartForm {
	return dto.PartForm{
		Nome:            "Filtro de Óleo",
		Descricao:       "Filtro de óleo do motor",
		NumSerie:        "FO-1234",
		Compatibilidade: "Gol 1.0, Onix 1.4",
		Estoque:         "10",
		EstoqueMinimo:   "5",
		Preco:           "149.90",
	}
}

func TestCreate_PersisteCamposConvertidos(t *testing.T) {
	repo := newFakePartRepo()
	uc := catalog.NewUseCase(repo)

	require.NoError(t, uc.Create(validForm()))
	require.Len(t, repo.parts, 1)

	var part *entity.Part
	for _, p := range repo.parts {
		part = p
	}
	assert.NotEmpty(t, part.ID)
	assert.Equal(t, "Filtro de Óleo", part.Name)
	assert.Equal(t, "FO-1234", part.SerialNumber)
	assert.Equal(t, 10, part.Stock)
	assert.Equal(t, 5, part.MinStock)
	assert.True(t, part.Price.Equal(decimal.RequireFromString("149.90")),
		"preço persistido deve manter o valor do formulário, obtido: %s", part.Price)
	assert.False(t, part.CreatedAt.IsZero())
}

func TestCreate_ValoresInvalidos(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.PartForm)
		message string
	}{
		{
			name:    "estoque não numérico",
			mutate:  func(f *dto.PartForm) { f.Estoque = "dez" },
			message: "Valores numéricos inválidos. Verifique estoque e preço.",
		},
		{
			name:    "preço não numérico",
			mutate:  func(f *dto.PartForm) { f.Preco = "abc" },
			message: "Valores numéricos inválidos. Verifique estoque e preço.",
		},
		{
			name:    "estoque negativo",
			mutate:  func(f *dto.PartForm) { f.Estoque = "-1" },
			message: "Estoque não pode ser negativo",
		},
		{
			name:    "estoque mínimo negativo",
			mutate:  func(f *dto.PartForm) { f.EstoqueMinimo = "-3" },
			message: "Estoque mínimo não pode ser negativo",
		},
		{
			name:    "preço zero",
			mutate:  func(f *dto.PartForm) { f.Preco = "0" },
			message: "Preço deve ser maior que zero",
		},
		{
			name:    "preço negativo",
			mutate:  func(f *dto.PartForm) { f.Preco = "-10.50" },
			message: "Preço deve ser maior que zero",
		},
		{
			name:    "preço que arredondaria para zero na escala de centavos",
			mutate:  func(f *dto.PartForm) { f.Preco = "0.001" },
			message: "Preço deve ser maior que zero",
		},
		{
			name: "estoque negativo vem antes do preço inválido",
			mutate: func(f *dto.PartForm) {
				f.Estoque = "-1"
				f.Preco = "0"
			},
			message: "Estoque não pode ser negativo",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakePartRepo()
			uc := catalog.NewUseCase(repo)

			form := validForm()
			tc.mutate(&form)

			err := uc.Create(form)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.message, vErr.Message)
			assert.Empty(t, repo.parts, "peça inválida não pode ser persistida")
		})
	}
}

func TestList_NormalizaTermoDeBusca(t *testing.T) {
	repo := newFakePartRepo()
	uc := catalog.NewUseCase(repo)

	_, err := uc.List("Filtro Óleo")
	require.NoError(t, err)
	assert.Equal(t, "filtro oleo", repo.lastSearch,
		"o termo deve chegar ao repositório sem acentos e em minúsculas")

	_, err = uc.List("")
	require.NoError(t, err)
	assert.Equal(t, "", repo.lastSearch)
}

func TestGetByID_NaoEncontrada(t *testing.T) {
	uc := catalog.NewUseCase(newFakePartRepo())

	_, err := uc.GetByID("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_SobrescreveTodosOsCampos(t *testing.T) {
	repo := newFakePartRepo()
	uc := catalog.NewUseCase(repo)

	require.NoError(t, uc.Create(validForm()))
	var id string
	for pid := range repo.parts {
		id = pid
	}

	form := dto.PartForm{
		Nome:            "Filtro de Ar",
		Descricao:       "",
		NumSerie:        "FA-9999",
		Compatibilidade: "",
		Estoque:         "2",
		EstoqueMinimo:   "1",
		Preco:           "99.00",
	}
	require.NoError(t, uc.Update(id, form))

	part := repo.parts[id]
	assert.Equal(t, "Filtro de Ar", part.Name)
	assert.Equal(t, "FA-9999", part.SerialNumber)
	assert.Equal(t, 2, part.Stock)
	assert.Equal(t, 1, part.MinStock)
	assert.Empty(t, part.Description, "update é substituição integral, não patch")
	assert.Empty(t, part.Compatibility)
}

func TestUpdate_PecaInexistente(t *testing.T) {
	uc := catalog.NewUseCase(newFakePartRepo())

	err := uc.Update("inexistente", validForm())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_ValoresInvalidosNaoAlteramAPeca(t *testing.T) {
	repo := newFakePartRepo()
	uc := catalog.NewUseCase(repo)

	require.NoError(t, uc.Create(validForm()))
	var id string
	for pid := range repo.parts {
		id = pid
	}

	form := validForm()
	form.Preco = "0"
	err := uc.Update(id, form)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 10, repo.parts[id].Stock, "peça deve permanecer intacta após validação falhar")
}

func TestDelete_PecaComMovimentacoes(t *testing.T) {
	repo := newFakePartRepo()
	uc := catalog.NewUseCase(repo)

	require.NoError(t, uc.Create(validForm()))
	var id string
	for pid := range repo.parts {
		id = pid
	}
	repo.inUse[id] = true

	err := uc.Delete(id)
	assert.ErrorIs(t, err, domain.ErrPartInUse)
	assert.Len(t, repo.parts, 1, "peça com histórico não pode ser removida")

	repo.inUse[id] = false
	require.NoError(t, uc.Delete(id))
	assert.Empty(t, repo.parts)
}
