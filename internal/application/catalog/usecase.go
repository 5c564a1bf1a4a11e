package catalog

import (
	"errors"
	"reflect"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"autopecas-web/internal/application/dto"
	"autopecas-web/internal/domain"
	"autopecas-web/internal/domain/entity"
	"autopecas-web/internal/domain/repository"
	"autopecas-web/pkg/textnorm"
)

// UseCase casos de uso CRUD do catálogo de autopeças: listagem com busca,
// cadastro, leitura para edição, atualização integral e exclusão.
type UseCase struct {
	repo     repository.PartRepository
	validate *validator.Validate
}

// NewUseCase constrói o caso de uso do catálogo.
func NewUseCase(repo repository.PartRepository) *UseCase {
	v := validator.New()
	// decimal.Decimal vira float64 para as tags gte/gt; a precisão do valor
	// persistido não passa por aqui.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return &UseCase{repo: repo, validate: v}
}

// partValues campos numéricos já convertidos, na ordem em que as regras de
// negócio são verificadas: estoque, estoque mínimo e preço.
// O preço é persistido como numeric(10,2); o piso de 0.01 garante que o valor
// continua positivo após o arredondamento de escala.
type partValues struct {
	Estoque       int             `validate:"gte=0"`
	EstoqueMinimo int             `validate:"gte=0"`
	Preco         decimal.Decimal `validate:"gte=0.01"`
}

var partFieldMessages = map[string]string{
	"Estoque":       "Estoque não pode ser negativo",
	"EstoqueMinimo": "Estoque mínimo não pode ser negativo",
	"Preco":         "Preço deve ser maior que zero",
}

// parseValues converte os campos numéricos do formulário e aplica as regras de
// negócio. Falha de conversão e cada violação produzem um ValidationError com
// a mensagem a exibir, verificando na ordem dos campos: estoque, estoque
// mínimo, preço.
func (uc *UseCase) parseValues(form dto.PartForm) (*partValues, error) {
	estoque, err1 := strconv.Atoi(form.Estoque)
	minimo, err2 := strconv.Atoi(form.EstoqueMinimo)
	preco, err3 := decimal.NewFromString(form.Preco)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, domain.NewValidationError("Valores numéricos inválidos. Verifique estoque e preço.")
	}

	vals := &partValues{Estoque: estoque, EstoqueMinimo: minimo, Preco: preco}
	if err := uc.validate.Struct(vals); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			// ValidationErrors preserva a ordem dos campos da struct
			if msg, ok := partFieldMessages[vErrs[0].StructField()]; ok {
				return nil, domain.NewValidationError(msg)
			}
		}
		return nil, domain.NewValidationError("Valores numéricos inválidos. Verifique estoque e preço.")
	}
	return vals, nil
}

// List devolve as peças ordenadas por nome. O termo de busca, quando presente,
// é normalizado (caixa e acentos) antes de filtrar por nome ou número de série.
func (uc *UseCase) List(search string) ([]*entity.Part, error) {
	term := ""
	if search != "" {
		term = textnorm.Fold(search)
	}
	return uc.repo.List(term)
}

// GetByID devolve a peça ou domain.ErrNotFound.
func (uc *UseCase) GetByID(id string) (*entity.Part, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return part, nil
}

// Create valida e cadastra uma nova autopeça.
func (uc *UseCase) Create(form dto.PartForm) error {
	vals, err := uc.parseValues(form)
	if err != nil {
		return err
	}
	now := time.Now()
	part := &entity.Part{
		ID:            uuid.New().String(),
		Name:          form.Nome,
		SerialNumber:  form.NumSerie,
		Stock:         vals.Estoque,
		MinStock:      vals.EstoqueMinimo,
		Price:         vals.Preco,
		Description:   form.Descricao,
		Compatibility: form.Compatibilidade,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return uc.repo.Create(part)
}

// Update valida e sobrescreve todos os campos da peça identificada
// (full replace, não patch parcial). Peça inexistente -> domain.ErrNotFound.
func (uc *UseCase) Update(id string, form dto.PartForm) error {
	vals, err := uc.parseValues(form)
	if err != nil {
		return err
	}
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	part.Name = form.Nome
	part.SerialNumber = form.NumSerie
	part.Stock = vals.Estoque
	part.MinStock = vals.EstoqueMinimo
	part.Price = vals.Preco
	part.Description = form.Descricao
	part.Compatibility = form.Compatibilidade
	part.UpdatedAt = time.Now()
	return uc.repo.Update(part)
}

// Delete remove a peça. Histórico de movimentações vinculado resulta em
// domain.ErrPartInUse (a peça não é removida).
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
