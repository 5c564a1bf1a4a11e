package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa uma autopeça do catálogo.
// Stock nunca fica negativo: a regra é garantida na escrita (caso de uso de
// movimentação), não por constraint de banco.
type Part struct {
	ID            string
	Name          string
	SerialNumber  string
	Stock         int
	MinStock      int
	Price         decimal.Decimal
	Description   string
	Compatibility string // veículos compatíveis, texto livre
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BelowMinimum indica se o estoque atual está abaixo do mínimo configurado.
func (p *Part) BelowMinimum() bool {
	return p.Stock < p.MinStock
}
