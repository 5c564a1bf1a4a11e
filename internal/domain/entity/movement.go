package entity

import (
	"strings"
	"time"
)

// Direções válidas de movimentação de estoque.
const (
	DirectionEntrada = "ENTRADA" // entrada: compras, devoluções
	DirectionSaida   = "SAIDA"   // saída: vendas, perdas
)

// NormalizeDirection converte a direção submetida no formulário para o valor
// canônico, sem diferenciar caixa. Valores fora do conjunto ENTRADA/SAIDA são
// rejeitados em vez de tratados como saída.
func NormalizeDirection(s string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case DirectionEntrada:
		return DirectionEntrada, true
	case DirectionSaida, "SAÍDA":
		return DirectionSaida, true
	}
	return "", false
}

// Movement é o registro imutável de uma mudança de estoque, com direção e
// atribuição ao usuário que a executou. Criado junto com a atualização do
// estoque, nunca alterado ou removido.
type Movement struct {
	ID        string
	UserID    string
	PartID    string
	MovedAt   time.Time
	Quantity  int // magnitude, sempre > 0; a direção carrega o sinal
	Direction string
}

// MovementWithDetails é a linha de listagem do histórico: movimento mais os
// nomes resolvidos da peça e do usuário.
type MovementWithDetails struct {
	Movement
	PartName string
	UserName string
}
