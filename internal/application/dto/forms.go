package dto

// Formulários HTML da aplicação. Os campos numéricos chegam como texto e são
// convertidos/validados nos casos de uso; as tags form correspondem aos
// atributos name dos inputs.

// LoginForm formulário de autenticação.
type LoginForm struct {
	Email string `form:"email"`
	Senha string `form:"senha"`
}

// PartForm formulário de cadastro/edição de autopeça (mesmo conjunto de campos
// para add e update).
type PartForm struct {
	Nome            string `form:"nome_peca"`
	Descricao       string `form:"descricao"`
	NumSerie        string `form:"num_serie"`
	Compatibilidade string `form:"compatibilidade"`
	Estoque         string `form:"estoque"`
	EstoqueMinimo   string `form:"estoque_minimo"`
	Preco           string `form:"preco"`
}

// MovementForm formulário de movimentação de estoque. Data vazia assume o
// momento da submissão.
type MovementForm struct {
	PecaID     string `form:"id_peca"`
	Quantidade string `form:"quantidade"`
	Tipo       string `form:"tipo_movimentacao"`
	Data       string `form:"data"`
}
