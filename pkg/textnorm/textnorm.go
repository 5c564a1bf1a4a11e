package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold remove acentos e baixa a caixa de s, para comparação de busca:
// "Peça de Câmbio" -> "peca de cambio". Nomes de autopeças carregam
// diacríticos; a busca precisa casar com e sem acento.
func Fold(s string) string {
	// O transformer é stateful; criar um por chamada evita corrida entre requests.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
