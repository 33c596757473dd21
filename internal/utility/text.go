package utility

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper remove marcas diacríticas via decomposição canônica (NFD):
// "aço" -> "aco", "elétrica" -> "eletrica"
var accentStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeText normaliza texto livre para comparação: minúsculas, sem
// acentos, pontuação vira espaço e espaços repetidos são colapsados.
// A função é idempotente e aceita string vazia sem erro.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	stripped, _, err := transform.String(accentStripper, lowered)
	if err != nil {
		// Entrada com UTF-8 inválido: segue com o texto em minúsculas
		stripped = lowered
	}

	// Tudo que não é letra ou dígito vira espaço
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	// Colapsa espaços repetidos e remove as bordas
	return strings.Join(strings.Fields(b.String()), " ")
}

// Slugify deriva um identificador estável e seguro para URL a partir de um
// rótulo: "Tintas & Vernizes" -> "tintas-vernizes"
func Slugify(label string) string {
	normalized := NormalizeText(label)
	if normalized == "" {
		return ""
	}
	return strings.ReplaceAll(normalized, " ", "-")
}

// AlphaPrefix deriva um código de prefixo a partir de um slug ou rótulo:
// pega as primeiras letras (ignorando dígitos e separadores), maiúsculas,
// truncado em maxLen caracteres. "tintas-vernizes" com maxLen 5 -> "TINTA".
func AlphaPrefix(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	normalized := NormalizeText(text)

	var b strings.Builder
	for _, r := range normalized {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() >= maxLen {
				break
			}
		}
	}
	return b.String()
}
