// Package catalogsvc - Orquestrador de classificação.
//
// Ordem de curto-circuito da sugestão: regra do vendedor → prefix reconhecido
// no texto → keyword global → nenhuma. "Sem correspondência" é resposta normal
// (source none, confiança 0), nunca erro.
package catalogsvc

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/dto"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/api/catalog/models"
)

// leadingPrefixPattern reconhece um token inicial de 2 a 5 letras seguido de
// separador ou dígito: a forma de um SKU parcial tipo "ELE-" ou "tin0042".
var leadingPrefixPattern = regexp.MustCompile(`^([A-Za-z]{2,5})(?:[-_]|[0-9])`)

// Suggestion é o resultado do orquestrador.
// Category e Prefix ficam vazios quando Source == "none".
type Suggestion struct {
	Category    string
	Prefix      string
	Source      string
	Confidence  float64
	MatchedTerm string
}

// SuggestService compõe regras do vendedor, detecção de prefix e keywords.
type SuggestService struct {
	Rules      *RuleService
	Categories *CategoryService
}

// NewSuggestService cria um SuggestService novo.
func NewSuggestService() (*SuggestService, error) {
	rules, err := NewRuleService()
	if err != nil {
		return nil, fmt.Errorf("criar RuleService: %w", err)
	}
	categories, err := NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("criar CategoryService: %w", err)
	}
	return &SuggestService{Rules: rules, Categories: categories}, nil
}

// suggestText escolhe o texto de entrada: primeiro não vazio entre name,
// filename e sku.
func suggestText(input *dto.SuggestInput) string {
	for _, candidate := range []string{input.Name, input.Filename, input.SKU} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

// DetectPrefix extrai um prefix candidato do início do texto (token de 2 a 5
// letras seguido de separador ou dígito), em maiúsculas. Vazio quando o texto
// não tem essa forma.
func DetectPrefix(text string) string {
	match := leadingPrefixPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return ""
	}
	return strings.ToUpper(match[1])
}

// Suggest devolve a tupla de sugestão para o texto do input.
// Com ownerID vazio só os caminhos globais (prefix da tabela, keyword) valem.
func (s *SuggestService) Suggest(ctx context.Context, ownerID string, input *dto.SuggestInput) (*Suggestion, error) {
	text := suggestText(input)
	if text == "" {
		return &Suggestion{Source: models.SourceNone, Confidence: models.ConfidenceNone}, nil
	}

	// 1. Regra do vendedor
	if ownerID != "" {
		match, err := s.Rules.ClassifyByRule(ctx, ownerID, text)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return &Suggestion{
				Category:    match.Category,
				Prefix:      match.Prefix,
				Source:      models.SourceRule,
				Confidence:  match.Confidence,
				MatchedTerm: match.MatchedTerm,
			}, nil
		}
	}

	// 2. Prefix reconhecível no próprio texto (SKU parcial)
	// Cada campo do input é candidato: um SKU "ELE-0042" pode vir no campo sku
	// enquanto o name é texto livre.
	for _, candidate := range []string{input.SKU, input.Name, input.Filename} {
		prefix := DetectPrefix(candidate)
		if prefix == "" {
			continue
		}
		category, known, err := s.resolvePrefix(ctx, ownerID, prefix)
		if err != nil {
			return nil, err
		}
		if known {
			return &Suggestion{
				Category:   category,
				Prefix:     prefix,
				Source:     models.SourcePrefix,
				Confidence: models.ConfidencePrefix,
			}, nil
		}
	}

	// 3. Tabela global de keywords
	if match := ClassifyByKeyword(text); match != nil {
		return &Suggestion{
			Category:    match.Category,
			Prefix:      match.Prefix,
			Source:      models.SourceKeyword,
			Confidence:  match.Confidence,
			MatchedTerm: match.MatchedTerm,
		}, nil
	}

	// 4. Sem correspondência: resposta válida, não erro
	return &Suggestion{Source: models.SourceNone, Confidence: models.ConfidenceNone}, nil
}

// resolvePrefix verifica se o prefix é conhecido: nas categorias do vendedor
// quando há owner, senão na tabela global. Devolve a categoria associada.
func (s *SuggestService) resolvePrefix(ctx context.Context, ownerID, prefix string) (string, bool, error) {
	if ownerID != "" {
		prefixes, err := s.Categories.PrefixMap(ctx, ownerID)
		if err != nil {
			return "", false, err
		}
		if category, ok := prefixes[prefix]; ok {
			return category, true, nil
		}
		return "", false, nil
	}

	if category, ok := GlobalPrefixes()[prefix]; ok {
		return category, true, nil
	}
	return "", false, nil
}

// ToResponse converte a Suggestion para o DTO de resposta da API.
// Category/Prefix viram nil no caminho none, distinguível de string vazia.
func (sg *Suggestion) ToResponse() *dto.SuggestResponse {
	resp := &dto.SuggestResponse{
		Source:      sg.Source,
		Confidence:  sg.Confidence,
		MatchedTerm: sg.MatchedTerm,
	}
	if sg.Source != models.SourceNone {
		if sg.Category != "" {
			resp.Category = &sg.Category
		}
		if sg.Prefix != "" {
			resp.Prefix = &sg.Prefix
		}
	}
	return resp
}
