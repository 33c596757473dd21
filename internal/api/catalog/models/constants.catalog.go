// Package models - Constantes do motor de classificação e alocação de SKU.
package models

// Origem da classificação devolvida pelo orquestrador, em ordem de precedência.
const (
	SourceRule    = "rule"    // regra do vendedor
	SourcePrefix  = "prefix"  // prefix reconhecido no próprio texto/SKU
	SourceKeyword = "keyword" // tabela global de keywords
	SourceNone    = "none"    // sem correspondência
	SourceManual  = "manual"  // categoria informada pelo vendedor no cadastro
)

// Confiança fixa por origem. Regra do vendedor > prefix detectado > keyword global.
const (
	ConfidenceRule    = 0.9
	ConfidencePrefix  = 0.8
	ConfidenceKeyword = 0.7
	ConfidenceNone    = 0.0
)

// Escopo do contador de SKU. O caller escolhe o modo por chamada.
const (
	ScopeGlobal = "global" // chave do contador = PREFIX
	ScopeOwner  = "owner"  // chave do contador = ownerId:PREFIX
)

// Limites do prefix e do formato de SKU.
const (
	PrefixMinLen = 2
	PrefixMaxLen = 5
	SkuPadWidth  = 4 // sequência com zero à esquerda; acima de 9999 imprime na largura natural

	// DefaultPrefix é o namespace usado quando nenhuma categoria foi resolvida
	DefaultPrefix = "PRD"
)

// Limites da heurística de aprendizado de termos.
const (
	MaxLearnedTermsPerEvent = 2  // termos aprendidos por classificação aceita
	MinLearnableTermLength  = 4  // tokens menores são descartados
	MaxTermsPerRule         = 12 // teto de termos em uma regra explícita
)
