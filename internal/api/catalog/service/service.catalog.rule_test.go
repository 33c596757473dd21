// Package catalogsvc - Testes da heurística de aprendizado de termos.
package catalogsvc

import (
	"testing"
)

func TestExtractLearnableTerms_Heuristica(t *testing.T) {
	s := &RuleService{}

	// Tokens curtos e stopwords caem; sobram no máximo 2 termos
	terms := s.ExtractLearnableTerms("Tinta Acrílica Premium para Parede 18L")
	if len(terms) != 2 {
		t.Fatalf("esperava 2 termos, veio %v", terms)
	}
	if terms[0] != "tinta" || terms[1] != "acrilica" {
		t.Errorf("termos = %v, esperava [tinta acrilica]", terms)
	}
}

func TestExtractLearnableTerms_FiltraStopwordsETokensCurtos(t *testing.T) {
	s := &RuleService{}

	// "cal" tem 3 letras, "para"/"tipo" são stopwords
	terms := s.ExtractLearnableTerms("Cal tipo para obra")
	if len(terms) != 1 || terms[0] != "obra" {
		t.Errorf("termos = %v, esperava [obra]", terms)
	}
}

func TestExtractLearnableTerms_Vazio(t *testing.T) {
	s := &RuleService{}

	if terms := s.ExtractLearnableTerms(""); terms != nil {
		t.Errorf("nome vazio tinha que devolver nil, veio %v", terms)
	}
	if terms := s.ExtractLearnableTerms("de em 1L"); len(terms) != 0 {
		t.Errorf("só tokens curtos tinha que devolver vazio, veio %v", terms)
	}
}

func TestExtractLearnableTerms_Normaliza(t *testing.T) {
	s := &RuleService{}

	terms := s.ExtractLearnableTerms("VÁLVULA Esfera")
	if len(terms) != 2 || terms[0] != "valvula" || terms[1] != "esfera" {
		t.Errorf("termos = %v, esperava [valvula esfera] normalizados", terms)
	}
}
