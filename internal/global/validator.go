package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// skuPrefixRegex valida prefixos de SKU: 2 a 5 letras maiúsculas ASCII
var skuPrefixRegex = regexp.MustCompile(`^[A-Z]{2,5}$`)

// skuRegex valida o formato completo de SKU: PREFIXO-NNNN
var skuRegex = regexp.MustCompile(`^[A-Z]{2,5}-\d{4,}$`)

// InitValidator inicializa e registra os validadores customizados
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("sku_prefix", validateSkuPrefix)
	_ = Validate.RegisterValidation("sku", validateSku)
	_ = Validate.RegisterValidation("sku_scope", validateSkuScope)
}

// validateNoXSS verifica padrões perigosos de XSS no valor
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateSkuPrefix verifica se o valor é um prefixo de SKU válido (ex: "TIN", "FERR").
// Campo vazio é aceito, use "required" junto quando o prefixo for obrigatório.
func validateSkuPrefix(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return skuPrefixRegex.MatchString(value)
}

// validateSku verifica o formato completo de um SKU (ex: "TIN-0001").
// Aceita minúsculas: os services normalizam para maiúsculas antes de gravar.
func validateSku(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return skuRegex.MatchString(strings.ToUpper(value))
}

// validateSkuScope verifica o escopo do contador de SKU
func validateSkuScope(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == "owner" || value == "global"
}
