package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Constantes de HTTP Status Code
const (
	// Códigos de sucesso (2xx)
	StatusOK        = 200 // Operação bem sucedida
	StatusCreated   = 201 // Recurso criado com sucesso
	StatusNoContent = 204 // Sucesso sem conteúdo de resposta

	// Códigos de erro do cliente (4xx)
	StatusBadRequest      = 400 // Requisição inválida
	StatusUnauthorized    = 401 // Não autenticado
	StatusForbidden       = 403 // Sem permissão de acesso
	StatusNotFound        = 404 // Recurso não encontrado
	StatusConflict        = 409 // Conflito de dados
	StatusTooManyRequests = 429 // Requisições demais

	// Códigos de erro do servidor (5xx)
	StatusInternalServerError = 500 // Erro interno do servidor
	StatusServiceUnavailable  = 503 // Serviço indisponível
)

// Mensagens de resposta
const (
	MsgSuccess = "Operação realizada com sucesso"
	MsgCreated = "Criado com sucesso"

	MsgBadRequest      = "Requisição inválida"
	MsgUnauthorized    = "Faça login para continuar"
	MsgForbidden       = "Sem permissão de acesso"
	MsgNotFound        = "Recurso não encontrado"
	MsgConflict        = "Conflito de dados"
	MsgInternalError   = "Erro interno do sistema"
	MsgValidationError = "Dados inválidos"
	MsgDatabaseError   = "Erro ao acessar o banco de dados"
	MsgInvalidFormat   = "Formato de dados inválido"

	MsgTokenMissing = "Token de autenticação ausente"
	MsgTokenInvalid = "Token de autenticação inválido"
	MsgTokenExpired = "Sessão expirada"
)

// ErrorCode define um código de erro detalhado do sistema
type ErrorCode struct {
	Code        string // Código do erro (ex: VAL_001)
	Category    string // Categoria do erro (ex: Validation)
	SubCategory string // Subcategoria (ex: Input)
	Description string // Descrição detalhada
}

// Códigos de erro organizados por categoria
var (
	// Erros de sistema (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Erro interno do sistema",
	}

	// Erros de autenticação (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Erro relacionado ao token de autenticação",
	}

	ErrCodeAuthOwnership = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Ownership",
		Description: "Recurso pertence a outro vendedor",
	}

	// Erros de validação (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Erro nos dados de entrada",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Erro no formato dos dados",
	}

	// Erros de banco de dados (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Erro geral de banco de dados",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Erro de conexão com o banco de dados",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Erro de consulta ao banco de dados",
	}

	// Erro transitório: operação atômica falhou por contenção e pode ser
	// repetida com segurança (alocação de SKU, upsert de regra aprendida).
	ErrCodeDatabaseTransient = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		SubCategory: "Transient",
		Description: "Falha transitória por contenção, operação pode ser repetida",
	}

	// Erros de regra de negócio (BIZ_xxx)
	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Erro de estado da regra de negócio",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Erro de operação da regra de negócio",
	}
)

// Error define a estrutura de erro detalhada usada em todo o sistema
type Error struct {
	Code       ErrorCode // Código do erro
	Message    string    // Mensagem para o cliente
	StatusCode int       // HTTP status code
	Details    any       // Informações adicionais sobre o erro
}

// Error retorna a mensagem do erro
func (e *Error) Error() string {
	return e.Message
}

// Is permite comparação via errors.Is entre erros do sistema.
// Dois *Error são considerados iguais quando compartilham código e status;
// o código sozinho não basta: ErrNotFound e ErrDuplicate usam o mesmo código
// de query e se distinguem pelo status (404 vs 409).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code && e.StatusCode == t.StatusCode
}

// NewError cria um erro novo com todas as informações
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Erros sentinela do sistema
var (
	// Autenticação
	ErrTokenMissing = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrTokenInvalid = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenExpired = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)

	// Validação
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dados de entrada inválidos", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Campo obrigatório ausente", StatusBadRequest, nil)

	// Banco de dados
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Dados não encontrados", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Dados já existentes", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Erro de conexão com o banco de dados", StatusServiceUnavailable, nil)
	ErrTransient  = NewError(ErrCodeDatabaseTransient, "Falha transitória, tente novamente", StatusServiceUnavailable, nil)

	// Negócio
	ErrForbidden        = NewError(ErrCodeAuthOwnership, "Recurso pertence a outro vendedor", StatusForbidden, nil)
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Estado inválido", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Operação inválida", StatusBadRequest, nil)
)

// NewValidationError cria um erro de validação com mensagem específica
func NewValidationError(message string) error {
	return NewError(ErrCodeValidationInput, message, StatusBadRequest, nil)
}

// NewConflictError cria um erro de conflito com mensagem específica
func NewConflictError(message string) error {
	return NewError(ErrCodeDatabaseQuery, message, StatusConflict, nil)
}

// ConvertMongoError converte um erro do driver MongoDB para um erro do sistema
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Erros já convertidos passam direto
	var sysErr *Error
	if errors.As(err, &sysErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseTransient, "Falha transitória de rede ao acessar o banco", StatusServiceUnavailable, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// WriteConflict (112) indica contenção em operação atômica concorrente
		if cmdErr.Code == 112 || cmdErr.HasErrorLabel("TransientTransactionError") {
			return NewError(ErrCodeDatabaseTransient, "Conflito de escrita, operação pode ser repetida", StatusServiceUnavailable, err)
		}
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}

// IsTransient informa se o erro é transitório e a operação pode ser repetida.
// Somente esta classe de erro é elegível para retry automático interno.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransient) {
		return true
	}
	var sysErr *Error
	if errors.As(err, &sysErr) {
		return sysErr.Code.Code == ErrCodeDatabaseTransient.Code
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
