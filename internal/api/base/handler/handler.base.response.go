package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/common"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/logger"
)

// JSONResponse devolve uma resposta JSON com Content-Type: application/json; charset=utf-8.
// Garante charset=utf-8 em todas as respostas para tratar corretamente acentuação.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler envolve o handler com recover para capturar panics.
// Garante que o servidor sempre devolve uma resposta ao cliente, mesmo em caso de panic.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).
				WithField("panic", fmt.Sprintf("%v", r)).
				Error("Panic recuperado no handler")
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Erro inesperado do sistema: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// SafeHandlerWrapper é o wrapper usado por handlers de domínio que não embutem o BaseHandler
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).
				WithField("panic", fmt.Sprintf("%v", r)).
				Error("Panic recuperado no handler")
			debug.PrintStack()

			JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": fmt.Sprintf("Erro inesperado do sistema: %v", r),
				"status":  "error",
			})
		}
	}()
	return fn()
}

// HandleResponse padroniza a resposta devolvida ao cliente.
// Todas as respostas da API seguem o mesmo envelope {code, message, data/details, status}.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	HandleResponse(c, data, err)
}

// HandleResponse é a versão standalone usada pelos handlers de domínio
func HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		// Erro não mapeado vira internal server error
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
