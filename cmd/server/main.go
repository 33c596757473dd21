package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/logger"
)

// initLogger inicializa o sistema de log da aplicação inteira.
func initLogger() {
	// O logger lê as variáveis de ambiente para se configurar
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Falha ao inicializar o logger: %v", err))
	}
	logger.GetAppLogger().Info("Sistema de log inicializado")
}

// mainThread inicializa e roda o servidor Fiber.
func mainThread() {
	app, err := InitFiberApp()
	if err != nil {
		logger.GetAppLogger().Fatalf("Falha ao montar o app Fiber: %v", err)
	}

	address := global.ServerConfig.Address
	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Iniciando o servidor Fiber")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Erro no Listen do Fiber: %v", err)
	}
}

func main() {
	initLogger()

	// Variáveis globais: validator, config, conexão MongoDB
	InitGlobal()

	// Registry das collections do catálogo
	InitRegistry()

	// Índices e dados padrão (INITMODE)
	InitDefaultData()

	mainThread()
}
