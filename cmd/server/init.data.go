package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anderleilucio/orcasmart-web-sub000/internal/database"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
)

// InitDefaultData prepara o banco para o primeiro uso quando INITMODE está
// ligado: cria os índices únicos que fecham as janelas de corrida do motor
// (slug/prefix por owner, termo aprendido por owner, chave do contador, SKU
// por owner). Fora do INITMODE assume que os índices já existem.
func InitDefaultData() {
	if !global.ServerConfig.InitMode {
		logrus.Info("INITMODE desligado, pulando bootstrap de índices")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.CreateCatalogIndexes(ctx, db); err != nil {
		logrus.Fatalf("Falha ao criar os índices do catálogo: %v", err)
	}
	logrus.Info("Índices do catálogo criados")
}
