package main

import (
	"github.com/sirupsen/logrus"

	"github.com/anderleilucio/orcasmart-web-sub000/config"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/database"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
)

// InitGlobal inicializa as variáveis globais da aplicação.
func InitGlobal() {
	initValidator()
	initConfig()
	initDatabaseMongoDB()
}

// initValidator registra os validadores customizados (no_xss, sku, sku_prefix, sku_scope).
func initValidator() {
	global.InitValidator()
	logrus.Info("Validator inicializado")
}

// initConfig carrega a configuração do servidor a partir do env do ambiente.
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Falha ao inicializar a configuração: config é nil")
	}
	logrus.Info("Configuração do servidor carregada")
}

// initDatabaseMongoDB abre a conexão com o MongoDB e registra o database.
func initDatabaseMongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Falha ao conectar no MongoDB: %v", err)
	}

	dbName := global.ServerConfig.MongoDB_DBName
	if _, err := global.RegistryDatabase.Register(dbName, global.MongoDB_Session.Database(dbName)); err != nil {
		logrus.Fatalf("Falha ao registrar o database %s: %v", dbName, err)
	}
	logrus.Info("Conexão com o MongoDB inicializada")
}
