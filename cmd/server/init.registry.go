package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anderleilucio/orcasmart-web-sub000/config"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/global"
)

// InitRegistry registra as collections do catálogo no registry global.
// Os services resolvem suas collections por nome a partir daqui.
func InitRegistry() {
	if err := initCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Falha ao inicializar as collections: %v", err)
	}
	logrus.Info("Registry de collections inicializado")
}

// initCollections registra cada collection do catálogo no RegistryCollections.
func initCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.CatalogColNames.Categories,
		global.CatalogColNames.Rules,
		global.CatalogColNames.Counters,
		global.CatalogColNames.Products,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Falha ao registrar a collection %s: %v", name, err)
			return err
		}
		if registered {
			logrus.Infof("Collection %s registrada", name)
		} else {
			logrus.Warnf("Collection %s já estava registrada", name)
		}
	}

	return nil
}
