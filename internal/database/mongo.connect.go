package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anderleilucio/orcasmart-web-sub000/config"
	"github.com/anderleilucio/orcasmart-web-sub000/internal/logger"
)

// GetInstance inicializa e retorna um *mongo.Client usando a URI de
// conexão da configuração fornecida.
//
// A função registra e retorna erro se a conexão ou o ping falharem.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("URI de conexão com o banco está vazia")
	}

	// Opções do client
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Máximo de 50 conexões
		SetMinPoolSize(10).                 // Mantém no mínimo 10 conexões no pool
		SetConnectTimeout(5 * time.Second). // Timeout de conexão
		SetSocketTimeout(10 * time.Second)  // Timeout de envio/recebimento

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no MongoDB: %w", err)
	}

	// Verifica a conexão
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	err = client.Ping(ctxPing, nil)
	if err != nil {
		return nil, fmt.Errorf("falha no ping ao MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Conectado ao MongoDB com sucesso")
	return client, nil
}

// CloseInstance encerra a conexão do client MongoDB.
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Falha ao desconectar o client MongoDB")
		return err
	}
	logger.GetAppLogger().Info("Desconectado do MongoDB com sucesso")
	return nil
}
