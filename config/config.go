package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration contém as informações estáticas necessárias para rodar a aplicação.
// Toda configuração vem de variáveis de ambiente, com um arquivo .env por ambiente.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Modo de inicialização (cria índices e dados padrão)
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Endereço do servidor
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Segredo para validação dos tokens JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI de conexão com o banco de dados
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Nome do banco de dados do catálogo
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origens permitidas (separadas por vírgula, * = todas)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Permite envio de credenciais
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Máximo de requisições por janela (0 = desabilita)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Duração da janela (segundos)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Liga/desliga o rate limiting
}

// getEnvPath retorna o caminho do arquivo env de acordo com o ambiente
func getEnvPath() string {
	// Por padrão usa o ambiente de desenvolvimento
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Procura o diretório config
	currentDir, err := os.Getwd()
	if err != nil {
		// Usa fmt.Printf porque o logger pode não estar iniciado aqui
		fmt.Printf("Não foi possível obter o diretório atual: %v\n", err)
		return ""
	}

	// Procura o diretório config/env subindo na árvore
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Sobe para o diretório pai
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig lê a configuração a partir do arquivo env do ambiente atual
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Usa fmt.Printf porque o logger pode não estar iniciado aqui
		fmt.Printf("Diretório config/env não encontrado\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Usa fmt.Printf porque o logger pode não estar iniciado aqui
		fmt.Printf("Não foi possível carregar o arquivo env em %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Erro ao fazer parse da configuração: %+v\n", err)
		return nil
	}

	return &cfg
}
