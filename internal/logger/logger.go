package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers guarda as instâncias de logger por nome
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config contém a configuração de logging
	config *LogConfig

	// rootDir guarda o caminho raiz do projeto
	rootDir string
)

// Init inicializa o sistema de logging com a configuração dada
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := initRootDir(); err != nil {
		return fmt.Errorf("falha ao resolver o diretório raiz: %w", err)
	}

	// Cria o diretório de logs se não existir
	logPath := getLogPath()
	if err := os.MkdirAll(logPath, 0755); err != nil {
		return fmt.Errorf("falha ao criar o diretório de logs: %w", err)
	}

	return nil
}

// initRootDir resolve o diretório raiz do projeto
func initRootDir() error {
	if rootDir != "" {
		return nil
	}

	// Passo 1: variável de ambiente LOG_ROOT_DIR tem prioridade
	if envRootDir := os.Getenv("LOG_ROOT_DIR"); envRootDir != "" {
		// Resolve symlinks no Linux
		resolvedPath, err := filepath.EvalSymlinks(envRootDir)
		if err == nil {
			rootDir = resolvedPath
			return nil
		}
		rootDir = envRootDir
		return nil
	}

	// Passo 2: tenta pelo caminho do executável
	executable, err := os.Executable()
	if err == nil {
		// Resolve symlinks (importante quando rodando via systemd)
		resolvedExecutable, err := filepath.EvalSymlinks(executable)
		if err == nil {
			executable = resolvedExecutable
		}

		// Raiz do projeto é 2 níveis acima do diretório cmd
		// Ex: /caminho/cmd/server/main -> /caminho
		rootDir = filepath.Dir(filepath.Dir(filepath.Dir(executable)))

		// Valida o caminho procurando os diretórios logs ou config
		if _, err := os.Stat(filepath.Join(rootDir, "logs")); err == nil {
			return nil
		}
		if _, err := os.Stat(filepath.Join(rootDir, "config")); err == nil {
			return nil
		}
	}

	// Passo 3: fallback pelo working directory
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("não foi possível obter executável nem working directory: %v", err)
	}

	currentDir := wd
	for i := 0; i < 5; i++ { // Sobe no máximo 5 níveis
		if _, err := os.Stat(filepath.Join(currentDir, "logs")); err == nil {
			rootDir = currentDir
			return nil
		}
		if _, err := os.Stat(filepath.Join(currentDir, "config")); err == nil {
			rootDir = currentDir
			return nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	// Último recurso: 2 níveis acima do working directory
	rootDir = filepath.Dir(filepath.Dir(wd))
	return nil
}

// getLogPath retorna o caminho do diretório de logs
func getLogPath() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(rootDir, config.LogPath)
}

// GetLogger retorna o logger pelo nome (app, error)
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Se ainda não inicializado, usa a configuração padrão
	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Falha ao inicializar o logger: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := createLogger(name)
	loggers[name] = logger

	return logger
}

// createLogger cria um logger novo com a configuração atual
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	// Saída: writers de arquivo e stdout ficam atrás de um hook assíncrono
	// para que I/O lento de disco nunca bloqueie o atendimento das requisições
	var writers []io.Writer

	if config.Output == "file" || config.Output == "both" {
		logFile := getLogFilePath(name)
		fileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		writers = append(writers, fileWriter)
	}

	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	if len(writers) > 0 {
		asyncHook := NewAsyncHookWithWriters(writers, 1000)
		logger.AddHook(asyncHook)
		// O hook cuida de toda a escrita; descartar a saída direta evita logs duplicados
		logger.SetOutput(io.Discard)
	}

	logger.SetReportCaller(true)

	logger.WithFields(logrus.Fields{
		"log_file": getLogFilePath(name),
		"level":    logger.GetLevel().String(),
		"format":   config.Format,
		"output":   config.Output,
	}).Info("Logger inicializado")

	return logger
}

// getLogFilePath retorna o caminho do arquivo de log para o logger
func getLogFilePath(name string) string {
	logPath := getLogPath()
	var filename string

	switch name {
	case "app":
		filename = config.AppFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}

	return filepath.Join(logPath, filename)
}

// GetAppLogger retorna o logger principal da aplicação
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger retorna o logger dedicado a erros
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
