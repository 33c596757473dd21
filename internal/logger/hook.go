package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook grava log de forma assíncrona para não bloquear o atendimento
// das requisições. As entradas são bufferizadas em um channel e gravadas
// nos writers por uma goroutine dedicada.
type AsyncHook struct {
	writers    []io.Writer
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHookWithWriters cria um hook assíncrono com vários writers.
// bufferSize: capacidade do buffer de entradas (padrão 1000)
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels retorna os níveis de log tratados por este hook
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire é chamado a cada entrada de log nova.
// Nunca bloqueia: apenas coloca a entrada no channel.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook fechado: grava direto nos writers como fallback
		var data []byte
		var err error

		if entry.Logger.Formatter != nil {
			data, err = entry.Logger.Formatter.Format(entry)
		} else {
			line, strErr := entry.String()
			if strErr != nil {
				return strErr
			}
			data = []byte(line)
		}

		if err != nil {
			return err
		}

		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	// Envio não bloqueante: se o channel estiver cheio a entrada é descartada,
	// garantindo que o logging nunca trave uma requisição
	select {
	case h.entries <- entry:
	default:
	}

	return nil
}

// processEntries consome as entradas em uma goroutine dedicada.
// Tem recover para que um panic no logging nunca derrube o servidor.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Não dá para usar o logger aqui, viraria um loop.
					// Registra direto no stderr.
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] panic recuperado na goroutine de log: %v\n", r)
					debug.PrintStack()
				}
			}()

			var data []byte
			var err error

			if entry.Logger.Formatter != nil {
				data, err = entry.Logger.Formatter.Format(entry)
			} else {
				line, strErr := entry.String()
				if strErr != nil {
					return
				}
				data = []byte(line)
			}

			if err != nil {
				return
			}

			// Um writer lento ou com erro não impede os demais
			for _, writer := range h.writers {
				_, err = writer.Write(data)
				if err != nil {
					continue
				}
			}
		}()
	}
}

// Close fecha o hook e espera todas as entradas pendentes serem gravadas
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
