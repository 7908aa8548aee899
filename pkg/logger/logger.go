package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger de la aplicación.
type Config struct {
	Env   string // development -> consola legible y nivel debug; otro -> JSON y nivel info
	Level string // opcional: debug, info, warn, error; si falta se deriva de Env
}

// Logger envuelve zerolog para inyectarlo por los casos de uso y los
// middlewares sin acoplarlos al logger global.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger estructurado. En development la salida es consola legible;
// en cualquier otro entorno, JSON por stdout para el agregador.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(resolveLevel(cfg)).With().Timestamp().Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

// resolveLevel decide el nivel efectivo: el configurado si es válido, si no
// debug en development e info en el resto.
func resolveLevel(cfg Config) zerolog.Level {
	switch strings.ToLower(cfg.Level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	if cfg.Env == "development" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Info, Warn, Error, Fatal delegados a zerolog.
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
