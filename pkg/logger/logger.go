package logger

import "log"

// Logger описывает минимальный интерфейс структурированного логгера
// для использования в middleware и инфраструктурных сервисах.
// Реализацию можно заменить на zap/zerolog без изменения интерфейса.
type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type stdLogger struct{}

// Default возвращает логгер на базе стандартного log.Printf.
func Default() Logger {
	return &stdLogger{}
}

func (l *stdLogger) Info(msg string, fields map[string]any) {
	log.Printf("INFO: %s %v", msg, fields)
}

func (l *stdLogger) Error(msg string, fields map[string]any) {
	log.Printf("ERROR: %s %v", msg, fields)
}
