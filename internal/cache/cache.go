// Package cache предоставляет key-value хранилище временных меток с TTL.
// Используется обработчиком повторной отправки письма подтверждения
// для троттлинга отправок по email.
package cache

import "time"

// Store — контракт хранилища «ключ -> временная метка» с TTL.
// Жизненный цикл — синглтон на процесс, явно передаваемый в обработчик.
// Семантика last-write-wins: строгая согласованность между конкурентными
// запросами по одному email не гарантируется, единственное следствие
// гонки — возможное дублирующееся письмо.
type Store interface {
	// Get возвращает значение по ключу и признак его наличия.
	// Истёкшие записи считаются отсутствующими.
	Get(key string) (time.Time, bool)

	// Set сохраняет значение по ключу на время ttl.
	Set(key string, value time.Time, ttl time.Duration)
}
