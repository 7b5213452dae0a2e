package main

import (
	"log"
	"os"
	"time"

	"strength-api/internal/config"
	"strength-api/internal/database"
)

// inDocker проверяет, запущен ли скрипт внутри Docker контейнера.
func inDocker() bool {
	if os.Getenv("container") != "" {
		return true
	}
	_, err := os.Stat("/.dockerenv")
	return err == nil
}

func main() {
	log.Println("Проверка подключения к базе данных...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// DB_HOST=postgres имеет смысл только внутри docker-сети.
	// На хосте автоматически переключаемся на localhost.
	if cfg.Database.Host == "postgres" && !inDocker() {
		log.Println("Обнаружен хост 'postgres' вне Docker, использую 'localhost'")
		cfg.Database.Host = "localhost"
	}

	// В docker-режиме даем PostgreSQL время на инициализацию.
	if cfg.Database.Host == "postgres" {
		log.Println("Docker режим: убедитесь, что PostgreSQL запущен (docker-compose up -d postgres)")
		time.Sleep(2 * time.Second)
	}

	log.Printf("Подключение: host=%s port=%s user=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.DBName, cfg.Database.SSLMode)

	db, err := database.NewConnection(&cfg.Database, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия подключения: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatalf("Ошибка проверки подключения (Ping): %v", err)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatalf("Ошибка выполнения тестового запроса: %v", err)
	}
	if result != 1 {
		log.Fatalf("Неожиданный результат тестового запроса: %d", result)
	}

	// Показываем текущую версию миграций.
	migrator, err := database.NewMigrator(db)
	if err != nil {
		log.Fatalf("Ошибка создания мигратора: %v", err)
	}
	version, dirty, err := migrator.Version()
	if err != nil {
		log.Fatalf("Ошибка получения версии миграций: %v", err)
	}
	log.Printf("Версия схемы: %d (dirty=%v)", version, dirty)

	log.Println("База данных готова к работе")
}
