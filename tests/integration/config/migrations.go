//go:build integration
// +build integration

package config

import (
	"strength-api/internal/database"
)

// MigrateDatabase применяет все миграции к тестовой базе данных.
// ВАЖНО: мигратор не закрываем — при WithInstance он разделяет
// подключение с db, которое используется дальше в тестах.
func MigrateDatabase(db *database.DB) error {
	migrator, err := database.NewMigrator(db)
	if err != nil {
		return err
	}

	// Миграции могут быть уже применены — ErrNoChange не ошибка.
	if err := migrator.Up(); err != nil && err != database.ErrNoChange {
		return err
	}

	return nil
}
