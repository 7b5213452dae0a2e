//go:build integration
// +build integration

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	appcfg "strength-api/internal/config"
	"strength-api/internal/database"
	"strength-api/internal/server"
)

// testDB хранит подключение текущего теста для helpers ниже.
var testDB *database.DB

// NewTestRouter создает новый экземпляр gin.Engine для интеграционных тестов.
// Использует отдельную тестовую БД, если задана переменная окружения TEST_DB_NAME.
// SMTP_HOST должен указывать на локальный dev-почтовик (например, mailhog),
// иначе регистрация завершится ошибкой отправки письма.
func NewTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	rootDir, err := findProjectRoot()
	if err != nil {
		t.Fatalf("find project root: %v", err)
	}
	if err := os.Chdir(rootDir); err != nil {
		t.Fatalf("chdir to project root: %v", err)
	}

	cfg, err := appcfg.Load()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}

	// Если указано имя тестовой БД — переопределяем его в конфиге.
	if testName := os.Getenv("TEST_DB_NAME"); testName != "" {
		cfg.Database.DBName = testName
	}

	db, err := database.NewConnection(&cfg.Database, cfg.AppEnv)
	if err != nil {
		t.Fatalf("db connection: %v", err)
	}

	// Применяем миграции и очищаем данные перед каждым тестом.
	if err := MigrateDatabase(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}
	if err := clearData(db); err != nil {
		t.Fatalf("clear data: %v", err)
	}

	testDB = db
	t.Cleanup(func() {
		testDB = nil
		_ = db.Close()
	})

	srv := server.NewServer(cfg, db)
	return srv.GetRouter()
}

// findProjectRoot находит корень проекта по файлу go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// clearData очищает данные перед тестом. Справочник ролей,
// заполняемый миграцией, не трогаем.
func clearData(db *database.DB) error {
	return db.Exec(
		"TRUNCATE TABLE muscle_exercises, exercises, muscles, user_roles, users RESTART IDENTITY CASCADE",
	).Error
}

// VerifyUserEmailForTests форсирует подтверждение email в БД:
// в тестах токен из письма недоступен.
func VerifyUserEmailForTests(t *testing.T, email string) {
	t.Helper()

	err := testDB.Exec(
		"UPDATE users SET verified_at = NOW(), updated_at = NOW() WHERE email = ?", email,
	).Error
	if err != nil {
		t.Fatalf("verify user email: %v", err)
	}
}

// VerificationTokenForTests возвращает токен подтверждения пользователя из БД.
func VerificationTokenForTests(t *testing.T, email string) string {
	t.Helper()

	var token string
	err := testDB.Raw(
		"SELECT verification_token FROM users WHERE email = ?", email,
	).Scan(&token).Error
	if err != nil {
		t.Fatalf("read verification token: %v", err)
	}
	if token == "" {
		t.Fatalf("no verification token for %s", email)
	}
	return token
}

// GrantAdminForTests назначает пользователю роль admin напрямую в БД.
func GrantAdminForTests(t *testing.T, email string) {
	t.Helper()

	err := testDB.Exec(`
		INSERT INTO user_roles (id, user_id, role_id)
		SELECT gen_random_uuid(), u.id, r.id
		FROM users u, roles r
		WHERE u.email = ? AND r.name = 'admin'
		ON CONFLICT DO NOTHING`, email,
	).Error
	if err != nil {
		t.Fatalf("grant admin role: %v", err)
	}
}

// MuscleIDForTests возвращает идентификатор мышцы по имени.
func MuscleIDForTests(t *testing.T, name string) string {
	t.Helper()

	var id string
	err := testDB.Raw(
		"SELECT id FROM muscles WHERE LOWER(name) = LOWER(?)", name,
	).Scan(&id).Error
	if err != nil {
		t.Fatalf("read muscle id: %v", err)
	}
	if id == "" {
		t.Fatalf("muscle %q not found", name)
	}
	return id
}
