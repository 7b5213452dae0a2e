package user

import (
	"time"

	"github.com/google/uuid"
)

// RoleName описывает имя роли пользователя в системе.
type RoleName string

const (
	RoleUser  RoleName = "user"
	RoleAdmin RoleName = "admin"
)

// User представляет доменную модель пользователя.
//
// Модель описывает бизнес-сущность и не зависит от деталей транспорта (HTTP)
// и конкретного представления в БД. Пароль хранится как пара хэш/соль:
// хэш — MAC пароля под случайной per-user солью.
type User struct {
	ID           uuid.UUID // Уникальный идентификатор пользователя
	Email        string    // Email (уникальный логин)
	PasswordHash []byte    // Хэш пароля (MAC под солью)
	PasswordSalt []byte    // Случайная per-user соль

	VerificationToken  string     // Токен подтверждения email (высокоэнтропийная строка)
	VerifiedAt         *time.Time // Время подтверждения email (nil, если не подтверждён)
	PasswordResetToken string     // Токен сброса пароля (опционально)

	Roles []UserRole // Роли, назначенные пользователю

	CreatedAt time.Time  // Время создания
	UpdatedAt *time.Time // Время последнего обновления (nil, если не обновлялся)
}

// NewUser — фабрика для создания нового (неподтверждённого) пользователя.
// Хеширование пароля и генерация токена подтверждения выполняются
// на уровне обработчика команды до вызова этой функции.
func NewUser(email string, passwordHash, passwordSalt []byte, verificationToken string) *User {
	return &User{
		ID:                uuid.New(),
		Email:             email,
		PasswordHash:      passwordHash,
		PasswordSalt:      passwordSalt,
		VerificationToken: verificationToken,
		CreatedAt:         time.Now().UTC(),
	}
}

// IsVerified возвращает true, если email пользователя подтверждён.
func (u *User) IsVerified() bool {
	return u.VerifiedAt != nil
}

// MarkVerified фиксирует подтверждение email.
// Переход единственный и необратимый: Unverified -> Verified.
func (u *User) MarkVerified(at time.Time) {
	u.VerifiedAt = &at
	u.UpdatedAt = &at
}

// Role представляет роль, существующую в системе.
type Role struct {
	ID   uuid.UUID
	Name RoleName
}

// UserRole представляет назначение роли пользователю.
type UserRole struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Role   Role
}

// NewUserRole создаёт назначение роли пользователю.
func NewUserRole(userID uuid.UUID, role Role) *UserRole {
	return &UserRole{
		ID:     uuid.New(),
		UserID: userID,
		Role:   role,
	}
}
