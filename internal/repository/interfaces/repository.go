package interfaces

import (
	"context"
	"errors"

	"github.com/google/uuid"

	userdomain "strength-api/internal/domain/user"
	"strength-api/internal/domain/workout"
)

// ErrNotFound возвращается, когда сущность не найдена в хранилище.
var ErrNotFound = errors.New("entity not found")

// ErrEmailExists возвращается, когда пользователь с таким email уже существует.
// Уникальный индекс в БД — жёсткая гарантия; проверка в валидаторе — только
// оптимизация с допустимым eventual-consistency зазором.
var ErrEmailExists = errors.New("email already exists")

// ErrDuplicate возвращается при нарушении любого другого уникального
// ограничения (имена мышц/упражнений, пары мышца—упражнение).
var ErrDuplicate = errors.New("unique constraint violated")

// UserRepository определяет контракт для работы с пользователями на уровне
// хранилища. Интерфейс оперирует доменной моделью и не раскрывает деталей
// реализации (GORM, SQL и т.п.).
type UserRepository interface {
	// Create создает нового пользователя.
	// Возвращает ErrEmailExists, если email уже используется.
	Create(ctx context.Context, u *userdomain.User) error

	// GetByEmail возвращает пользователя по email.
	// Возвращает (nil, ErrNotFound), если пользователь не найден.
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)

	// GetByVerificationToken возвращает пользователя по токену подтверждения.
	// Возвращает (nil, ErrNotFound), если токен никому не принадлежит.
	GetByVerificationToken(ctx context.Context, token string) (*userdomain.User, error)

	// GetWithRolesByEmail возвращает пользователя вместе с назначенными ролями.
	GetWithRolesByEmail(ctx context.Context, email string) (*userdomain.User, error)

	// Update обновляет данные пользователя.
	// Возвращает ErrNotFound, если ни одна строка не была обновлена.
	Update(ctx context.Context, u *userdomain.User) error
}

// RoleRepository определяет контракт для чтения ролей.
type RoleRepository interface {
	// GetByName возвращает роль по имени.
	// Возвращает (nil, ErrNotFound), если роль не найдена.
	GetByName(ctx context.Context, name userdomain.RoleName) (*userdomain.Role, error)
}

// UserRoleRepository определяет контракт для назначений ролей пользователям.
type UserRoleRepository interface {
	// Create создаёт назначение роли пользователю.
	Create(ctx context.Context, ur *userdomain.UserRole) error
}

// MuscleRepository определяет контракт для работы с мышцами.
type MuscleRepository interface {
	// Update обновляет мышцу.
	// Возвращает ErrNotFound, если ни одна строка не была обновлена.
	Update(ctx context.Context, m *workout.Muscle) error
}

// MuscleExerciseRepository определяет контракт для связей мышца—упражнение.
type MuscleExerciseRepository interface {
	// GetByExerciseName возвращает существующие связи по имени упражнения
	// без учёта регистра, вместе с мышцей и упражнением.
	GetByExerciseName(ctx context.Context, exerciseName string) ([]*workout.MuscleExercise, error)

	// CreateMany выполняет bulk-вставку связей и возвращает идентификаторы
	// созданных строк. Кандидаты, чья мышца или упражнение уже существуют
	// под тем же именем (без учёта регистра), привязываются к существующей
	// строке, чтобы не плодить дубликаты имён. Пустой список созданных
	// идентификаторов означает полный сбой операции.
	CreateMany(ctx context.Context, links []*workout.MuscleExercise) ([]uuid.UUID, error)
}
