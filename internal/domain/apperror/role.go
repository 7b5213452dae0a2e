package apperror

import "strength-api/internal/domain/shared"

// Ошибки ролей и связей пользователь—роль.
var (
	RoleNotFound       = shared.CustomError{Code: "RoleErrors.NotFound", Description: "Role not found"}
	UserRoleNotCreated = shared.CustomError{Code: "UserRoleErrors.NotCreated", Description: "UserRole not created"}
)
