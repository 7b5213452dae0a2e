// Package apperror содержит статические каталоги доменных ошибок,
// сгруппированные по областям. Каждая ошибка — стабильная пара
// (код, описание); вне каталогов новые ошибки не конструируются,
// за исключением пар (поле, сообщение) из правил валидации.
package apperror

import "strength-api/internal/domain/shared"

// Ошибки, связанные с пользователем.
var (
	UserInvalidEmail             = shared.CustomError{Code: "User.InvalidEmail", Description: "Invalid email"}
	UserInvalidPassword          = shared.CustomError{Code: "User.InvalidPassword", Description: "Password is incorrect"}
	UserInvalidConfirmPassword   = shared.CustomError{Code: "User.InvalidConfirmPassword", Description: "Confirm password is not equal to password"}
	UserInvalidVerificationToken = shared.CustomError{Code: "User.InvalidVerificationToken", Description: "Invalid verification token"}
	UserNotFound                 = shared.CustomError{Code: "User.NotFound", Description: "User not found"}
	UserAlreadyExists            = shared.CustomError{Code: "User.AlreadyExists", Description: "User already exists"}
	UserAlreadyVerified          = shared.CustomError{Code: "User.AlreadyVerified", Description: "User already verified"}
	UserNotVerified              = shared.CustomError{Code: "User.NotVerified", Description: "User not verified"}
	UserNotCreated               = shared.CustomError{Code: "User.NotCreated", Description: "User not created"}
	UserVerificationEmailNotSent = shared.CustomError{Code: "User.VerificationEmailNotSent", Description: "Verification email not sent"}
)
