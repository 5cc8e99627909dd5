package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/database"
	"expense-tracker/internal/model"
	"expense-tracker/internal/store"

	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLength = 6
	MinNameLength     = 2
	MaxUsernameLength = 50
)

var validate = validator.New()

// 測試可覆寫
var (
	getUserByID            = store.GetUserByID
	getUserByLogin         = store.GetUserByLogin
	userExists             = store.UserExists
	createUserWithDefaults = store.CreateUserWithDefaults
	updateUserProfile      = store.UpdateUserProfile
	updateUserPassword     = store.UpdateUserPassword
)

func validEmail(email string) bool {
	return validate.Var(email, "required,email,max=255") == nil
}

// Register 建立帳號並同時建立預設分類；username 或 email 重複回傳 Conflict
func Register(ctx context.Context, db database.DB, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, apperror.Validation("username, email and password are required")
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, apperror.Validation(fmt.Sprintf("username must be at most %d characters", MaxUsernameLength))
	}
	if !validEmail(email) {
		return nil, apperror.Validation("invalid email format")
	}
	if len(password) < MinPasswordLength {
		return nil, apperror.Validation(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	exists, err := userExists(ctx, db, username, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("username or email already exists")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("Register: hash password: %w", err)
	}

	user, err := createUserWithDefaults(ctx, db, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}, model.DefaultCategories)
	if errors.Is(err, store.ErrConflict) {
		return nil, apperror.Wrap(apperror.KindConflict, "username or email already exists", err)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login 以 username 或 email 登入，成功回傳 JWT 與使用者
func Login(ctx context.Context, db database.DB, login, password string) (string, *model.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", nil, apperror.Validation("username and password are required")
	}

	user, err := getUserByLogin(ctx, db, login)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil, apperror.Unauthorized("invalid credentials")
	}
	if err != nil {
		return "", nil, err
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return "", nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := IssueAccessToken(*user, TokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("Login: issue token: %w", err)
	}
	return token, user, nil
}

// Authenticate 驗證令牌並確認使用者仍存在；失敗一律為 Forbidden
func Authenticate(ctx context.Context, db database.DB, token string) (*model.User, error) {
	claims, err := VerifyAccessToken(token)
	if err != nil {
		if errors.Is(err, errMissingSecret) {
			return nil, err
		}
		return nil, apperror.Wrap(apperror.KindForbidden, "invalid or expired token", err)
	}

	user, err := getUserByID(ctx, db, claims.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.Forbidden("user not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile 部分更新名稱（username）與 email
func UpdateProfile(ctx context.Context, db database.DB, userID int, name, email *string) (*model.User, error) {
	if name != nil {
		n := strings.TrimSpace(*name)
		if utf8.RuneCountInString(n) < MinNameLength {
			return nil, apperror.Validation(fmt.Sprintf("name must be at least %d characters", MinNameLength))
		}
		if utf8.RuneCountInString(n) > MaxUsernameLength {
			return nil, apperror.Validation(fmt.Sprintf("name must be at most %d characters", MaxUsernameLength))
		}
		name = &n
	}
	if email != nil {
		e := strings.ToLower(strings.TrimSpace(*email))
		if !validEmail(e) {
			return nil, apperror.Validation("invalid email format")
		}
		email = &e
	}

	if name != nil || email != nil {
		var n, e string
		if name != nil {
			n = *name
		}
		if email != nil {
			e = *email
		}
		taken, err := userExists(ctx, db, n, e, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.Conflict("username or email already in use")
		}
	}

	user, err := updateUserProfile(ctx, db, userID, name, email)
	switch {
	case errors.Is(err, store.ErrConflict):
		return nil, apperror.Wrap(apperror.KindConflict, "username or email already in use", err)
	case errors.Is(err, store.ErrNotFound):
		return nil, apperror.NotFound("user not found")
	case err != nil:
		return nil, err
	}
	return user, nil
}

// ChangePassword 驗證目前密碼後更新為新密碼
func ChangePassword(ctx context.Context, db database.DB, userID int, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperror.Validation("current password and new password are required")
	}
	if len(newPassword) < MinPasswordLength {
		return apperror.Validation(fmt.Sprintf("new password must be at least %d characters", MinPasswordLength))
	}

	user, err := getUserByID(ctx, db, userID)
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound("user not found")
	}
	if err != nil {
		return err
	}
	if err := ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperror.Validation("current password is incorrect")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("ChangePassword: hash password: %w", err)
	}
	if err := updateUserPassword(ctx, db, userID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperror.NotFound("user not found")
		}
		return err
	}
	return nil
}
