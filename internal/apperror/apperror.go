// File: internal/apperror/apperror.go
package apperror

import (
	"errors"
	"net/http"
)

// Kind 錯誤分類，決定對外的 HTTP 狀態碼
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindConflict
	KindNotFound
	KindConstraint
)

// Error 帶有分類與可對外顯示訊息的錯誤
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap 保留底層錯誤以便記錄，Message 仍為對外訊息
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func Validation(msg string) *Error   { return New(KindValidation, msg) }
func Unauthorized(msg string) *Error { return New(KindUnauthorized, msg) }
func Forbidden(msg string) *Error    { return New(KindForbidden, msg) }
func Conflict(msg string) *Error     { return New(KindConflict, msg) }
func NotFound(msg string) *Error     { return New(KindNotFound, msg) }
func Constraint(msg string) *Error   { return New(KindConstraint, msg) }

// KindOf 取出錯誤鏈中第一個 *Error 的分類，沒有則視為 internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is 判斷錯誤是否屬於指定分類
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// StatusCode 將錯誤分類對應為 HTTP 狀態碼
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict, KindConstraint:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage 回傳可以給客戶端看的訊息；internal 錯誤一律隱藏細節
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal server error"
}
