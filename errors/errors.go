// Package errors 提供带分类与稳定错误码的应用错误
package errors

import (
	stdErrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorType 错误分类
// 调用方按分类决定如何对外呈现（冲突、未找到、失败等）
type ErrorType string

const (
	TypeFailure    ErrorType = "FAILURE"
	TypeUnexpected ErrorType = "UNEXPECTED"
	TypeValidation ErrorType = "VALIDATION"
	TypeConflict   ErrorType = "CONFLICT"
	TypeNotFound   ErrorType = "NOT_FOUND"
)

// ErrorCode 错误代码类型，同一错误码在各版本间保持稳定
type ErrorCode string

// 预定义错误代码
const (
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// IError 错误接口
type IError interface {
	error

	// 获取错误分类
	Type() ErrorType

	// 获取错误代码
	Code() ErrorCode

	// 获取错误消息
	Message() string

	// 获取原始错误
	Cause() error

	// 获取错误详情
	Details() map[string]any

	// 获取堆栈信息（仅包装错误时捕获）
	Stack() string

	// 是否为指定错误
	Is(target error) bool

	// 添加上下文
	WithContext(key string, value any) IError
}

// AppError 应用错误实现
type AppError struct {
	typ     ErrorType
	code    ErrorCode
	message string
	cause   error
	details map[string]any
	stack   string
}

// NewError 创建新错误
func NewError(typ ErrorType, code ErrorCode, message string) IError {
	return &AppError{
		typ:     typ,
		code:    code,
		message: message,
		details: make(map[string]any),
	}
}

// Failure 创建失败类错误
func Failure(code ErrorCode, message string) IError {
	return NewError(TypeFailure, code, message)
}

// Conflict 创建冲突类错误
func Conflict(code ErrorCode, message string) IError {
	return NewError(TypeConflict, code, message)
}

// NotFound 创建未找到类错误
func NotFound(code ErrorCode, message string) IError {
	return NewError(TypeNotFound, code, message)
}

// Validation 创建验证类错误
func Validation(code ErrorCode, message string) IError {
	return NewError(TypeValidation, code, message)
}

// WrapError 包装错误
func WrapError(err error, typ ErrorType, code ErrorCode, message string) IError {
	if err == nil {
		return nil
	}

	return &AppError{
		typ:     typ,
		code:    code,
		message: message,
		cause:   err,
		details: make(map[string]any),
		stack:   captureStack(),
	}
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Type 获取错误分类
func (e *AppError) Type() ErrorType {
	return e.typ
}

// Code 获取错误代码
func (e *AppError) Code() ErrorCode {
	return e.code
}

// Message 获取错误消息
func (e *AppError) Message() string {
	return e.message
}

// Cause 获取原始错误
func (e *AppError) Cause() error {
	return e.cause
}

// Details 获取错误详情的副本
func (e *AppError) Details() map[string]any {
	return copyMap(e.details)
}

// Stack 获取堆栈信息
func (e *AppError) Stack() string {
	return e.stack
}

// Is 按错误码匹配，错误码相同即视为同一错误
func (e *AppError) Is(target error) bool {
	if target == nil {
		return false
	}

	if appErr, ok := target.(*AppError); ok {
		return e.code == appErr.code
	}

	if e.cause != nil {
		return stdErrors.Is(e.cause, target)
	}

	return false
}

// Unwrap 解包错误（支持 errors.Unwrap）
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithContext 添加上下文，返回新错误，原错误保持不变
func (e *AppError) WithContext(key string, value any) IError {
	newDetails := copyMap(e.details)
	newDetails[key] = value

	return &AppError{
		typ:     e.typ,
		code:    e.code,
		message: e.message,
		cause:   e.cause,
		details: newDetails,
		stack:   e.stack,
	}
}

// IsNotFound 检查是否为未找到类错误
func IsNotFound(err error) bool {
	return IsErrorType(err, TypeNotFound)
}

// IsConflict 检查是否为冲突类错误
func IsConflict(err error) bool {
	return IsErrorType(err, TypeConflict)
}

// IsFailure 检查是否为失败类错误
func IsFailure(err error) bool {
	return IsErrorType(err, TypeFailure)
}

// IsValidation 检查是否为验证类错误
func IsValidation(err error) bool {
	return IsErrorType(err, TypeValidation)
}

// IsErrorType 检查错误分类
func IsErrorType(err error, typ ErrorType) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.typ == typ
	}

	return false
}

// GetErrorCode 获取错误代码
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.code
	}

	return ErrCodeInternal
}

// GetErrorType 获取错误分类，非 AppError 视为 UNEXPECTED
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.typ
	}

	return TypeUnexpected
}

// captureStack 捕获堆栈信息
func captureStack() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])

	var builder strings.Builder
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))

		if !more {
			break
		}
	}

	return builder.String()
}

// copyMap 复制映射
func copyMap(original map[string]any) map[string]any {
	if original == nil {
		return make(map[string]any)
	}

	copied := make(map[string]any, len(original))
	for k, v := range original {
		copied[k] = v
	}

	return copied
}
