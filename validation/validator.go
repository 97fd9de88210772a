// Package validation 提供集中的前置条件校验（guard clause）
//
// 所有校验失败均返回 VALIDATION 分类的错误，并在详情中记录失败的参数名，
// 调用方可通过 FieldOf 取回参数名。
package validation

import (
	stdErrors "errors"
	"fmt"
	"unicode/utf8"

	"gotodo/errors"
)

// FieldKey 错误详情中记录参数名的键
const FieldKey = "field"

// NewArgumentError 创建指向某个参数的验证错误
func NewArgumentError(fieldName, message string) error {
	return errors.Validation(errors.ErrCodeInvalidArgument, message).
		WithContext(FieldKey, fieldName)
}

// ValidateRequired 验证必填字段
// 仅拒绝空字符串，空白字符视为有效内容
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return NewArgumentError(fieldName, fmt.Sprintf("%s不能为空", fieldName))
	}
	return nil
}

// ValidateMaxLength 验证字符串长度上限（按字符数计）
func ValidateMaxLength(value, fieldName string, max int) error {
	length := utf8.RuneCountInString(value)
	if max > 0 && length > max {
		return NewArgumentError(fieldName,
			fmt.Sprintf("%s长度不能超过%d个字符（当前%d）", fieldName, max, length))
	}
	return nil
}

// ValidateText 验证非空且不超过长度上限的文本
func ValidateText(value, fieldName string, max int) error {
	if err := ValidateRequired(value, fieldName); err != nil {
		return err
	}
	return ValidateMaxLength(value, fieldName, max)
}

// ValidateNotEmpty 验证集合非空
func ValidateNotEmpty[T any](values []T, fieldName string) error {
	if len(values) == 0 {
		return NewArgumentError(fieldName, fmt.Sprintf("%s至少需要一个元素", fieldName))
	}
	return nil
}

// FieldOf 返回验证错误对应的参数名，非验证错误返回空串
func FieldOf(err error) string {
	var appErr *errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Type() != errors.TypeValidation {
		return ""
	}
	field, _ := appErr.Details()[FieldKey].(string)
	return field
}
