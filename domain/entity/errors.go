package entity

import "gotodo/errors"

// 常见实体错误
var (
	ErrInvalidID = errors.Validation("Entity.InvalidID", "identifier must not be empty")
)
