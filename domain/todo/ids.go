package todo

import (
	"github.com/google/uuid"

	"gotodo/domain/entity"
	"gotodo/errors"
)

// TodoItemID 待办事项标识
type TodoItemID struct {
	entity.TypedID[uuid.UUID]
}

// NewTodoItemID 生成新的待办事项标识
func NewTodoItemID() TodoItemID {
	return TodoItemID{entity.NewTypedID(uuid.New())}
}

// TodoItemIDFrom 由已知值重建标识（例如从存储加载），拒绝空 UUID
func TodoItemIDFrom(value uuid.UUID) (TodoItemID, error) {
	if value == uuid.Nil {
		return TodoItemID{}, entity.ErrInvalidID.WithContext("field", "id")
	}
	return TodoItemID{entity.NewTypedID(value)}, nil
}

// ParseTodoItemID 由文本形式重建标识
func ParseTodoItemID(s string) (TodoItemID, error) {
	value, err := uuid.Parse(s)
	if err != nil {
		return TodoItemID{}, errors.WrapError(err, errors.TypeValidation, errors.ErrCodeInvalidArgument, "invalid todo item id")
	}
	return TodoItemIDFrom(value)
}

// Equals 同类标识按值比较
func (id TodoItemID) Equals(other TodoItemID) bool {
	return id == other
}

// TodoListID 待办清单标识
type TodoListID struct {
	entity.TypedID[uuid.UUID]
}

// NewTodoListID 生成新的待办清单标识
func NewTodoListID() TodoListID {
	return TodoListID{entity.NewTypedID(uuid.New())}
}

// TodoListIDFrom 由已知值重建标识，拒绝空 UUID
func TodoListIDFrom(value uuid.UUID) (TodoListID, error) {
	if value == uuid.Nil {
		return TodoListID{}, entity.ErrInvalidID.WithContext("field", "id")
	}
	return TodoListID{entity.NewTypedID(value)}, nil
}

// ParseTodoListID 由文本形式重建标识
func ParseTodoListID(s string) (TodoListID, error) {
	value, err := uuid.Parse(s)
	if err != nil {
		return TodoListID{}, errors.WrapError(err, errors.TypeValidation, errors.ErrCodeInvalidArgument, "invalid todo list id")
	}
	return TodoListIDFrom(value)
}

// Equals 同类标识按值比较
func (id TodoListID) Equals(other TodoListID) bool {
	return id == other
}
