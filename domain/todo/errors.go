package todo

import "gotodo/errors"

// TodoList 领域错误
// 均为稳定的哨兵值，调用方可用 errors.Is 或错误码比较
var (
	ErrItemAlreadyExists = errors.Conflict(
		"TodoListErrors.ItemAlreadyExists",
		"Can't add the same item twice.")

	ErrItemNotFound = errors.NotFound(
		"TodoListErrors.ItemNotFound",
		"The specified item was not found.")

	ErrItemAlreadyCompleted = errors.Conflict(
		"TodoListErrors.ItemAlreadyCompleted",
		"A completed item can't be completed again.")

	ErrListNotYetPublished = errors.Conflict(
		"TodoListErrors.ListNotYetPublished",
		"The list has not yet been published.")

	ErrListAlreadyPublished = errors.Conflict(
		"TodoListErrors.ListAlreadyPublished",
		"Can't publish an already published list.")

	ErrInvalidStateTransition = errors.Failure(
		"TodoListErrors.InvalidStateTransition",
		"Trying to perform an invalid state transition.")
)
