package todo

import (
	"fmt"
	"slices"

	"gotodo/errors"
)

// Status 待办清单状态
// 数值即序号，"是否已发布" 以序号 >= StatusPublished 判断
type Status int

const (
	StatusDraft Status = iota
	StatusPublished
	StatusCompleted
	StatusUpdated
)

var statusNames = map[Status]string{
	StatusDraft:     "Draft",
	StatusPublished: "Published",
	StatusCompleted: "Completed",
	StatusUpdated:   "Updated",
}

// 状态迁移表：源状态 -> 允许的目标状态
var transitions = map[Status][]Status{
	StatusDraft:     {StatusPublished},
	StatusPublished: {StatusCompleted, StatusDraft},
	StatusCompleted: {StatusUpdated},
	StatusUpdated:   {StatusCompleted},
}

// ParseStatus 按名称解析状态
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return StatusDraft, errors.Validation(errors.ErrCodeInvalidArgument,
		fmt.Sprintf("unknown todo list status %q", name)).WithContext("field", "status")
}

// CanTransitionTo 迁移表是否允许 s -> next
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// AllowedTransitions 返回 s 允许迁移到的状态
func (s Status) AllowedTransitions() []Status {
	return slices.Clone(transitions[s])
}

// Ordinal 返回状态序号
func (s Status) Ordinal() int {
	return int(s)
}

// AtLeast 序号比较
func (s Status) AtLeast(other Status) bool {
	return s.Ordinal() >= other.Ordinal()
}

// IsValid 是否为已定义的状态
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}
