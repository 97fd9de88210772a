// Package todo 实现待办清单聚合：清单拥有待办事项集合，维护事项唯一性，
// 并通过一个四状态的状态机跟踪清单整体进度。
//
// 状态机：
//
//	Draft     -> Published
//	Published -> Completed, Draft
//	Completed -> Updated
//	Updated   -> Completed
//
// PublishTodoList / UnpublishTodoList 直接设置状态；
// 增删、完成事项后按 determineStatus 推导新状态。
package todo

import (
	"context"
	"slices"
	"time"

	"gotodo/domain/entity"
	"gotodo/logging"
	"gotodo/validation"
)

// TodoList 待办清单聚合根
type TodoList struct {
	entity.AggregateRoot[TodoListID]
	title          string
	description    string
	items          []*TodoItem
	status         Status
	createdOnUTC   time.Time
	completedOnUTC *time.Time
}

// NewTodoList 创建待办清单
// items 至少包含一个事项且标识互不相同；未提供 id（或提供零值）时生成新标识
// 清单接管传入事项的所有权，调用方不得再把同一事项交给其它清单或直接持有修改
func NewTodoList(title, description string, items []*TodoItem, id ...TodoListID) (*TodoList, error) {
	if err := validateText(title, description); err != nil {
		return nil, err
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	listID := NewTodoListID()
	if len(id) > 0 && !id[0].IsZero() {
		listID = id[0]
	}

	return &TodoList{
		AggregateRoot: entity.NewAggregateRoot(listID),
		title:         title,
		description:   description,
		items:         slices.Clone(items),
		status:        StatusDraft,
		createdOnUTC:  nowFunc(),
	}, nil
}

func validateItems(items []*TodoItem) error {
	if err := validation.ValidateNotEmpty(items, "items"); err != nil {
		return err
	}
	seen := make(map[TodoItemID]struct{}, len(items))
	for _, item := range items {
		if item == nil {
			return validation.NewArgumentError("items", "items不能包含空事项")
		}
		if _, ok := seen[item.GetID()]; ok {
			return validation.NewArgumentError("items", "items包含重复的事项标识")
		}
		seen[item.GetID()] = struct{}{}
	}
	return nil
}

func (l *TodoList) Title() string {
	return l.title
}

func (l *TodoList) Description() string {
	return l.description
}

func (l *TodoList) Status() Status {
	return l.status
}

func (l *TodoList) CreatedOnUTC() time.Time {
	return l.createdOnUTC
}

// CompletedOnUTC 返回完成时间，仅在 Completed 状态下 ok 为 true
func (l *TodoList) CompletedOnUTC() (at time.Time, ok bool) {
	if l.completedOnUTC == nil {
		return time.Time{}, false
	}
	return *l.completedOnUTC, true
}

// Items 返回事项的只读视图（新切片，修改它不影响清单）
func (l *TodoList) Items() []*TodoItem {
	return slices.Clone(l.items)
}

// ItemCount 事项数量
func (l *TodoList) ItemCount() int {
	return len(l.items)
}

// Item 按标识查找事项
func (l *TodoList) Item(itemID TodoItemID) (*TodoItem, bool) {
	idx := l.indexOf(itemID)
	if idx < 0 {
		return nil, false
	}
	return l.items[idx], true
}

// AddTodoItem 添加事项
// 清单接管 item 的所有权，同一事项不得同时加入多个清单
func (l *TodoList) AddTodoItem(item *TodoItem) error {
	if item == nil {
		return validation.NewArgumentError("item", "item不能为空")
	}
	if l.indexOf(item.GetID()) >= 0 {
		return ErrItemAlreadyExists
	}

	l.items = append(l.items, item)
	l.updateStatus()
	return nil
}

// RemoveTodoItem 移除事项
func (l *TodoList) RemoveTodoItem(itemID TodoItemID) error {
	idx := l.indexOf(itemID)
	if idx < 0 {
		return ErrItemNotFound
	}

	l.items = slices.Delete(l.items, idx, idx+1)
	l.updateStatus()
	return nil
}

// CompleteTodoItem 完成事项，清单必须已发布
func (l *TodoList) CompleteTodoItem(itemID TodoItemID) error {
	if !l.hasBeenPublished() {
		return ErrListNotYetPublished
	}
	item, ok := l.Item(itemID)
	if !ok {
		return ErrItemNotFound
	}
	if item.Completed() {
		return ErrItemAlreadyCompleted
	}

	item.complete()
	l.updateStatus()
	return nil
}

// PublishTodoList 发布清单
func (l *TodoList) PublishTodoList() error {
	if l.hasBeenPublished() {
		return ErrListAlreadyPublished
	}
	l.status = StatusPublished
	return nil
}

// UnpublishTodoList 撤回发布，仅 Published 状态可撤回
func (l *TodoList) UnpublishTodoList() error {
	if !l.hasBeenPublished() {
		return ErrListNotYetPublished
	}
	if !l.status.CanTransitionTo(StatusDraft) {
		return ErrInvalidStateTransition
	}
	l.status = StatusDraft
	return nil
}

func (l *TodoList) indexOf(itemID TodoItemID) int {
	return slices.IndexFunc(l.items, func(item *TodoItem) bool {
		return item.GetID() == itemID
	})
}

// hasBeenPublished 按序号判断：Published、Completed、Updated 均视为已发布
func (l *TodoList) hasBeenPublished() bool {
	return l.status.AtLeast(StatusPublished)
}

func (l *TodoList) allCompleted() bool {
	for _, item := range l.items {
		if !item.Completed() {
			return false
		}
	}
	return true
}

// determineStatus 根据事项完成情况推导候选状态
// 未命中任何规则时回落到 Draft（包括 Published 且存在未完成事项的情况）
func (l *TodoList) determineStatus() Status {
	allCompleted := l.allCompleted()

	switch {
	case l.status == StatusPublished && allCompleted:
		return StatusCompleted
	case l.status == StatusCompleted && !allCompleted:
		return StatusUpdated
	case l.status == StatusUpdated && allCompleted:
		return StatusCompleted
	default:
		return StatusDraft
	}
}

func (l *TodoList) updateStatus() {
	next := l.determineStatus()
	if next == l.status {
		return
	}

	if !l.status.CanTransitionTo(next) {
		// TODO: 迁移表不允许时仍应用推导结果，需确认是否改为拒绝或保持原状态
		logging.GetLogger().Warn(context.Background(), "derived todo list status not permitted by transition table",
			logging.String("todo_list_id", l.GetID().String()),
			logging.String("from", l.status.String()),
			logging.String("to", next.String()),
		)
	}

	l.status = next
	if next != StatusCompleted {
		l.completedOnUTC = nil
		return
	}

	now := nowFunc()
	l.completedOnUTC = &now
	l.AddDomainEvent(TodoListCompleted{
		TodoListID:    l.GetID(),
		OccurredOnUTC: now,
	})
}
