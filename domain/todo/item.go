package todo

import (
	"time"

	"gotodo/domain/entity"
	"gotodo/validation"
)

// 文本长度上限（按字符数计）
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 200
)

var nowFunc = func() time.Time { return time.Now().UTC() }

// TodoItem 待办事项实体
// 完成状态只能经由所属 TodoList 修改，一旦完成不再变化
type TodoItem struct {
	entity.Entity[TodoItemID]
	title          string
	description    string
	completed      bool
	createdOnUTC   time.Time
	completedOnUTC *time.Time
}

// NewTodoItem 创建待办事项
// 未提供 id（或提供零值）时生成新标识
func NewTodoItem(title, description string, id ...TodoItemID) (*TodoItem, error) {
	if err := validateText(title, description); err != nil {
		return nil, err
	}

	itemID := NewTodoItemID()
	if len(id) > 0 && !id[0].IsZero() {
		itemID = id[0]
	}

	return &TodoItem{
		Entity:       entity.NewEntity(itemID),
		title:        title,
		description:  description,
		createdOnUTC: nowFunc(),
	}, nil
}

func (i *TodoItem) Title() string {
	return i.title
}

func (i *TodoItem) Description() string {
	return i.description
}

func (i *TodoItem) Completed() bool {
	return i.completed
}

func (i *TodoItem) CreatedOnUTC() time.Time {
	return i.createdOnUTC
}

// CompletedOnUTC 返回完成时间，未完成时 ok 为 false
func (i *TodoItem) CompletedOnUTC() (at time.Time, ok bool) {
	if i.completedOnUTC == nil {
		return time.Time{}, false
	}
	return *i.completedOnUTC, true
}

// complete 标记完成，重复调用无副作用
func (i *TodoItem) complete() {
	if i.completed {
		return
	}
	now := nowFunc()
	i.completed = true
	i.completedOnUTC = &now
}

func validateText(title, description string) error {
	if err := validation.ValidateText(title, "title", MaxTitleLength); err != nil {
		return err
	}
	return validation.ValidateText(description, "description", MaxDescriptionLength)
}
