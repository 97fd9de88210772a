package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testTitle       = "A perfectly valid test title"
	testDescription = "A perfectly valid test description"
)

// fixedClock 将 nowFunc 替换为可推进的时钟，测试结束后恢复
func fixedClock(t *testing.T, start time.Time) *time.Time {
	t.Helper()
	current := start
	original := nowFunc
	nowFunc = func() time.Time { return current }
	t.Cleanup(func() { nowFunc = original })
	return &current
}

func mustItem(t *testing.T, id ...TodoItemID) *TodoItem {
	t.Helper()
	item, err := NewTodoItem(testTitle, testDescription, id...)
	require.NoError(t, err)
	return item
}

func mustList(t *testing.T, items ...*TodoItem) *TodoList {
	t.Helper()
	if len(items) == 0 {
		items = []*TodoItem{mustItem(t)}
	}
	list, err := NewTodoList(testTitle, testDescription, items)
	require.NoError(t, err)
	return list
}

// completedList 创建一个仅含一个事项、已发布并完成的清单
func completedList(t *testing.T) (*TodoList, *TodoItem) {
	t.Helper()
	item := mustItem(t)
	list := mustList(t, item)
	require.NoError(t, list.PublishTodoList())
	require.NoError(t, list.CompleteTodoItem(item.GetID()))
	require.Equal(t, StatusCompleted, list.Status())
	return list, item
}
