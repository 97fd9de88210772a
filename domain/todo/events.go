package todo

import "time"

// EventTypeTodoListCompleted 清单进入 Completed 状态时产生的事件类型
const EventTypeTodoListCompleted = "todo.list.completed"

// TodoListCompleted 清单完成事件
type TodoListCompleted struct {
	TodoListID    TodoListID
	OccurredOnUTC time.Time
}

func (e TodoListCompleted) EventType() string {
	return EventTypeTodoListCompleted
}

func (e TodoListCompleted) OccurredAt() time.Time {
	return e.OccurredOnUTC
}
