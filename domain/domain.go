// Package domain 定义领域层最小契约：对象标识、领域事件与聚合根事件出口。
package domain

import "time"

// IObject 最基础的对象接口，所有实体的根接口。
type IObject[T comparable] interface {
	// GetID 返回对象的唯一标识
	GetID() T
}

// IDomainEvent 领域事件接口。
// 领域层仅关注事件本身的语义，不关心传输信封与存储细节。
type IDomainEvent interface {
	// EventType 返回领域事件类型标识。
	// 建议使用稳定的枚举字符串，便于路由与演进。
	EventType() string

	// OccurredAt 返回事件发生时间（UTC）。
	OccurredAt() time.Time
}

// IAggregateRoot 聚合根的事件出口。
// 应用层在持久化成功后调用 PopDomainEvents 取出事件并自行分发。
type IAggregateRoot interface {
	// PopDomainEvents 返回累积的事件并清空缓冲区，同一事件只会被取出一次
	PopDomainEvents() []IDomainEvent
}
