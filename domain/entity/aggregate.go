package entity

import "gotodo/domain"

// AggregateRoot 基础聚合根（支持领域事件）
//
// 事件缓冲区由聚合独占：只能通过 AddDomainEvent 追加，通过 PopDomainEvents 取出并清空。
// 聚合根不做内部加锁，调用方需保证同一实例在单个逻辑操作内串行使用。
//
// 示例:
//
//	type Order struct {
//	    entity.AggregateRoot[OrderID]
//	    Total int64
//	}
type AggregateRoot[ID comparable] struct {
	Entity[ID]
	domainEvents []domain.IDomainEvent
}

// NewAggregateRoot 创建聚合根基础字段
func NewAggregateRoot[ID comparable](id ID) AggregateRoot[ID] {
	return AggregateRoot[ID]{Entity: NewEntity(id)}
}

// AddDomainEvent 追加领域事件
func (a *AggregateRoot[ID]) AddDomainEvent(evt domain.IDomainEvent) {
	if evt == nil {
		return
	}
	a.domainEvents = append(a.domainEvents, evt)
}

// HasDomainEvents 是否存在未取出的领域事件
func (a *AggregateRoot[ID]) HasDomainEvents() bool {
	return len(a.domainEvents) > 0
}

// PopDomainEvents 按追加顺序返回领域事件并清空缓冲区
func (a *AggregateRoot[ID]) PopDomainEvents() []domain.IDomainEvent {
	events := make([]domain.IDomainEvent, len(a.domainEvents))
	copy(events, a.domainEvents)
	a.domainEvents = nil
	return events
}
