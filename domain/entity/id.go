package entity

import "fmt"

// TypedID 强类型标识的基础值对象
//
// 不同实体的标识应定义为嵌入 TypedID 的独立类型，例如：
//
//	type OrderID struct {
//	    entity.TypedID[uuid.UUID]
//	}
//
// 这样 OrderID 与其它标识类型在编译期即无法混用，
// 同类型标识之间可直接使用 == 比较。
type TypedID[V comparable] struct {
	value V
}

// NewTypedID 包装原始标识值
func NewTypedID[V comparable](value V) TypedID[V] {
	return TypedID[V]{value: value}
}

// Value 返回原始标识值
func (id TypedID[V]) Value() V {
	return id.value
}

// IsZero 判断是否为零值标识
func (id TypedID[V]) IsZero() bool {
	var zero V
	return id.value == zero
}

// String 返回原始值的文本形式
func (id TypedID[V]) String() string {
	return fmt.Sprint(id.value)
}

// EqualityComponents 实现 IValueObject 接口
func (id TypedID[V]) EqualityComponents() []any {
	return []any{id.value}
}
