// Package entity 提供领域对象的基础构件：值对象相等、强类型标识、实体与聚合根
//
// 设计原则：
// 1. 值对象按分量相等，实体按标识相等
// 2. 组合优于继承 - 通过嵌入获得基础能力
// 3. 泛型支持 - 标识类型在编译期区分
package entity

import "gotodo/domain"

// Entity 实体基础字段（用于嵌入）
// 实体的相等性只取决于标识，与其它属性无关
type Entity[ID comparable] struct {
	id ID
}

// NewEntity 创建实体基础字段
func NewEntity[ID comparable](id ID) Entity[ID] {
	return Entity[ID]{id: id}
}

// GetID 实现 domain.IObject 接口
func (e *Entity[ID]) GetID() ID {
	return e.id
}

// SameIdentity 判断两个实体是否为同一实体
func SameIdentity[ID comparable](a, b domain.IObject[ID]) bool {
	if a == nil || b == nil {
		return false
	}
	return a.GetID() == b.GetID()
}
