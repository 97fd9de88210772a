package entity

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// IValueObject 值对象接口
// 值对象没有标识，两个值对象相等当且仅当相等分量逐一相等
type IValueObject interface {
	// EqualityComponents 返回参与相等比较的分量，顺序有意义
	EqualityComponents() []any
}

// ValueEquals 按分量比较两个值对象
// 动态类型不同的值对象永不相等
func ValueEquals(a, b IValueObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	left, right := a.EqualityComponents(), b.EqualityComponents()
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !componentEqual(left[i], right[i]) {
			return false
		}
	}
	return true
}

// ValueHash 计算值对象哈希，为各分量哈希的异或
func ValueHash(v IValueObject) uint64 {
	if v == nil {
		return 0
	}
	var h uint64
	for _, c := range v.EqualityComponents() {
		h ^= componentHash(c)
	}
	return h
}

// componentHash 嵌套值对象按其相等分量计算，与 componentEqual 保持一致
func componentHash(c any) uint64 {
	if cv, ok := c.(IValueObject); ok {
		return ValueHash(cv)
	}
	return xxhash.Sum64String(fmt.Sprintf("%T:%v", c, c))
}

func componentEqual(x, y any) bool {
	if xv, ok := x.(IValueObject); ok {
		yv, ok := y.(IValueObject)
		return ok && ValueEquals(xv, yv)
	}
	// 动态值不可比较（切片、映射，或字段里装着切片的结构体）时退化为深度比较，避免 == 触发 panic
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if !reflect.ValueOf(x).Comparable() || !reflect.ValueOf(y).Comparable() {
		return reflect.DeepEqual(x, y)
	}
	return x == y
}
