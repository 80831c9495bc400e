package xtraced

// EqualValues 比较两个包装值的内部值是否相等。
// 快照永不参与比较：两个值相同、来源不同的 Traced 视为相等。
func EqualValues[T comparable](a, b Traced[T]) bool {
	return a.Value() == b.Value()
}
