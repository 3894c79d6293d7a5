// nolint: revive
package utils

// FilterSlice 映射并过滤切片
func FilterSlice[T any, R any](items []T, fn func(T) (R, bool)) []R {
	res := make([]R, 0, len(items))
	for _, item := range items {
		if r, ok := fn(item); ok {
			res = append(res, r)
		}
	}
	return res
}

// Slice 纯映射
func Slice[T any, R any](items []T, fn func(T) R) []R {
	res := make([]R, 0, len(items))
	for _, item := range items {
		res = append(res, fn(item))
	}
	return res
}

// IfErrReturn 顺序执行，遇错即返
func IfErrReturn(fns ...func() error) error {
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
