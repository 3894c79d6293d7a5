package uuid

import (
	// 外部依赖
	uuid "github.com/gofrs/uuid/v5"
)

// UUID 别名 gofrs 实现，业务代码不直接引用第三方包
type UUID = uuid.UUID

var Nil = uuid.Nil

func NewV4() UUID {
	return uuid.Must(uuid.NewV4())
}

func FromString(s string) (UUID, error) {
	return uuid.FromString(s)
}
