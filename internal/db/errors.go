package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorKind 枚举存储层错误的类别，供写入路径决定响应方式。
type ErrorKind int

const (
	// KindNone 表示没有错误
	KindNone ErrorKind = iota
	// KindNotFound 表示目标记录不存在
	KindNotFound
	// KindConstraint 表示唯一键或其他约束冲突
	KindConstraint
	// KindNetwork 表示连接层面的故障
	KindNetwork
	// KindOther 表示未归类的存储错误
	KindOther
)

// Kind 将 gorm 返回的错误归类。
// sqlite 没有结构化错误码可依赖，这里按错误文本匹配常见类别。
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "constraint failed"),
		strings.Contains(msg, "duplicate"):
		return KindConstraint
	case strings.Contains(msg, "connection"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "database is closed"):
		return KindNetwork
	}
	return KindOther
}
