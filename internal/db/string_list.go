package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList 以 JSON 文本形式存储字符串列表字段（技术栈、亮点、附图等）。
// sqlite 没有数组类型，序列化成单列足够覆盖本站的读写模式。
type StringList []string

// Value 实现 driver.Valuer，空列表落库为空 JSON 数组。
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(raw), nil
}

// Scan 实现 sql.Scanner，兼容 NULL 与空字符串。
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("string list: unsupported column type")
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("unmarshal string list: %w", err)
	}
	*l = StringList(items)
	return nil
}
