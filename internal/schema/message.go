package schema

import "strings"

// Message 是联系表单校验通过后的归一化记录。
type Message struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Category string `form:"category" validate:"required"`
	Budget   string `form:"budget" validate:"required"`
	Body     string `form:"message" validate:"required,min=10"`
}

// ValidateMessage 校验联系表单。
// 蜜罐字段不在这里处理：机器人提交在进入校验前就被丢弃。
func ValidateMessage(values Values) (*Message, Errors) {
	record := &Message{
		Name:     strings.TrimSpace(values["name"]),
		Email:    strings.TrimSpace(values["email"]),
		Category: strings.TrimSpace(values["category"]),
		Budget:   strings.TrimSpace(values["budget"]),
		Body:     strings.TrimSpace(values["message"]),
	}

	if errs := structErrors(record); len(errs) > 0 {
		return nil, errs
	}
	return record, nil
}
