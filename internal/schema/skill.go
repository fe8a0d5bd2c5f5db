package schema

import "strings"

// Skill 是技能表单校验通过后的归一化记录。
// IconKey 不参与校验：未知键由前台渲染为无图标，不算输入错误。
type Skill struct {
	Name     string `form:"name" validate:"required"`
	Category string `form:"category" validate:"required"`
	IconKey  string `form:"icon_key"`
}

// ValidateSkill 校验技能表单。
func ValidateSkill(values Values) (*Skill, Errors) {
	record := &Skill{
		Name:     strings.TrimSpace(values["name"]),
		Category: strings.TrimSpace(values["category"]),
		IconKey:  strings.ToLower(strings.TrimSpace(values["icon_key"])),
	}

	if errs := structErrors(record); len(errs) > 0 {
		return nil, errs
	}
	return record, nil
}
