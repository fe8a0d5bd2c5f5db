package schema

import "strings"

// Experience 是工作经历表单校验通过后的归一化记录。
type Experience struct {
	Position    string `form:"position" validate:"required"`
	Company     string `form:"company" validate:"required"`
	Period      string `form:"period" validate:"required"`
	Description string `form:"description"`
	SortOrder   int
}

// ValidateExperience 校验工作经历表单。
func ValidateExperience(values Values) (*Experience, Errors) {
	record := &Experience{
		Position:    strings.TrimSpace(values["position"]),
		Company:     strings.TrimSpace(values["company"]),
		Period:      strings.TrimSpace(values["period"]),
		Description: strings.TrimSpace(values["description"]),
	}

	sortOrder, sortErr := coerceInt(values["sort_order"], "sort_order")
	record.SortOrder = sortOrder

	errs := structErrors(record)
	if sortErr != nil {
		errs = append(errs, *sortErr)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return record, nil
}
