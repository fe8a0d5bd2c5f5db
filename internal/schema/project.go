package schema

import "strings"

// Project 是项目表单校验通过后的归一化记录。
type Project struct {
	Title            string `form:"title" validate:"required,min=3"`
	Slug             string `form:"slug" validate:"required,slug"`
	Description      string `form:"description" validate:"required"`
	Summary          string `form:"summary"`
	Challenge        string `form:"challenge"`
	Contribution     string `form:"contribution"`
	KeyFeatures      []string
	Category         string `form:"category"`
	ImageURL         string `form:"image_url" validate:"omitempty,url"`
	TechStack        []string
	DemoURL          string `form:"demo_url" validate:"omitempty,url"`
	RepoURL          string `form:"repo_url" validate:"omitempty,url"`
	SortOrder        int
	AdditionalImages []string
}

// ValidateProject 校验项目表单。
// 空白的可选 URL 视为未填写；列表字段按逗号拆分并过滤空段。
func ValidateProject(values Values) (*Project, Errors) {
	record := &Project{
		Title:            strings.TrimSpace(values["title"]),
		Slug:             strings.TrimSpace(values["slug"]),
		Description:      strings.TrimSpace(values["description"]),
		Summary:          strings.TrimSpace(values["summary"]),
		Challenge:        strings.TrimSpace(values["challenge"]),
		Contribution:     strings.TrimSpace(values["contribution"]),
		KeyFeatures:      splitList(values["key_features"]),
		Category:         strings.TrimSpace(values["category"]),
		ImageURL:         strings.TrimSpace(values["image_url"]),
		TechStack:        splitList(values["tech_stack"]),
		DemoURL:          strings.TrimSpace(values["demo_url"]),
		RepoURL:          strings.TrimSpace(values["repo_url"]),
		AdditionalImages: splitList(values["additional_images"]),
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
