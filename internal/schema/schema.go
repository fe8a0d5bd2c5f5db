package schema

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Values 表示来自表单的原始字段映射。
type Values map[string]string

// FieldError 描述单个字段的校验失败信息。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors 是按字段声明顺序排列的校验错误列表。
// 校验是全有或全无的：列表非空时不会返回任何记录。
type Errors []FieldError

// Has 判断指定字段是否存在错误，便于测试断言。
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var validate = func() *validator.Validate {
	v := validator.New()

	// 错误信息直接使用表单字段名
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}()

// structErrors 运行 validator 并把结果翻译成有序的字段错误。
func structErrors(record any) Errors {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "", Message: "invalid input"}}
	}

	errs := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "slug":
		return fmt.Sprintf("%s may only contain lowercase letters, numbers and hyphens", label)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", label)
}

// fieldLabel 把 snake_case 字段名转成展示用的标签，如 tech_stack -> Tech stack。
func fieldLabel(field string) string {
	parts := strings.Split(field, "_")
	if len(parts) == 0 {
		return field
	}
	label := strings.Join(parts, " ")
	if label == "" {
		return field
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// splitList 把逗号分隔的输入拆成列表：逐项去空白，丢弃空段。
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		items = append(items, trimmed)
	}
	return items
}

// coerceInt 把数字字段从字符串归一化：空值取默认 0，非数字报字段错误。
func coerceInt(raw, field string) (int, *FieldError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &FieldError{Field: field, Message: fmt.Sprintf("%s must be a number", fieldLabel(field))}
	}
	return value, nil
}
