package service

import (
	"net/mail"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"
)

// FieldError 字段级校验错误，Key 为消息键
type FieldError struct {
	Key  string        `json:"key"`
	Args []interface{} `json:"args,omitempty"`
}

// ValidationError 表单校验错误，在任何写库操作之前返回
type ValidationError struct {
	Fields map[string]FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return ErrValidation.Error() + ": " + strings.Join(names, ",")
}

// Is 使 errors.Is(err, ErrValidation) 成立
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add 记录字段错误，同一字段只保留第一条
func (e *ValidationError) Add(field, key string, args ...interface{}) {
	if e.Fields == nil {
		e.Fields = make(map[string]FieldError)
	}
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = FieldError{Key: key, Args: args}
}

// Has 字段是否已有错误
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Fields[field]
	return ok
}

// OrNil 无错误时返回 nil
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewFieldError 构建单字段校验错误
func NewFieldError(field, key string, args ...interface{}) *ValidationError {
	v := &ValidationError{}
	v.Add(field, key, args...)
	return v
}

func checkLength(v *ValidationError, field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if min > 0 && n < min {
		v.Add(field, "validation.min_length", min)
		return
	}
	if max > 0 && n > max {
		v.Add(field, "validation.max_length", max)
	}
}

func checkEmail(v *ValidationError, field, value string) {
	if value == "" {
		v.Add(field, "validation.required")
		return
	}
	if !isValidEmail(value) {
		v.Add(field, "validation.email_invalid")
		return
	}
	checkLength(v, field, value, 0, 255)
}

func checkOptionalURL(v *ValidationError, field, value string) {
	if value == "" {
		return
	}
	checkLength(v, field, value, 0, 500)
	if v.Has(field) {
		return
	}
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		v.Add(field, "validation.url_invalid")
	}
}

func isValidEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// 拒绝 "Name <a@b>" 形式，域名需带顶级域
	if addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	return at > 0 && strings.Contains(value[at+1:], ".")
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || !isValidEmail(normalized) {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
