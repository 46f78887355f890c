package service

import (
	"unicode"
	"unicode/utf8"

	"github.com/geoda-coffee/storefront/internal/config"
)

type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string {
	return e.key
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

func (e passwordPolicyError) Key() string {
	return e.key
}

func (e passwordPolicyError) Args() []interface{} {
	return e.args
}

// validatePassword 按配置的密码策略校验，长度按字符计
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	length := utf8.RuneCountInString(password)
	if policy.MinLength > 0 && length < policy.MinLength {
		return passwordPolicyError{key: "validation.min_length", args: []interface{}{policy.MinLength}}
	}
	if policy.MaxLength > 0 && length > policy.MaxLength {
		return passwordPolicyError{key: "validation.max_length", args: []interface{}{policy.MaxLength}}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return passwordPolicyError{key: "error.password_require_upper"}
	}
	if policy.RequireLower && !hasLower {
		return passwordPolicyError{key: "error.password_require_lower"}
	}
	if policy.RequireNumber && !hasNumber {
		return passwordPolicyError{key: "error.password_require_number"}
	}
	if policy.RequireSpecial && !hasSpecial {
		return passwordPolicyError{key: "error.password_require_special"}
	}
	return nil
}

// checkPassword 将密码策略错误写入字段校验结果
func checkPassword(v *ValidationError, policy config.PasswordPolicyConfig, field, password string) {
	if password == "" {
		v.Add(field, "validation.required")
		return
	}
	if err := validatePassword(policy, password); err != nil {
		if perr, ok := err.(passwordPolicyError); ok {
			v.Add(field, perr.Key(), perr.Args()...)
		}
	}
}
