package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// text is a string field value; present is false for a nil nullable string.
type text struct {
	value   string
	present bool
}

// StringRuleBuilder declares rules for one string field.
type StringRuleBuilder[T any] struct {
	c *chain[T, text]
}

// String starts a rule chain for a string field.
//
//	validator.String(r, func(u *User) *string { return &u.Email }).NotEmpty().Email()
func String[T any, S ~string](r *Rules[T], accessor func(*T) *S) *StringRuleBuilder[T] {
	return &StringRuleBuilder[T]{c: newChain(r, accessor, func(p *S) text {
		return text{value: string(*p), present: true}
	})}
}

// NullableString starts a rule chain for a *string field. A nil pointer is
// treated as null: it fails NotEmpty and NotBlank and passes every other check.
func NullableString[T any, S ~string](r *Rules[T], accessor func(*T) **S) *StringRuleBuilder[T] {
	return &StringRuleBuilder[T]{c: newChain(r, accessor, func(p **S) text {
		if *p == nil {
			return text{}
		}
		return text{value: string(**p), present: true}
	})}
}

// NotEmpty fails for a null or zero-length string.
func (b *StringRuleBuilder[T]) NotEmpty() *StringRuleBuilder[T] {
	b.c.check("NotEmpty", fmt.Sprintf("%s must not be empty.", b.c.displayName()), func(v text) bool {
		return !v.present || v.value == ""
	})
	return b
}

// NotBlank fails for a null string or one made only of whitespace.
func (b *StringRuleBuilder[T]) NotBlank() *StringRuleBuilder[T] {
	b.c.check("NotBlank", fmt.Sprintf("%s must not be blank.", b.c.displayName()), func(v text) bool {
		return !v.present || strings.TrimSpace(v.value) == ""
	})
	return b
}

// MinLength fails when the string has fewer than min characters.
func (b *StringRuleBuilder[T]) MinLength(min int) *StringRuleBuilder[T] {
	msg := fmt.Sprintf("%s must be at least %d characters long.", b.c.displayName(), min)
	b.c.check("MinLength", msg, func(v text) bool {
		return v.present && runeLen(v.value) < min
	})
	return b
}

// MaxLength fails when the string has more than max characters.
func (b *StringRuleBuilder[T]) MaxLength(max int) *StringRuleBuilder[T] {
	msg := fmt.Sprintf("%s must be at most %d characters long.", b.c.displayName(), max)
	b.c.check("MaxLength", msg, func(v text) bool {
		return v.present && runeLen(v.value) > max
	})
	return b
}

// Length fails when the character count is outside [min, max].
func (b *StringRuleBuilder[T]) Length(min, max int) *StringRuleBuilder[T] {
	msg := fmt.Sprintf("%s must be between %d and %d characters long.", b.c.displayName(), min, max)
	b.c.check("Length", msg, func(v text) bool {
		if !v.present {
			return false
		}
		n := runeLen(v.value)
		return n < min || n > max
	})
	return b
}

// Matches fails when the string does not match re.
func (b *StringRuleBuilder[T]) Matches(re *regexp.Regexp) *StringRuleBuilder[T] {
	msg := fmt.Sprintf("%s is not in the correct format.", b.c.displayName())
	b.c.check("Matches", msg, func(v text) bool {
		return v.present && !re.MatchString(v.value)
	})
	return b
}

// Email fails when the string is not a plain email address.
func (b *StringRuleBuilder[T]) Email() *StringRuleBuilder[T] {
	msg := fmt.Sprintf("%s is not a valid email address.", b.c.displayName())
	b.c.check("Email", msg, func(v text) bool {
		return v.present && !isEmail(v.value)
	})
	return b
}

// Must registers a custom check; pred reports whether the value is valid.
// Null values of nullable strings are passed as "".
func (b *StringRuleBuilder[T]) Must(pred func(string) bool, code, message string) *StringRuleBuilder[T] {
	b.c.check(code, message, func(v text) bool {
		return !pred(v.value)
	})
	return b
}

// WithMessage overrides the message of the check declared just before it.
func (b *StringRuleBuilder[T]) WithMessage(message string) *StringRuleBuilder[T] {
	b.c.withMessage(message)
	return b
}

// runeLen counts characters of the NFC form, so "é" typed as e + combining
// accent counts once.
func runeLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
