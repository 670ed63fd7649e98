// Package wordcheck decides which raw input lines may become list entries.
//
// A valid word is 1..maxLen bytes long, uses only ASCII letters, digits and
// '_', and does not start with a digit. Checks are expressed as
// go-playground/validator tags:
//
//	required,maxbytes=<maxLen>,noleadingdigit,wordchars
package wordcheck

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'radixsort.wordcheck'
func tracer() tracing.Trace {
	return tracing.Select("radixsort.wordcheck")
}

// Reason tells why a word was rejected.
type Reason int

const (
	ReasonEmpty Reason = iota + 1
	ReasonTooLong
	ReasonLeadingDigit
	ReasonSpecialChars
)

func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonTooLong:
		return "too long"
	case ReasonLeadingDigit:
		return "leading digit"
	case ReasonSpecialChars:
		return "special characters"
	}
	return "unknown"
}

// RejectError is returned by Check for an invalid word.
type RejectError struct {
	Word   string
	Reason Reason
	MaxLen int
}

func (e *RejectError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "empty line"
	case ReasonTooLong:
		return fmt.Sprintf("line %q longer than %d characters", e.Word, e.MaxLen)
	case ReasonLeadingDigit:
		return fmt.Sprintf("line %q starting with a number", e.Word)
	case ReasonSpecialChars:
		return fmt.Sprintf("line %q containing special characters", e.Word)
	}
	return fmt.Sprintf("line %q rejected", e.Word)
}

// Reject extracts the rejection reason from err, if err is a *RejectError.
func Reject(err error) (Reason, bool) {
	var rej *RejectError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return 0, false
}

// Checker validates words against a length bound.
type Checker struct {
	maxLen   int
	tag      string
	validate *validator.Validate
}

// New creates a checker for words of at most maxLen bytes.
func New(maxLen int) *Checker {
	if maxLen <= 0 {
		panic(fmt.Sprintf("wordcheck: max length must be positive, is %d", maxLen))
	}
	v := validator.New()
	_ = v.RegisterValidation("maxbytes", validateMaxBytes)
	_ = v.RegisterValidation("wordchars", validateWordChars)
	_ = v.RegisterValidation("noleadingdigit", validateNoLeadingDigit)
	return &Checker{
		maxLen:   maxLen,
		tag:      fmt.Sprintf("required,maxbytes=%d,noleadingdigit,wordchars", maxLen),
		validate: v,
	}
}

// MaxLen returns the length bound of the checker.
func (c *Checker) MaxLen() int {
	return c.maxLen
}

// Check returns nil for a valid word and a *RejectError otherwise.
// Tags are evaluated in order, so a too-long word is reported as such even if
// it also contains special characters.
func (c *Checker) Check(word string) error {
	err := c.validate.Var(word, c.tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validating %q: %w", word, err)
	}
	rej := &RejectError{Word: word, MaxLen: c.maxLen}
	switch verrs[0].Tag() {
	case "required":
		rej.Reason = ReasonEmpty
	case "maxbytes":
		rej.Reason = ReasonTooLong
	case "noleadingdigit":
		rej.Reason = ReasonLeadingDigit
	default:
		rej.Reason = ReasonSpecialChars
	}
	tracer().Debugf("rejected %q: %s", word, rej.Reason)
	return rej
}

// Valid reports whether word passes Check.
func (c *Checker) Valid(word string) bool {
	return c.Check(word) == nil
}

// validateMaxBytes bounds the byte length, not the rune count that the
// built-in max tag uses for strings.
func validateMaxBytes(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= n
}

func validateWordChars(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) {
			return false
		}
	}
	return true
}

func validateNoLeadingDigit(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || !isDigit(s[0])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
