package validate

import (
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

func (e *ErrField) Error() string { return e.Field + ": " + e.Msg }

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

// RIB checks a Moroccan bank account identifier: exactly 24 digits.
func RIB(field, value string) *ErrField {
	v := strings.ReplaceAll(value, " ", "")
	if len(v) != 24 {
		return &ErrField{Field: field, Msg: "must be 24 digits"}
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return &ErrField{Field: field, Msg: "must contain only digits"}
		}
	}
	return nil
}
