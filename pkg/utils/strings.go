package utils

import (
	"strings"

	"github.com/spf13/cast"
)

func StrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func StrToInt(s string) int {
	return cast.ToInt(strings.TrimSpace(s))
}

func StrToInt64(s string) int64 {
	return cast.ToInt64(strings.TrimSpace(s))
}

func StrToFloat(s string) float64 {
	return cast.ToFloat64(strings.TrimSpace(s))
}
