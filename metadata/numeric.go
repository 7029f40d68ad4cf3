package metadata

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

// parseBool 仅字面量"true"（区分大小写）为真
func parseBool(s string) bool {
	return strings.TrimSpace(s) == "true"
}

// parseInt 与区域设置无关的整数解析
// 说明：取最长的合法前缀，无法解析或溢出时返回0
func parseInt(s string) int {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

// parseFloat 与区域设置无关的浮点数解析，规则同parseInt
func parseFloat(s string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Atoi 按元数据的整数规则解析用户数据中的数字
func Atoi(s string) int {
	return parseInt(s)
}
