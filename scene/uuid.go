package scene

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	uuidPattern = regexp.MustCompile(`^[{(]?[0-9A-Fa-f]{8}[-]?([0-9A-Fa-f]{4}[-]?){3}[0-9A-Fa-f]{12}[)}]?`)
	uuidStrip   = strings.NewReplacer("{", "", "}", "", "(", "", ")", "", "-", "")
)

// MatchUUID 从名称开头匹配uuid
// 返回：原始匹配文本（可能带括号）与是否匹配
func MatchUUID(name string) (string, bool) {
	match := uuidPattern.FindString(name)
	if match == "" {
		return "", false
	}
	if _, err := uuid.Parse(uuidStrip.Replace(match)); err != nil {
		return "", false
	}
	return match, true
}

// NormalizeUUID 将匹配文本统一为花括号形式，保留原有的大小写与连字符
func NormalizeUUID(match string) string {
	if strings.HasPrefix(match, "{") {
		if strings.HasSuffix(match, "}") {
			return match
		}
		return match + "}"
	}
	core := strings.TrimSuffix(strings.TrimPrefix(match, "("), ")")
	core = strings.TrimSuffix(core, "}")
	return "{" + core + "}"
}

// ExtractSignalID 从Actor标签中提取规范化的信号灯id
func ExtractSignalID(label string) (string, bool) {
	match, ok := MatchUUID(label)
	if !ok {
		return "", false
	}
	return NormalizeUUID(match), true
}
