package metadata

import (
	"regexp"
	"sync"

	"github.com/OpenHUTB/carla-0.9.14/scene"
)

// Pattern 灯泡名到组件节点名的匹配规则
type Pattern int

const (
	// PatternRuntime ^prefix(_[0-9]+)?.*Node.*
	PatternRuntime Pattern = iota
	// PatternEditor ^prefix(_[0-9]+)?Node.*
	PatternEditor
)

func (p Pattern) String() string {
	switch p {
	case PatternEditor:
		return "editor"
	default:
		return "runtime"
	}
}

func (p Pattern) suffix() string {
	if p == PatternEditor {
		return `(_[0-9]+)?Node.*`
	}
	return `(_[0-9]+)?.*Node.*`
}

type patternKey struct {
	prefix  string
	pattern Pattern
}

var compiled sync.Map // patternKey -> *regexp.Regexp

// Compile 构造（并缓存）前缀对应的正则
// 说明：前缀中的正则元字符按字面量处理
func (p Pattern) Compile(prefix string) *regexp.Regexp {
	key := patternKey{prefix: prefix, pattern: p}
	if re, ok := compiled.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + p.suffix())
	compiled.Store(key, re)
	return re
}

// FindByNamePrefix 按灯泡名前缀查找组件节点
// 功能：在parent的后代中先序深度优先查找第一个名称匹配规则的节点
// 参数：parent-信号灯组件节点，prefix-灯泡名，p-匹配规则
// 返回：匹配节点的名称，未找到返回空串
func FindByNamePrefix(parent *scene.Node, prefix string, p Pattern) string {
	if parent == nil {
		return ""
	}
	re := p.Compile(prefix)
	found := parent.FindDescendant(func(n *scene.Node) bool {
		return re.MatchString(n.Value.Name)
	})
	if found == nil {
		return ""
	}
	return found.Value.Name
}

// ResolveLightName 将灯泡名解析为组件名
// 说明：优先使用构造时登记的角色名，未登记时退回到名称规则匹配
func ResolveLightName(parent *scene.Node, name string, p Pattern) string {
	if n := scene.FindByRole(parent, name); n != nil {
		return n.Value.Name
	}
	return FindByNamePrefix(parent, name, p)
}
