package metadata

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/OpenHUTB/carla-0.9.14/scene"
	"github.com/beevik/etree"
)

// ErrMalformedMetadata 元数据文档结构无效（XML非法、缺少根元素或缺少必需元素）
var ErrMalformedMetadata = errors.New("malformed signal metadata")

const (
	tagID                 = "ID"
	tagName               = "Name"
	tagState              = "State"
	tagTime               = "Time"
	tagConfiguration      = "Configuration"
	tagLightState         = "LightState"
	tagSignal             = "Signal"
	tagSignalAsset        = "SignalAsset"
	tagConfigurationIndex = "ConfigurationIndex"
	tagSignalPhase        = "SignalPhase"
	tagInterval           = "Interval"
	tagJunction           = "Junction"

	attrVersion = "Version"
)

// LoadContext 解析信号状态时用于展开灯泡实例的上下文
type LoadContext struct {
	// 信号灯id -> 信号灯组件节点，为空时只解析简略的信号状态
	ComponentIndex map[string]*scene.Node
	// 信号灯资产表
	SignalAssets map[string]SignalAsset
	// 灯泡名匹配规则
	Pattern Pattern
}

func (c *LoadContext) resolving() bool {
	return c != nil && len(c.ComponentIndex) > 0
}

type parseOptions struct {
	index   map[string]*scene.Node
	pattern Pattern
}

// ParseOption 解析选项
type ParseOption func(*parseOptions)

// WithComponentIndex 提供信号灯组件索引，解析时展开每个信号状态的灯泡实例
func WithComponentIndex(index map[string]*scene.Node) ParseOption {
	return func(o *parseOptions) {
		o.index = index
	}
}

// WithPattern 指定灯泡名匹配规则（默认PatternRuntime）
func WithPattern(p Pattern) ParseOption {
	return func(o *parseOptions) {
		o.pattern = p
	}
}

// PatternOf 解析选项最终使用的灯泡名匹配规则
func PatternOf(opts ...ParseOption) Pattern {
	o := parseOptions{pattern: PatternRuntime}
	for _, opt := range opts {
		opt(&o)
	}
	return o.pattern
}

func text(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}

func readDocument(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: invalid xml: %v", ErrMalformedMetadata, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: missing root element", ErrMalformedMetadata)
	}
	return root, nil
}

// Parse 解析RoadRunner信号灯元数据
// 功能：根据根元素Version选择结构变体，解析信号灯资产表与路口列表
// 参数：data-XML文档内容，opts-解析选项
// 返回：规范化的元数据，结构无效时返回包装了ErrMalformedMetadata的错误
// 算法说明：
// 1. 读取XML并取得根元素
// 2. 按Version选择结构变体，定位资产元素与路口元素
// 3. 先解析资产表，再解析路口（路口中的信号状态需要查询资产表）
// 说明：单个信号状态的引用错误只产生警告，不会中断整个解析
func Parse(data []byte, opts ...ParseOption) (*Metadata, error) {
	o := parseOptions{pattern: PatternRuntime}
	for _, opt := range opts {
		opt(&o)
	}
	root, err := readDocument(data)
	if err != nil {
		return nil, err
	}
	version := parseInt(root.SelectAttrValue(attrVersion, ""))
	s := schemaFor(version)
	assetsEl, junctionsEl := s.locate(root)
	if assetsEl == nil {
		return nil, fmt.Errorf("%w: missing signal asset element (version %d, %s layout)", ErrMalformedMetadata, version, s.name())
	}
	if junctionsEl == nil {
		return nil, fmt.Errorf("%w: missing junction element (version %d, %s layout)", ErrMalformedMetadata, version, s.name())
	}
	m := &Metadata{
		Version:      version,
		SignalAssets: make(map[string]SignalAsset),
	}
	if m.OutOfDate() {
		log.Warnf("metadata version %d is newer than supported version %d", version, PluginVersion)
	}
	LoadSignalAssets(assetsEl, m.SignalAssets)
	m.Junctions = LoadSignalJunctions(junctionsEl, &LoadContext{
		ComponentIndex: o.index,
		SignalAssets:   m.SignalAssets,
		Pattern:        o.pattern,
	})
	log.Debugf("parsed %d signal assets and %d junctions", len(m.SignalAssets), len(m.Junctions))
	return m, nil
}

// ParseFile 从文件解析元数据
func ParseFile(path string, opts ...ParseOption) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file %s: %w", path, err)
	}
	m, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseSignalAssets 解析以信号灯资产元素为根的XML片段
func ParseSignalAssets(data []byte) (map[string]SignalAsset, error) {
	root, err := readDocument(data)
	if err != nil {
		return nil, err
	}
	assets := make(map[string]SignalAsset)
	LoadSignalAssets(root, assets)
	return assets, nil
}

// ParseSignalization 解析以路口数据元素为根的XML片段（只得到简略信号状态）
func ParseSignalization(data []byte) ([]Junction, error) {
	root, err := readDocument(data)
	if err != nil {
		return nil, err
	}
	return LoadSignalJunctions(root, nil), nil
}

// LoadLightBulbState 解析LightState元素（Name、State）
func LoadLightBulbState(el *etree.Element) LightBulbState {
	var s LightBulbState
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case tagName:
			s.Name = text(child)
		case tagState:
			s.State = parseBool(text(child))
		}
	}
	return s
}

// LoadSignalConfiguration 解析Configuration元素（Name、多个LightState）
func LoadSignalConfiguration(el *etree.Element) SignalConfiguration {
	c := SignalConfiguration{LightBulbStates: make([]LightBulbState, 0)}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case tagName:
			c.Name = text(child)
		case tagLightState:
			c.LightBulbStates = append(c.LightBulbStates, LoadLightBulbState(child))
		}
	}
	return c
}

// LoadSignalAsset 解析信号灯资产Signal元素（ID、多个Configuration）
func LoadSignalAsset(el *etree.Element) SignalAsset {
	a := SignalAsset{SignalConfigurations: make([]SignalConfiguration, 0)}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case tagID:
			a.ID = text(child)
		case tagConfiguration:
			a.SignalConfigurations = append(a.SignalConfigurations, LoadSignalConfiguration(child))
		}
	}
	return a
}

// LoadSignalAssets 将资产元素下的所有Signal写入out（同id后写覆盖先写）
func LoadSignalAssets(el *etree.Element, out map[string]SignalAsset) {
	for _, child := range el.ChildElements() {
		if child.Tag == tagSignal {
			a := LoadSignalAsset(child)
			out[a.ID] = a
		}
	}
}

// LoadSignalState 解析信号状态Signal元素
// 功能：读取ID、SignalAsset、ConfigurationIndex；提供组件索引时展开灯泡实例
// 参数：el-Signal元素，ctx-解析上下文（可为nil）
// 返回：信号状态，引用无法解析时返回不含灯泡实例的信号状态并记录警告
func LoadSignalState(el *etree.Element, ctx *LoadContext) SignalState {
	var s SignalState
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case tagID:
			s.ID = text(child)
		case tagSignalAsset:
			s.SignalAssetID = text(child)
		case tagConfigurationIndex:
			s.Configuration = parseInt(text(child))
		}
	}
	if !ctx.resolving() {
		return s
	}
	asset, ok := ctx.SignalAssets[s.SignalAssetID]
	if !ok {
		log.Warnf("Signal Asset %s could not be found.", s.SignalAssetID)
		return s
	}
	if s.Configuration < 0 || s.Configuration >= len(asset.SignalConfigurations) {
		log.Warnf("Signal Configuration for %s out of range.", s.ID)
		return s
	}
	node, ok := ctx.ComponentIndex[s.ID]
	if !ok {
		log.Warnf("Signal %s not found inside this blueprint.", s.ID)
		return s
	}
	bulbs := asset.SignalConfigurations[s.Configuration].LightBulbStates
	s.LightInstanceStates = make([]LightInstanceState, 0, len(bulbs))
	for _, b := range bulbs {
		name := ResolveLightName(node, b.Name, ctx.Pattern)
		s.LightInstanceStates = append(s.LightInstanceStates, LightInstanceState{
			ComponentName: name,
			State:         b.State,
			Ref:           scene.NewComponentRef(nil, name),
		})
	}
	return s
}

// LoadInterval 解析Interval元素（Time、多个Signal）
func LoadInterval(el *etree.Element, ctx *LoadContext) LightInterval {
	in := LightInterval{SignalStates: make([]SignalState, 0)}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case tagTime:
			in.Time = parseFloat(text(child))
		case tagSignal:
			in.SignalStates = append(in.SignalStates, LoadSignalState(child, ctx))
		}
	}
	return in
}

// LoadSignalPhase 解析SignalPhase元素（多个Interval）
func LoadSignalPhase(el *etree.Element, ctx *LoadContext) SignalPhase {
	p := SignalPhase{Intervals: make([]LightInterval, 0)}
	for _, child := range el.ChildElements() {
		if child.Tag == tagInterval {
			p.Intervals = append(p.Intervals, LoadInterval(child, ctx))
		}
	}
	return p
}

// LoadJunction 解析Junction元素（ID、多个SignalPhase）
func LoadJunction(el *etree.Element, ctx *LoadContext) Junction {
	j := Junction{SignalPhases: make([]SignalPhase, 0)}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case tagID:
			j.ID = text(child)
		case tagSignalPhase:
			j.SignalPhases = append(j.SignalPhases, LoadSignalPhase(child, ctx))
		}
	}
	return j
}

// LoadSignalJunctions 解析路口数据元素下的所有Junction，el为nil时返回空列表
func LoadSignalJunctions(el *etree.Element, ctx *LoadContext) []Junction {
	res := make([]Junction, 0)
	if el == nil {
		return res
	}
	for _, child := range el.ChildElements() {
		if child.Tag == tagJunction {
			res = append(res, LoadJunction(child, ctx))
		}
	}
	return res
}
