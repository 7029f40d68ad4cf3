package metadata

import (
	"github.com/beevik/etree"
)

const (
	tagSignalData           = "SignalData"
	tagSignalAssets         = "SignalAssets"
	tagSignalConfigurations = "SignalConfigurations"
	tagSignalization        = "Signalization"
)

// schema 元数据文档的结构变体
// 说明：根据根元素Version属性在解析开始时选择一次，各变体返回相同的两个元素
type schema interface {
	// locate 返回信号灯资产元素与路口数据元素，缺失时为nil
	locate(root *etree.Element) (assets *etree.Element, junctions *etree.Element)
	name() string
}

// schemaCombined Version<3：SignalData下同时包含SignalAssets与Junction
type schemaCombined struct{}

func (schemaCombined) locate(root *etree.Element) (*etree.Element, *etree.Element) {
	data := root.SelectElement(tagSignalData)
	if data == nil {
		return nil, nil
	}
	return data.SelectElement(tagSignalAssets), data
}

func (schemaCombined) name() string { return "combined" }

// schemaSplit Version>=3：SignalConfigurations与Signalization为同级元素
type schemaSplit struct{}

func (schemaSplit) locate(root *etree.Element) (*etree.Element, *etree.Element) {
	return root.SelectElement(tagSignalConfigurations), root.SelectElement(tagSignalization)
}

func (schemaSplit) name() string { return "split" }

func schemaFor(version int) schema {
	if version < SplitSchemaVersion {
		return schemaCombined{}
	}
	return schemaSplit{}
}
