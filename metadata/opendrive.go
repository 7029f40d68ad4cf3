package metadata

import (
	"fmt"

	"github.com/beevik/etree"
)

// ParseOpenDrive 解析OpenDRIVE文档中的信号灯id映射
// 功能：遍历根元素下每个road的signals子元素，建立OpenDRIVE信号id到RoadRunner信号uuid的映射
// 参数：data-OpenDRIVE(.xodr)文档内容
// 返回：OpenDRIVE id -> 信号灯uuid（后写覆盖先写）
// 说明：缺少userData/vectorSignal的signal被跳过；id无法解析时按0处理
func ParseOpenDrive(data []byte) (map[int]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("invalid opendrive xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("invalid opendrive xml: missing root element")
	}
	res := make(map[int]string)
	for _, road := range root.SelectElements("road") {
		signals := road.SelectElement("signals")
		if signals == nil {
			continue
		}
		for _, signal := range signals.ChildElements() {
			userData := signal.SelectElement("userData")
			if userData == nil {
				continue
			}
			vectorSignal := userData.SelectElement("vectorSignal")
			if vectorSignal == nil {
				continue
			}
			id := parseInt(signal.SelectAttrValue("id", ""))
			res[id] = vectorSignal.SelectAttrValue("signalId", "")
		}
	}
	return res, nil
}
