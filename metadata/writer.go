package metadata

import (
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/samber/lo"
)

const rootTag = "RoadRunnerMetadata"

// Write 将元数据写为XML文档
// 功能：按version选择合并或拆分结构输出，资产按id排序以保证输出稳定
// 参数：m-元数据，version-写入根元素的Version
// 返回：带缩进的XML内容
func Write(m *Metadata, version int) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootTag)
	root.CreateAttr(attrVersion, strconv.Itoa(version))
	if version < SplitSchemaVersion {
		data := root.CreateElement(tagSignalData)
		writeSignalAssets(data.CreateElement(tagSignalAssets), m.SignalAssets)
		writeJunctions(data, m.Junctions)
	} else {
		writeSignalAssets(root.CreateElement(tagSignalConfigurations), m.SignalAssets)
		writeJunctions(root.CreateElement(tagSignalization), m.Junctions)
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}

// WriteSignalAssets 写出以SignalConfigurations为根的XML片段
func WriteSignalAssets(assets map[string]SignalAsset) ([]byte, error) {
	doc := etree.NewDocument()
	writeSignalAssets(doc.CreateElement(tagSignalConfigurations), assets)
	doc.Indent(2)
	return doc.WriteToBytes()
}

// WriteSignalization 写出以Signalization为根的XML片段
func WriteSignalization(junctions []Junction) ([]byte, error) {
	doc := etree.NewDocument()
	writeJunctions(doc.CreateElement(tagSignalization), junctions)
	doc.Indent(2)
	return doc.WriteToBytes()
}

// WriteOpenDrive 写出只包含信号灯id映射的最小OpenDRIVE文档
// 参数：roads-道路id -> (OpenDRIVE信号id -> 信号灯uuid)
func WriteOpenDrive(roads map[string]map[int]string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" standalone="yes"`)
	root := doc.CreateElement("OpenDRIVE")
	roadIDs := lo.Keys(roads)
	sort.Strings(roadIDs)
	for _, roadID := range roadIDs {
		road := root.CreateElement("road")
		road.CreateAttr("id", roadID)
		signals := road.CreateElement("signals")
		ids := lo.Keys(roads[roadID])
		sort.Ints(ids)
		for _, id := range ids {
			signal := signals.CreateElement("signal")
			signal.CreateAttr("id", strconv.Itoa(id))
			signal.CreateElement("userData").CreateElement("vectorSignal").CreateAttr("signalId", roads[roadID][id])
		}
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}

func writeSignalAssets(parent *etree.Element, assets map[string]SignalAsset) {
	ids := lo.Keys(assets)
	sort.Strings(ids)
	for _, id := range ids {
		a := assets[id]
		el := parent.CreateElement(tagSignal)
		el.CreateElement(tagID).SetText(a.ID)
		for _, c := range a.SignalConfigurations {
			cel := el.CreateElement(tagConfiguration)
			cel.CreateElement(tagName).SetText(c.Name)
			for _, b := range c.LightBulbStates {
				bel := cel.CreateElement(tagLightState)
				bel.CreateElement(tagName).SetText(b.Name)
				bel.CreateElement(tagState).SetText(formatBool(b.State))
			}
		}
	}
}

func writeJunctions(parent *etree.Element, junctions []Junction) {
	for _, j := range junctions {
		jel := parent.CreateElement(tagJunction)
		jel.CreateElement(tagID).SetText(j.ID)
		for _, p := range j.SignalPhases {
			pel := jel.CreateElement(tagSignalPhase)
			for _, in := range p.Intervals {
				iel := pel.CreateElement(tagInterval)
				iel.CreateElement(tagTime).SetText(formatFloat(in.Time))
				for _, s := range in.SignalStates {
					sel := iel.CreateElement(tagSignal)
					sel.CreateElement(tagID).SetText(s.ID)
					sel.CreateElement(tagSignalAsset).SetText(s.SignalAssetID)
					sel.CreateElement(tagConfigurationIndex).SetText(strconv.Itoa(s.Configuration))
				}
			}
		}
	}
}
