// 信号灯资产目录
package catalog

import (
	"sort"
	"sync"

	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "catalog")

// Catalog 信号灯资产id到资产定义的只读映射
type Catalog struct {
	assets map[string]metadata.SignalAsset

	// 已经告警过的缺失id
	missingMtx sync.Mutex
	missing    map[string]struct{}
}

// New 创建资产目录，assets在创建后不应再被修改
func New(assets map[string]metadata.SignalAsset) *Catalog {
	if assets == nil {
		assets = make(map[string]metadata.SignalAsset)
	}
	return &Catalog{
		assets:  assets,
		missing: make(map[string]struct{}),
	}
}

// Get 获取信号灯资产
// 功能：按id查找资产；不存在时返回没有任何配置的空资产
// 说明：每个缺失的id只告警一次
func (c *Catalog) Get(assetID string) metadata.SignalAsset {
	if c == nil {
		log.Warnf("Could not find signal asset %s: catalog not initialized.", assetID)
		return metadata.SignalAsset{}
	}
	if a, ok := c.assets[assetID]; ok {
		return a
	}
	c.missingMtx.Lock()
	defer c.missingMtx.Unlock()
	if _, ok := c.missing[assetID]; !ok {
		c.missing[assetID] = struct{}{}
		log.Warnf("Could not find signal asset %s.", assetID)
	}
	return metadata.SignalAsset{}
}

// Contains 是否包含指定资产
func (c *Catalog) Contains(assetID string) bool {
	if c == nil {
		return false
	}
	_, ok := c.assets[assetID]
	return ok
}

// Len 资产数量
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.assets)
}

// IDs 排序后的全部资产id
func (c *Catalog) IDs() []string {
	if c == nil {
		return []string{}
	}
	ids := lo.Keys(c.assets)
	sort.Strings(ids)
	return ids
}

// MissingIDs 排序后的已查询但缺失的资产id
func (c *Catalog) MissingIDs() []string {
	if c == nil {
		return []string{}
	}
	c.missingMtx.Lock()
	defer c.missingMtx.Unlock()
	ids := lo.Keys(c.missing)
	sort.Strings(ids)
	return ids
}
