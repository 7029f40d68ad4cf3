// 随机数引擎，包装了golang.org/x/exp/rand，用于生成可复现的测试与示例数据
package randengine

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 说明：相同种子（与种子偏移量）产生相同序列；非线程安全
type Engine struct {
	*rand.Rand // 底层随机数生成器
}

// New 创建随机数引擎
// 参数：seed-随机数种子，实际种子为seed加上rand.seed_offset
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// DiscreteDistribution 按给定权重随机选择下标
// 算法说明：在[0, 总权重)内取随机数，返回累积权重首次超过它的下标
func (e *Engine) DiscreteDistribution(weight []float64) int32 {
	random := .0
	for _, w := range weight {
		random += w
	}
	random *= e.Float64()
	sum := 0.
	for i, w := range weight {
		sum += w
		if sum > random {
			return int32(i)
		}
	}
	log.Panicf("randengine: DiscreteDistribution: sum: %f random: %f", sum, random)
	return -1
}

// PTrue 以概率p返回true
func (e *Engine) PTrue(p float64) bool {
	return e.Float64() < p
}

// Between [min, max)内的随机浮点数
func (e *Engine) Between(min, max float64) float64 {
	return min + (max-min)*e.Float64()
}

// RangeInt [min, max]内的随机整数
func (e *Engine) RangeInt(min, max int) int {
	return min + e.Intn(max-min+1)
}

// UUID 由本引擎生成的版本4 uuid，格式为"{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}"
func (e *Engine) UUID() string {
	id, err := uuid.NewRandomFromReader(e.Rand)
	if err != nil {
		log.Panicf("randengine: UUID: %v", err)
	}
	return fmt.Sprintf("{%s}", id)
}
