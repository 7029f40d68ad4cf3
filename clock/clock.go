package clock

import (
	"fmt"

	"github.com/OpenHUTB/carla-0.9.14/utils/config"
)

// Clock 信控运行时钟
// 功能：按固定步长推进时间，驱动路口时段计时
// 说明：模拟区间为[StartStep, EndStep)；EndStep等于StartStep时不设上限
type Clock struct {
	DT        float64 // 每步时间间隔（秒）
	StartStep int32   // 起始步
	EndStep   int32   // 结束步

	T    float64 // 当前时间（秒）
	Step int32   // 当前步数
}

// New 根据配置创建时钟
// 参数：stepConfig-控制步配置
// 返回：已重置到起始步的时钟
func New(stepConfig config.ControlStep) *Clock {
	c := &Clock{
		DT:        stepConfig.Interval,
		StartStep: stepConfig.Start,
		EndStep:   stepConfig.Start + stepConfig.Total,
	}
	c.Init()
	return c
}

// Init 回到起始步
func (c *Clock) Init() {
	c.Step = c.StartStep
	c.T = float64(c.Step) * c.DT
}

// Tick 推进一步
func (c *Clock) Tick() {
	c.Step++
	c.T = float64(c.Step) * c.DT
}

// Unbounded 是否不设结束步
func (c *Clock) Unbounded() bool {
	return c.EndStep == c.StartStep
}

// Done 是否已到结束步
func (c *Clock) Done() bool {
	return !c.Unbounded() && c.Step >= c.EndStep
}

// String 当前时间，格式为HH:MM:SS
func (c *Clock) String() string {
	h, m, s := c.GetHourMinuteSecond()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, int(s))
}

// GetHourMinuteSecond 获取当前时间的小时、分钟、秒
// 返回：小时、分钟、秒（秒为浮点数，支持亚秒级精度）
func (c *Clock) GetHourMinuteSecond() (int, int, float64) {
	hour := int(c.T) / 3600
	minute := int(c.T) % 3600 / 60
	second := c.T - float64(hour*3600+minute*60)
	return hour, minute, second
}
