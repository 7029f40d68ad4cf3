package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig 配置内容无效
var ErrInvalidConfig = errors.New("invalid config")

// Load 严格解析YAML配置（未知字段视为错误）并校验
func Load(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate 校验配置
func (c Config) Validate() error {
	if c.Input.Metadata.File == "" && !c.Input.Metadata.FromMongo() {
		return fmt.Errorf("%w: input.metadata needs file or db/col", ErrInvalidConfig)
	}
	if od := c.Input.OpenDrive; od != nil && od.File == "" && !od.FromMongo() {
		return fmt.Errorf("%w: input.opendrive needs file or db/col", ErrInvalidConfig)
	}
	if c.Control.Step.Interval <= 0 {
		return fmt.Errorf("%w: control.step.interval must be positive, got %v", ErrInvalidConfig, c.Control.Step.Interval)
	}
	if c.Control.Step.Total < 0 {
		return fmt.Errorf("%w: control.step.total must not be negative", ErrInvalidConfig)
	}
	switch c.Control.ImportMode {
	case "", "blueprint", "level", "datasmith":
	default:
		return fmt.Errorf("%w: unknown control.import_mode %q", ErrInvalidConfig, c.Control.ImportMode)
	}
	return nil
}

// RuntimeConfig 运行时配置
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置创建运行时配置
// 说明：导入方式未指定时使用level
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	if rc.C.ImportMode == "" {
		rc.C.ImportMode = "level"
	}

	return rc
}
