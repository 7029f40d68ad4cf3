package config

// InputPath 输入数据来源（文件或MongoDB）
// 说明：File优先；否则从MongoDB的DB.Col中读取，读取结果以protobuf格式缓存
type InputPath struct {
	DB        string `yaml:"db,omitempty"`         // 数据库名
	Col       string `yaml:"col,omitempty"`        // 集合名
	Name      string `yaml:"name,omitempty"`       // 文档名，为空时取集合中的第一个文档
	Cache     string `yaml:"cache,omitempty"`      // 缓存文件名，为空则采用默认路径{db}.{col}.{name}.pb
	OnlyCache bool   `yaml:"only_cache,omitempty"` // 只从缓存读取，不连接数据库
	File      string `yaml:"file,omitempty"`       // 文件路径（优先级高于MongoDB）
}

// GetDb 获取数据库名
func (p InputPath) GetDb() string {
	return p.DB
}

// GetColl 获取集合名
func (p InputPath) GetColl() string {
	return p.Col
}

// GetCachePath 获取缓存文件名
// 说明：未指定时使用{数据库名}.{集合名}.{文档名}.pb
func (p InputPath) GetCachePath() string {
	if p.Cache != "" {
		return p.Cache
	}
	name := p.Name
	if name == "" {
		name = "first"
	}
	return p.DB + "." + p.Col + "." + name + ".pb"
}

// FromMongo 是否从MongoDB读取（含只读缓存）
func (p InputPath) FromMongo() bool {
	return p.File == "" && p.DB != "" && p.Col != ""
}

// NeedConnection 是否需要连接MongoDB
func (p InputPath) NeedConnection() bool {
	return p.FromMongo() && !p.OnlyCache
}

// Input 指定所有输入数据的配置项
type Input struct {
	URI       string     `yaml:"uri,omitempty"`       // MongoDB连接字符串
	Metadata  InputPath  `yaml:"metadata"`            // RoadRunner信号灯元数据（.rrdata.xml）
	OpenDrive *InputPath `yaml:"opendrive,omitempty"` // OpenDRIVE文件（.xodr），用于信号id映射
}

// ControlStep 模拟时间范围和间隔
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数，0表示运行到收到退出信号
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step        ControlStep `yaml:"step"`
	ImportMode  string      `yaml:"import_mode,omitempty"`  // blueprint|level|datasmith，默认level
	Metrics     bool        `yaml:"metrics,omitempty"`      // 在sidecar上提供/metrics
	EditorMatch bool        `yaml:"editor_match,omitempty"` // 蓝图灯泡名使用编辑器匹配规则
}

// Config YAML配置文件的根结构
type Config struct {
	Input   Input   `yaml:"input"`   // 输入
	Control Control `yaml:"control"` // 模拟过程控制
}
