package input

import (
	"context"
	"fmt"
	"os"

	"git.fiblab.net/general/common/v2/cache"
	"git.fiblab.net/general/common/v2/mongoutil"
	inputv1 "github.com/OpenHUTB/carla-0.9.14/gen/roadrunner/input/v1"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/utils/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Input 输入数据
// 功能：存储运行所需的原始输入（RoadRunner元数据与可选的OpenDRIVE文件）
// 说明：只保存原始字节，解析交给metadata包；从数据库下载的内容按配置缓存到本地
type Input struct {
	Metadata  []byte // .rrdata.xml内容
	OpenDrive []byte // .xodr内容，未配置时为nil

	cacheDir string
}

// Load 下载数据
// 功能：根据配置加载全部输入数据
// 参数：ctx-上下文，c-配置对象，cacheDir-缓存目录
// 返回：加载完成的输入数据，失败时返回错误
// 算法说明：
// 1. 缓存检查：验证缓存目录的有效性
// 2. 数据库连接：如果有输入需要从MongoDB下载则建立连接
// 3. 元数据加载：文件优先，否则从MongoDB加载（带缓存）
// 4. OpenDRIVE加载：同上，未配置则跳过
func Load(ctx context.Context, c config.Config, cacheDir string) (*Input, error) {
	if !preCheckCache(cacheDir) {
		cacheDir = ""
	}
	res := &Input{cacheDir: cacheDir}

	var client *mongo.Client
	needMongo := c.Input.Metadata.NeedConnection() || (c.Input.OpenDrive != nil && c.Input.OpenDrive.NeedConnection())
	if needMongo {
		if c.Input.URI == "" {
			return nil, fmt.Errorf("input.uri is required to load from mongodb")
		}
		var err error
		if client, err = connect(c.Input.URI); err != nil {
			return nil, err
		}
		defer client.Disconnect(context.Background())
	}

	var err error
	if res.Metadata, err = load(ctx, client, c.Input.Metadata, cacheDir); err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}
	if c.Input.OpenDrive != nil {
		if res.OpenDrive, err = load(ctx, client, *c.Input.OpenDrive, cacheDir); err != nil {
			return nil, fmt.Errorf("load opendrive: %w", err)
		}
	}
	return res, nil
}

// connect 连接MongoDB，将连接失败的panic转为错误
func connect(uri string) (client *mongo.Client, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("connect to mongodb: %v", r)
		}
	}()
	return mongoutil.NewClient(uri), nil
}

// load 从文件或MongoDB加载一个输入
func load(ctx context.Context, client *mongo.Client, p config.InputPath, cacheDir string) ([]byte, error) {
	if p.File != "" {
		return os.ReadFile(p.File)
	}
	if !p.FromMongo() {
		return nil, fmt.Errorf("input needs file or db/col")
	}
	var downloadFunc func() *inputv1.Document
	if !p.OnlyCache {
		if client == nil {
			return nil, fmt.Errorf("no mongodb client for %s.%s", p.DB, p.Col)
		}
		coll := mongoutil.GetMongoColl(client, p)
		downloadFunc = func() *inputv1.Document {
			doc, err := download(ctx, coll, p.Name)
			if err != nil {
				panic(err)
			}
			return doc
		}
	}
	log.Infof("start fetching from %s.%s", p.DB, p.Col)
	doc, err := loadWithCache(cacheDir, p, downloadFunc)
	if err != nil {
		return nil, err
	}
	log.Infof("finish fetching from %s.%s (%s, %d bytes)", p.DB, p.Col, doc.Name, len(doc.Data))
	return doc.Data, nil
}

// loadWithCache 调用cache.LoadWithCache，将下载函数中panic的错误转为返回值
// 说明：下载失败时不会写入缓存
func loadWithCache(cacheDir string, p cache.IPath, download func() *inputv1.Document) (doc *inputv1.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			doc, err = nil, e
		}
	}()
	return cache.LoadWithCache(cacheDir, p, download)
}

// download 读取集合中名为name的文档，name为空时读取第一个文档
// 说明：文档结构为{name: string, data: string}
func download(ctx context.Context, coll *mongo.Collection, name string) (*inputv1.Document, error) {
	filter := bson.M{}
	if name != "" {
		filter["name"] = name
	}
	raw, err := coll.FindOne(ctx, filter).Raw()
	if err != nil {
		return nil, fmt.Errorf("find %q in %s: %w", name, coll.Name(), err)
	}
	var data string
	if err := mongoutil.UnmarshalBson(raw, &data); err != nil {
		return nil, fmt.Errorf("decode %q in %s: %w", name, coll.Name(), err)
	}
	doc := &inputv1.Document{Name: name, Data: []byte(data)}
	if v, err := raw.LookupErr("name"); err == nil {
		if s, ok := v.StringValueOK(); ok {
			doc.Name = s
		}
	}
	return doc, nil
}

// ParseMetadata 解析元数据（不解析组件引用），结果按内容摘要缓存
// 说明：用于场景合成等只需要数据本身的场合
func (in *Input) ParseMetadata() (*metadata.Metadata, error) {
	return ParseMetadata(in.Metadata, in.cacheDir)
}

// ParseOpenDrive 解析OpenDRIVE中的信号id映射，未配置OpenDRIVE时返回nil
func (in *Input) ParseOpenDrive() (map[int]string, error) {
	if in.OpenDrive == nil {
		return nil, nil
	}
	return metadata.ParseOpenDrive(in.OpenDrive)
}

