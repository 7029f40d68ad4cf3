package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"
)

var (
	encoder, _ = zstd.NewWriter(nil)
	decoder, _ = zstd.NewReader(nil)
)

// writeCache 将v以CBOR编码、zstd压缩后写入文件
func writeCache(file string, v any) error {
	data, err := cbor.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache %s: %w", file, err)
	}
	if err := os.WriteFile(file, encoder.EncodeAll(data, nil), 0o644); err != nil {
		return fmt.Errorf("write cache %s: %w", file, err)
	}
	return nil
}

// readCache 读取writeCache写入的文件，文件不存在时返回的错误满足errors.Is(err, os.ErrNotExist)
func readCache(file string, v any) error {
	compressed, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	data, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("decompress cache %s: %w", file, err)
	}
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode cache %s: %w", file, err)
	}
	return nil
}

// metadataCacheFile 解析结果的缓存文件名，以原始内容的blake3摘要区分
func metadataCacheFile(data []byte) string {
	sum := blake3.Sum256(data)
	return fmt.Sprintf("metadata-%x.cbor.zst", sum[:16])
}

// ParseMetadata 解析元数据，cacheDir非空时缓存解析结果
// 说明：缓存损坏时重新解析并覆盖；缓存写入失败只告警
func ParseMetadata(data []byte, cacheDir string) (*metadata.Metadata, error) {
	if cacheDir == "" {
		return metadata.Parse(data)
	}
	file := filepath.Join(cacheDir, metadataCacheFile(data))
	md := &metadata.Metadata{}
	err := readCache(file, md)
	if err == nil {
		log.Debugf("load parsed metadata from %s", file)
		return md, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		log.Warnf("ignore broken metadata cache: %v", err)
	}
	if md, err = metadata.Parse(data); err != nil {
		return nil, err
	}
	if err := writeCache(file, md); err != nil {
		log.Warn(err)
	}
	return md, nil
}
