package input

import (
	"os"

	"git.fiblab.net/general/common/v2/fsutil"
)

// preCheckCache 预检查缓存目录
// 功能：验证输入缓存目录的有效性，决定是否启用缓存功能
// 参数：cacheDir-缓存目录路径
// 返回：true表示启用缓存，false表示禁用缓存
// 算法说明：
// 1. 检查缓存目录是否为空：空则禁用缓存
// 2. 检查目录是否存在：不存在时尝试创建
// 3. 验证是否为目录：确保路径指向的是目录而不是文件
func preCheckCache(cacheDir string) bool {
	if cacheDir == "" {
		log.Info("disable input cache")
		return false
	}
	stat, err := os.Stat(cacheDir)
	if os.IsNotExist(err) {
		fsutil.MustHaveDir(cacheDir)
		stat, err = os.Stat(cacheDir)
	}
	if err == nil && stat.IsDir() {
		log.Infof("enable input cache at %s", cacheDir)
		return true
	}
	log.Errorf("disable input cache because invalid dir %s (not a directory)", cacheDir)
	return false
}
