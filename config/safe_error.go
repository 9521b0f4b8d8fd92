package config

// SafeErrorMessage release 模式下不向客户端暴露内部错误详情
// 其余模式（debug/test 或未初始化）返回原始错误信息，便于排查
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
