package config

import (
	"os"
	"path/filepath"
	"testing"

	viper "github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(orig))
	})
	return dir
}

// 沒有.env也要能以環境變數與預設值啟動
func TestLoadConfigWithoutEnvFile(t *testing.T) {
	viper.Reset()
	chdirTemp(t)

	cf, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "development", cf.Environment)
	require.Equal(t, "8080", cf.ServerPort)
	require.Equal(t, "localhost", cf.DbHost)
	require.Equal(t, "localhost:6379", cf.RedisAddr)
	require.Equal(t, "24h", cf.SessionTTL)
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	viper.Reset()
	dir := chdirTemp(t)

	content := "SERVER_PORT=9090\nPOSTGRES_DB=shopdb\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	cf, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "9090", cf.ServerPort)
	require.Equal(t, "shopdb", cf.DbName)
	// 沒在檔案裡的欄位維持預設值
	require.Equal(t, "5432", cf.DbPort)
}

// 壞掉的.env是真錯誤，不能被當成缺檔吞掉
func TestLoadConfigMalformedEnvFile(t *testing.T) {
	viper.Reset()
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("not a valid env line\n"), 0o644))

	_, err := loadConfig()
	require.Error(t, err)
}
