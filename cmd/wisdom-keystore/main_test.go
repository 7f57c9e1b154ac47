package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huang190105/wisdom-operations-master/internal/core/keystore"
)

// setupConfig 写入低成本 KDF 参数的配置文件并通过环境变量指定
func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := `{
  "environment": "test",
  "storage": {"data_root": "` + filepath.ToSlash(filepath.Join(dir, "data")) + `"},
  "log": {"level": "error"},
  "keystore": {"memory_cost": 8192, "time_cost": 1, "parallelism": 1}
}`
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0600))
	t.Setenv("WISDOM_CONFIG", path)
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func decode(t *testing.T, out string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &m), out)
	return m
}

func TestAccountLifecycleWithFile(t *testing.T) {
	dir := setupConfig(t)
	file := filepath.Join(dir, "account.json")

	out, err := run(t, "", "account", "new", "--memory", "--password", "correcthorse1", "--out", file, "-o", "json")
	require.NoError(t, err)
	created := decode(t, out)
	addr := created["address"].(string)
	assert.Len(t, addr, 40)

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	t.Run("查看", func(t *testing.T) {
		out, err := run(t, "", "account", "show", "--file", file, "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, addr, decode(t, out)["address"])
	})

	t.Run("恢复", func(t *testing.T) {
		out, err := run(t, "", "account", "recover", "--memory", "--file", file, "--password", "correcthorse1", "-o", "json")
		require.NoError(t, err)
		result := decode(t, out)
		assert.Equal(t, true, result["verified"])
		assert.NotContains(t, result, "private_key")
	})

	t.Run("口令错误", func(t *testing.T) {
		_, err := run(t, "", "account", "recover", "--memory", "--file", file, "--password", "wrongpassword1")
		assert.True(t, errors.Is(err, keystore.ErrAuthentication))
	})

	t.Run("修改口令", func(t *testing.T) {
		_, err := run(t, "", "account", "passwd", "--memory", "--file", file,
			"--password", "correcthorse1", "--new-password", "batterystaple9", "-o", "json")
		require.NoError(t, err)

		out, err := run(t, "", "account", "recover", "--memory", "--file", file,
			"--password", "batterystaple9", "--show-private", "-o", "json")
		require.NoError(t, err)
		result := decode(t, out)
		assert.Equal(t, addr, result["address"])
		assert.Len(t, result["private_key"], 64)
	})

	t.Run("不覆盖已有文件", func(t *testing.T) {
		_, err := run(t, "", "account", "new", "--memory", "--password", "correcthorse1", "--out", file)
		assert.Error(t, err)
	})
}

func TestAccountPersistedInBadger(t *testing.T) {
	setupConfig(t)

	out, err := run(t, "correcthorse1\ncorrecthorse1\n", "account", "new", "-o", "json")
	require.NoError(t, err)
	addr := decode(t, out)["address"].(string)

	out, err = run(t, "correcthorse1\n", "account", "recover", addr, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, true, decode(t, out)["verified"])

	_, err = run(t, "", "account", "show", "0123456789abcdef0123456789abcdef01234567")
	assert.True(t, errors.Is(err, keystore.ErrKeystoreNotFound))
}

func TestPasswordMismatch(t *testing.T) {
	setupConfig(t)
	_, err := run(t, "correcthorse1\ncorrecthorse2\n", "account", "new", "--memory")
	assert.Error(t, err)
}

func TestInvalidPassword(t *testing.T) {
	setupConfig(t)
	_, err := run(t, "", "account", "new", "--memory", "--password", "short")
	assert.True(t, errors.Is(err, keystore.ErrValidation))
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := run(t, "", "version", "-o", "yaml")
	assert.Error(t, err)
}

func TestConfigTemplate(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "config", "template", "--env", "test")
	require.NoError(t, err)
	assert.Equal(t, "test", decode(t, out)["environment"])

	path := filepath.Join(dir, "config.json")
	_, err = run(t, "", "config", "template", "--env", "dev", "--out", path, "--silent")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", decode(t, string(data))["environment"])

	// 已存在的文件不覆盖，除非指定 --force
	_, err = run(t, "", "config", "template", "--out", path)
	assert.Error(t, err)
	_, err = run(t, "", "config", "template", "--out", path, "--force", "--silent")
	require.NoError(t, err)

	_, err = run(t, "", "config", "template", "--env", "staging")
	assert.Error(t, err)
}
