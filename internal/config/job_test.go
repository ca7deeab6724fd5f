package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadLocalConfigFile_HappyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`region: eu-west-2
local: true
logLevel: 1
accountID: "000000000000"
bookmarkBucket: job-bookmarks
notifyQueue: job-done
`)
	require.Nil(t, os.WriteFile(path, data, 0666))

	conf, err := ReadLocalConfigFile(path)
	require.Nil(t, err)
	assert.Equal(t, "eu-west-2", conf.Region)
	assert.True(t, conf.Local)
	assert.Equal(t, 1, conf.LogLevel)
	assert.Equal(t, "000000000000", conf.AccountID)
	assert.Equal(t, "job-bookmarks", conf.BookmarkBucket)
	assert.Equal(t, "job-done", conf.NotifyQueue)
	assert.True(t, conf.UsesAWS())

	// defaults
	assert.Equal(t, "bookmarks", conf.BookmarkPrefix)
	assert.Equal(t, ".gluego/bookmarks", conf.BookmarkDir)
}

func Test_ReadLocalConfigFile_UnhappyPath(t *testing.T) {
	_, err := ReadLocalConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte("region: [not, a, string"), 0666))
	_, err = ReadLocalConfigFile(path)
	assert.NotNil(t, err)
}

func Test_Default_HappyPath(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")

	conf := Default()
	assert.Equal(t, "eu-west-1", conf.Region)
	assert.False(t, conf.UsesAWS())
}

func Test_LoadEnv_HappyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.Nil(t, os.WriteFile(path, []byte("GLUEGO_TEST_VALUE=from-env-file\n"), 0666))
	t.Setenv("GLUEGO_TEST_VALUE", "")
	os.Unsetenv("GLUEGO_TEST_VALUE")

	require.Nil(t, LoadEnv(path))
	assert.Equal(t, "from-env-file", os.Getenv("GLUEGO_TEST_VALUE"))

	// missing env files are ignored
	assert.Nil(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
}
