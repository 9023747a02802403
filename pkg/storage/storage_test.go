package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKV(t *testing.T, kv KV) {
	t.Helper()

	_, ok, err := kv.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("token", "abc"))
	v, ok, err := kv.Get("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	// 同 key 覆盖
	require.NoError(t, kv.Set("token", "def"))
	v, _, err = kv.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "def", v)

	require.NoError(t, kv.Delete("token"))
	_, ok, err = kv.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)

	// 删除不存在的 key 不报错
	require.NoError(t, kv.Delete("missing"))
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemory())
}

func TestSqliteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := Open(path)
	require.NoError(t, err)

	testKV(t, db)

	// 重新打开后数据仍在
	require.NoError(t, db.Set("user", `{"id":1}`))
	require.NoError(t, db.Close())

	db2, err := Open(path)
	require.NoError(t, err)
	defer db2.Close()

	v, ok, err := db2.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":1}`, v)
}
