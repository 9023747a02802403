package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracerReturnsShutdownableProvider(t *testing.T) {
	tp, err := InitTracer("test-client", "http://localhost:14268/api/traces")
	require.NoError(t, err)
	require.NotNil(t, tp)

	// 退出前必须能 Shutdown，否则批量导出的 span 永远不落盘
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, tp.Shutdown(ctx))
}
