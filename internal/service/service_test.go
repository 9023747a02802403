package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interview_prep_client/internal/api"
	"interview_prep_client/internal/config"
	"interview_prep_client/internal/session"
	"interview_prep_client/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEnv 用假服务端构建一套客户端与会话，façade 的行为用真实 HTTP 往返验证
func newTestEnv(t *testing.T, handler http.Handler) (*api.Client, *session.Store) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.New(storage.NewMemory())
	require.NoError(t, err)

	cfg := &config.Config{
		API: config.APIConfig{
			BaseURL: srv.URL,
			Timeout: 2 * time.Second,
		},
	}
	return api.New(cfg, store), store
}
