package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceGet(t *testing.T) {
	r := gin.New()
	r.GET("/api/v1/users/:id", func(c *gin.Context) {
		assert.Equal(t, "7", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{
			"code": 0, "message": "success",
			"data": gin.H{"id": 7, "username": "a", "email": "a@b.com"},
		})
	})

	client, _ := newTestEnv(t, r)
	svc := NewUserService(client)

	user, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
}

func TestUserServiceUpdateOmitsEmptyFields(t *testing.T) {
	r := gin.New()
	r.PUT("/api/v1/users/:id", func(c *gin.Context) {
		var body map[string]any
		require.NoError(t, c.ShouldBindJSON(&body))
		assert.Equal(t, "b", body["username"])
		_, hasAvatar := body["avatar"]
		assert.False(t, hasAvatar)

		c.JSON(http.StatusOK, gin.H{
			"code": 0, "message": "success",
			"data": gin.H{"id": 7, "username": "b", "email": "a@b.com"},
		})
	})

	client, _ := newTestEnv(t, r)
	svc := NewUserService(client)

	user, err := svc.Update(context.Background(), 7, UpdateUserRequest{Username: "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", user.Username)
}
