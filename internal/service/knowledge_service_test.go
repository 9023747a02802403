package service

import (
	"context"
	"net/http"
	"testing"

	"interview_prep_client/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeServiceListFilters(t *testing.T) {
	r := gin.New()
	r.GET("/api/v1/knowledge", func(c *gin.Context) {
		assert.Equal(t, "1", c.Query("page"))
		assert.Equal(t, "10", c.Query("page_size"))
		assert.Equal(t, "3", c.Query("category_id"))
		assert.Equal(t, "hard", c.Query("difficulty"))
		assert.Equal(t, "high", c.Query("frequency"))
		assert.Equal(t, "GMP", c.Query("search"))

		c.JSON(http.StatusOK, gin.H{
			"code": 0, "message": "success",
			"data": gin.H{
				"total": 1, "page": 1, "page_size": 10,
				"items": []gin.H{{
					"id": 11, "title": "GMP 调度模型", "category_id": 3,
					"difficulty": "hard", "frequency": "high",
					"references": `["https://go.dev/doc","深入Go调度器"]`,
				}},
			},
		})
	})

	client, _ := newTestEnv(t, r)
	svc := NewKnowledgeService(client)

	page, err := svc.List(context.Background(), ListKnowledgeQuery{
		Page:       1,
		PageSize:   10,
		CategoryID: 3,
		Difficulty: "hard",
		Frequency:  "high",
		Search:     "GMP",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	// 二次编码的 references 在边界处已解码
	assert.Equal(t, model.StringArray{"https://go.dev/doc", "深入Go调度器"}, page.Items[0].References)
}

func TestKnowledgeServiceListOmitsZeroFilters(t *testing.T) {
	r := gin.New()
	r.GET("/api/v1/knowledge", func(c *gin.Context) {
		_, hasCategory := c.GetQuery("category_id")
		assert.False(t, hasCategory)
		_, hasSearch := c.GetQuery("search")
		assert.False(t, hasSearch)

		c.JSON(http.StatusOK, gin.H{
			"code": 0, "message": "success",
			"data": gin.H{"total": 0, "page": 1, "page_size": 20, "items": []gin.H{}},
		})
	})

	client, _ := newTestEnv(t, r)
	svc := NewKnowledgeService(client)

	_, err := svc.List(context.Background(), ListKnowledgeQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
}

func TestKnowledgeServiceCategories(t *testing.T) {
	r := gin.New()
	r.GET("/api/v1/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"code": 0, "message": "success",
			"data": []gin.H{
				{"id": 1, "name": "Go 基础", "sort_order": 1},
				{"id": 2, "name": "并发编程", "sort_order": 2, "parent_id": 1},
			},
		})
	})

	client, _ := newTestEnv(t, r)
	svc := NewKnowledgeService(client)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Go 基础", categories[0].Name)
	require.NotNil(t, categories[1].ParentID)
	assert.Equal(t, uint(1), *categories[1].ParentID)
}

func TestKnowledgeServiceGetByID(t *testing.T) {
	r := gin.New()
	r.GET("/api/v1/knowledge/:id", func(c *gin.Context) {
		assert.Equal(t, "11", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{
			"code": 0, "message": "success",
			"data": gin.H{"id": 11, "title": "GMP 调度模型", "content": "<p>...</p>"},
		})
	})

	client, _ := newTestEnv(t, r)
	svc := NewKnowledgeService(client)

	kp, err := svc.Get(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, uint(11), kp.ID)
}

func TestKnowledgeServiceGraph(t *testing.T) {
	r := gin.New()
	r.GET("/api/v1/knowledge/graph", func(c *gin.Context) {
		assert.Equal(t, "3", c.Query("category_id"))
		c.JSON(http.StatusOK, gin.H{
			"code": 0, "message": "success",
			"data": gin.H{
				"nodes": []gin.H{
					{"id": "kp-1", "label": "goroutine", "data": gin.H{"id": 1, "title": "goroutine", "difficulty": "easy"}},
					{"id": "kp-2", "label": "channel", "data": gin.H{"id": 2, "title": "channel", "difficulty": "medium"}},
				},
				"edges": []gin.H{
					{"id": "e-1", "source": "kp-1", "target": "kp-2", "label": "前置", "type": "prerequisite"},
				},
			},
		})
	})

	client, _ := newTestEnv(t, r)
	svc := NewKnowledgeService(client)

	graph, err := svc.Graph(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, graph.Nodes, 2)
	require.Len(t, graph.Edges, 1)
	assert.Equal(t, "prerequisite", graph.Edges[0].Type)
	assert.Equal(t, uint(1), graph.Nodes[0].Data.ID)
}
