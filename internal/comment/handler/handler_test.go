package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contenthub/contenthub-server/internal/comment/service"
)

func init() { gin.SetMode(gin.TestMode) }

func TestCommentHandler_Lifecycle(t *testing.T) {
	g := gin.New()
	RegisterCommentRoutes(g, service.NewMemoryService(), func(c *gin.Context) { c.Next() })

	post := func(body string) string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/addcomment", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		g.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		return res["insertedId"].(string)
	}
	list := func(query string) []map[string]interface{} {
		w := httptest.NewRecorder()
		g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/addcomment"+query, nil))
		require.Equal(t, http.StatusOK, w.Code)
		var out []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		return out
	}

	id := post(`{"blogId":"b1","text":"nice","userName":"ann"}`)
	post(`{"blogId":"b2","text":"meh"}`)

	require.Len(t, list(""), 2)
	b1 := list("?blogId=b1")
	require.Len(t, b1, 1)
	assert.Equal(t, "nice", b1[0]["text"])
	assert.Equal(t, "ann", b1[0]["userName"])
	assert.NotEmpty(t, b1[0]["createdAt"])

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/comments/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Comment deleted successfully"}`, w.Body.String())
	require.Len(t, list(""), 1)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/comments/"+id, nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Comment not found"}`, w.Body.String())
	require.Len(t, list(""), 1)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/comments/not-hex", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandler_PostRequiresAuth(t *testing.T) {
	g := gin.New()
	svc := service.NewMemoryService()
	RegisterCommentRoutes(g, svc, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/addcomment", strings.NewReader(`{"blogId":"b"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/addcomment", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}
