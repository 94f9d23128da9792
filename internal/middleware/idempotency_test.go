package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func idempotencyRouter(rdb *redis.Client, handled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/statements",
		func(c *gin.Context) { c.Set("user_id_validated", "u1") },
		middleware.Idempotency(rdb),
		func(c *gin.Context) {
			*handled = true
			c.JSON(http.StatusCreated, gin.H{"id": "fresh"})
		},
	)
	return r
}

func postStatement(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/statements", strings.NewReader(`{}`))
	if idempKey != "" {
		req.Header.Set("Idempotency-Key", idempKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	handled := false
	r := idempotencyRouter(rdb, &handled)

	mock.ExpectGet("idemp:/statements:u1:key-1").SetVal(`{"id":"s1"}`)

	w := postStatement(r, "key-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, handled)
	assert.Contains(t, w.Body.String(), "s1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_CorruptCacheEntryReprocesses(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	handled := false
	r := idempotencyRouter(rdb, &handled)

	cacheKey := "idemp:/statements:u1:key-1"
	mock.ExpectGet(cacheKey).SetVal(`{"id": truncated`)
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

	w := postStatement(r, "key-1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicateConflicts(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	handled := false
	r := idempotencyRouter(rdb, &handled)

	cacheKey := "idemp:/statements:u1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := postStatement(r, "key-1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, handled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	handled := false
	r := idempotencyRouter(rdb, &handled)

	w := postStatement(r, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handled)
}
