package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/workouts/browse?"+rawQuery, nil)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestBrowseFilterDefaults(t *testing.T) {
	f := browseFilter(queryContext(t, ""))

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 6, f.PerPage)
	assert.Empty(t, f.Level)
	assert.Empty(t, f.Sort)
}

func TestBrowseFilterReadsQueryParams(t *testing.T) {
	f := browseFilter(queryContext(t, "level=Beginner&body=Chest&style=Barbell&q=press&sort=rating&page=3&per_page=12"))

	assert.Equal(t, "Beginner", f.Level)
	assert.Equal(t, "Chest", f.Body)
	assert.Equal(t, "Barbell", f.Style)
	assert.Equal(t, "press", f.Query)
	assert.Equal(t, "rating", f.Sort)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 12, f.PerPage)
}
