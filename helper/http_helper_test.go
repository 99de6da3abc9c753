package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogify/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()

	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{models.ErrorInvalidInput{Message: "x"}, http.StatusBadRequest},
		{models.ErrorUnauthorized{Message: "x"}, http.StatusUnauthorized},
		{models.ErrorForbidden{Message: "x"}, http.StatusForbidden},
		{models.ErrorNotFound{Message: "x"}, http.StatusNotFound},
		{models.ErrorConflict{Message: "x"}, http.StatusConflict},
		{models.ErrorInternalServer{Message: "x"}, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, h.GetStatusCode(tt.err))
	}
}

func TestGetMessage_HidesInternalCause(t *testing.T) {
	h := NewHTTPHelper()

	err := models.ErrorInternalServer{Message: models.MsgServerError, Err: errors.New("connection refused")}
	assert.Equal(t, models.MsgServerError, h.GetMessage(err))
	assert.Equal(t, models.MsgServerError, h.GetMessage(errors.New("raw driver error")))
	assert.Equal(t, models.MsgItemNotFound, h.GetMessage(models.ErrorNotFound{Message: models.MsgItemNotFound}))
}

func TestBindJSON_ValidationErrors(t *testing.T) {
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":"a@x.io"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.RegisterRequest
	ok := h.BindJSON(c, &req)

	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, models.MsgInvalidBody, body.Message)
	assert.Contains(t, body.Errors, "username")
	assert.Contains(t, body.Errors, "password")
	assert.NotContains(t, body.Errors, "email")
}

func TestBindJSON_MalformedBody(t *testing.T) {
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{not json`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.CreatePostRequest
	assert.False(t, h.BindJSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), models.MsgInvalidBody)
}

func TestGeneratePaging(t *testing.T) {
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://api.test/posts?page=2&limit=5", nil)

	p := h.GeneratePaging(c, &models.PostPage{Page: 2, Limit: 5, Total: 12, HasNextPage: true})

	assert.Equal(t, 5, p.CurrentCount)
	assert.Equal(t, int64(12), p.TotalPosts)
	assert.True(t, p.HasNextPage)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, "http://api.test/posts?page=1&limit=5", p.Links.Previous)
	assert.Equal(t, "http://api.test/posts?page=3&limit=5", p.Links.Next)
	assert.Equal(t, "http://api.test/posts?page=1&limit=5", p.Links.First)
	assert.Equal(t, "http://api.test/posts?page=3&limit=5", p.Links.Last)
}

func TestParsePaging_NonNumeric(t *testing.T) {
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/posts?page=abc&limit=7", nil)

	params := h.ParsePaging(c)
	assert.Equal(t, 0, params.Page)
	assert.Equal(t, 7, params.Limit)
}
