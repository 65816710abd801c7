package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginThenPresent(t *testing.T) {
	w := httptest.NewRecorder()
	Login(w, "abc", false)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, 86400, cookies[0].MaxAge)
	assert.Equal(t, "/", cookies[0].Path)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	assert.True(t, Present(req))
}

func TestPresentRequiresValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, Present(req))

	req.AddCookie(&http.Cookie{Name: CookieName, Value: ""})
	assert.False(t, Present(req))
}
