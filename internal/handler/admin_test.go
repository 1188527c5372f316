package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhours/internal/domain"
)

func TestAdminRoutesRequireAdmin(t *testing.T) {
	srv := newTestServer(t)
	srv.createUser(t, "ada", domain.RoleUser)
	srv.login(t, "ada")

	resp := srv.do(t, http.MethodGet, "/api/admin/users", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminOverviewAndUserEntries(t *testing.T) {
	srv := newTestServer(t)
	srv.createUser(t, "root", domain.RoleAdmin)
	ada := srv.createUser(t, "ada", domain.RoleUser)

	srv.login(t, "root")

	resp := srv.do(t, http.MethodGet, "/api/admin/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode(t, resp)["users"], 2)

	resp = srv.do(t, http.MethodGet, "/api/admin/users/"+ada.ID+"/entries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode(t, resp)
	assert.Equal(t, "ada", view["profile"].(map[string]any)["username"])

	resp = srv.do(t, http.MethodGet, "/api/admin/users/missing/entries", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
