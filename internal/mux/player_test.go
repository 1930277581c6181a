package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostLogin_validation(t *testing.T) {
	setupTestConfig()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/login", loginPayload{Username: "bad name!", Password: "secret"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "username must only contain letters, numbers, and underscores, and be 32 characters or less", errObj.Message)

	assertPost(t, ts, "/login", loginPayload{Username: "", Password: "secret"}, &errObj, http.StatusBadRequest)

	assertPost(t, ts, "/login", loginPayload{Username: "alice", Password: ""}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "password is required", errObj.Message)

	assertPost(t, ts, "/login", "{ not json", &errObj, http.StatusBadRequest)

	// missing content type
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/login", nil)
	assert.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	_ = resp.Body.Close()
}

func Test_validUsernameRx(t *testing.T) {
	valid := []string{"alice", "Alice_99", "玩家一", "a", "abcdefghijklmnopqrstuvwxyz123456"}
	for _, username := range valid {
		assert.True(t, validUsernameRx.MatchString(username), username)
	}

	invalid := []string{"", "has space", "pika-chu", "way@off", "abcdefghijklmnopqrstuvwxyz1234567", "newline\n"}
	for _, username := range invalid {
		assert.False(t, validUsernameRx.MatchString(username), username)
	}
}

func TestPostAdminResetPassword_validation(t *testing.T) {
	setupTestConfig()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/admin/reset_password", adminResetPayload{AdminKey: "wrong", TargetUsername: "alice", NewPassword: "x"}, &errObj, http.StatusForbidden)
	assert.Equal(t, "invalid admin key", errObj.Message)

	assertPost(t, ts, "/admin/reset_password", adminResetPayload{TargetUsername: "alice", NewPassword: "x"}, &errObj, http.StatusForbidden)

	// the key matches but there is nothing to set
	assertPost(t, ts, "/admin/reset_password", adminResetPayload{AdminKey: "test-admin-key", TargetUsername: "alice"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "new password is required", errObj.Message)
}
