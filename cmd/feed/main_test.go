package main

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"reportboard/client/internal/api/apitest"

	"github.com/stretchr/testify/assert"
)

func TestRun_ServerFlagOverridesEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("REPORTBOARD_SERVER", "http://127.0.0.1:1")
	srv := apitest.New(t)
	srv.AddReport("A1", "first", "貓咪", 2)
	var stdout, stderr bytes.Buffer

	// Act
	code := run([]string{"-server", srv.URL, "list"}, &stdout, &stderr)

	// Assert
	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "#1  貓咪  [A1]  ❤ 2")
	assert.Equal(t, 1, srv.Hits(http.MethodGet, "/reports"))
}

func TestRun_Post(t *testing.T) {
	srv := apitest.New(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-server", srv.URL, "post", "B2", "smoke", "alarm"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "Report #1 posted as "), stdout.String())
}

func TestRun_Status(t *testing.T) {
	t.Setenv("REPORTBOARD_LANG", "en")
	srv := apitest.New(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-server", srv.URL, "status"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Not logged in\n", stdout.String())
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "No command", args: nil},
		{name: "Unknown command", args: []string{"dance"}},
		{name: "Post without content", args: []string{"post", "B2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := apitest.New(t)
			var stdout, stderr bytes.Buffer

			code := run(append([]string{"-server", srv.URL}, tt.args...), &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Contains(t, stdout.String(), "Usage: feed")
			assert.Zero(t, srv.TotalHits())
		})
	}
}
