package server_test

import (
	"testing"

	"appserve/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bind    string
		wantErr bool
	}{
		{"Loopback", "127.0.0.1:8000", false},
		{"AllInterfaces", ":8080", false},
		{"IPv6", "[::1]:9000", false},
		{"MissingPort", "127.0.0.1", true},
		{"BadPort", "127.0.0.1:http-ish", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Bind: tt.bind}
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ProcNameOr(t *testing.T) {
	assert.Equal(t, "mysite.settings", server.Config{}.ProcNameOr("mysite.settings"))
	assert.Equal(t, "web", server.Config{ProcName: "web"}.ProcNameOr("mysite.settings"))
}
