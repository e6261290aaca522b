package web

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bigredeye/students/internal/config"
)

func TestSetupSessionsKeyLengths(t *testing.T) {
	for _, tc := range []struct {
		encryptBytes int
		valid        bool
	}{
		{0, true},
		{16, true},
		{24, true},
		{32, true},
		{20, false},
		{8, false},
	} {
		conf := &config.Config{}
		conf.Server.Cookies.AuthenticationKey = strings.Repeat("ab", 32)
		conf.Server.Cookies.EncryptionKey = strings.Repeat("cd", tc.encryptBytes)

		err := setupSessions(newServer(conf, zap.NewNop(), nil), gin.New())
		if tc.valid {
			require.NoError(t, err, "encryption key of %d bytes", tc.encryptBytes)
		} else {
			require.Error(t, err, "encryption key of %d bytes", tc.encryptBytes)
		}
	}
}

func TestSetupSessionsBadHex(t *testing.T) {
	conf := &config.Config{}
	conf.Server.Cookies.AuthenticationKey = "not hex"

	require.Error(t, setupSessions(newServer(conf, zap.NewNop(), nil), gin.New()))
}
