package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const sessionName = "session"

func setupSessions(s *server, r *gin.Engine) error {
	authKey, err := hex.DecodeString(s.config.Server.Cookies.AuthenticationKey)
	if err != nil {
		return errors.Wrap(err, "Failed to decode hex authenticationKey")
	}
	encryptKey, err := hex.DecodeString(s.config.Server.Cookies.EncryptionKey)
	if err != nil {
		return errors.Wrap(err, "Failed to decode hex encryptionKey")
	}

	if len(authKey) == 0 {
		s.logger.Warn("No cookie authentication key configured, flash messages will not survive restarts")
		authKey = make([]byte, 32)
		if _, err := rand.Read(authKey); err != nil {
			return errors.Wrap(err, "Failed to generate authenticationKey")
		}
	}

	switch len(encryptKey) {
	case 0, 16, 24, 32:
	default:
		return errors.Errorf("encryptionKey must be 16, 24 or 32 bytes, got %d", len(encryptKey))
	}
	if !s.config.Server.Cookies.Secure {
		s.logger.Info("Session cookies are not marked secure, enable server.cookies.secure behind TLS")
	}

	keyPairs := [][]byte{authKey}
	if len(encryptKey) > 0 {
		keyPairs = append(keyPairs, encryptKey)
	}

	store := cookie.NewStore(keyPairs...)
	store.Options(sessions.Options{
		Path:     "/",
		Secure:   s.config.Server.Cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	return nil
}

func (s webService) addFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		s.requestLog(c).Error("Failed to save session", zap.Error(err))
	}
}

func (s webService) popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		s.requestLog(c).Error("Failed to save session", zap.Error(err))
	}

	messages := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if message, ok := flash.(string); ok {
			messages = append(messages, message)
		}
	}
	return messages
}
