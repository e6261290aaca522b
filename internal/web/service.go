package web

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bigredeye/students/internal/config"
	lf "github.com/bigredeye/students/internal/logfield"
)

type webService struct {
	server *server
	config *config.Config
	log    *zap.Logger
}

func newWebService(server *server, module string) webService {
	return webService{server, server.config, server.logger.With(lf.Module(module))}
}

func (s webService) requestLog(c *gin.Context) *zap.Logger {
	if id := c.GetString(requestIDKey); id != "" {
		return s.log.With(lf.RequestID(id))
	}
	return s.log
}
