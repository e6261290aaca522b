package web

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bigredeye/students/internal/config"
	"github.com/bigredeye/students/internal/database"
	"github.com/bigredeye/students/internal/models"
	static "github.com/bigredeye/students/web"
)

type server struct {
	config *config.Config
	logger *zap.Logger

	db *database.DataBase
}

func newServer(config *config.Config, logger *zap.Logger, db *database.DataBase) *server {
	return &server{
		config: config,
		logger: logger,
		db:     db,
	}
}

func (s *server) limits() models.Limits {
	return models.Limits{
		Name:       s.config.Limits.Name,
		Department: s.config.Limits.Department,
	}
}

func buildHTMLTemplates(fsys fs.FS, funcMap template.FuncMap) (*template.Template, error) {
	tmpl := template.New("").Funcs(funcMap)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		bytes, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		_, err = tmpl.New("/" + path).Parse(string(bytes))
		return errors.Wrapf(err, "Failed to parse template %s", path)
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to collect html templates")
	}

	return tmpl, nil
}

func (s *server) engine() (*gin.Engine, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"updateURL": updatePath,
		"deleteURL": deletePath,
	}
	tmpl, err := buildHTMLTemplates(static.StaticTemplates, funcs)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build html templates")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(requestID())
	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))

	r.SetHTMLTemplate(tmpl)

	if err := setupSessions(s, r); err != nil {
		return nil, errors.Wrap(err, "Failed to setup sessions")
	}
	setupStudentService(s, r)
	setupApiService(s, r)

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong "+fmt.Sprint(time.Now().Unix()))
	})

	r.StaticFS("/static", http.FS(static.StaticContent))

	return r, nil
}

func (s *server) run(ctx context.Context) error {
	handler, err := s.engine()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    s.config.Server.ListenAddress,
		Handler: handler,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Starting server", zap.String("bind_address", s.config.Server.ListenAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down server", zap.Duration("timeout", s.config.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
