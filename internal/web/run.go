package web

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/students/internal/config"
	"github.com/bigredeye/students/internal/database"
)

func Run(ctx context.Context, config *config.Config, logger *zap.Logger) error {
	db, err := database.Connect(ctx, logger, config)
	if err != nil {
		return err
	}
	defer db.Close()

	s := newServer(config, logger, db)

	return errors.Wrap(s.run(ctx), "Server failed")
}

// NewHandler builds the router over an already opened database.
func NewHandler(config *config.Config, logger *zap.Logger, db *database.DataBase) (http.Handler, error) {
	return newServer(config, logger, db).engine()
}
