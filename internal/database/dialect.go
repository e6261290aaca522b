package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bigredeye/students/internal/config"
)

func Dialector(conf *config.Config) (gorm.Dialector, error) {
	db := &conf.DataBase
	switch db.Driver {
	case config.PostgresDriver:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			db.Host, db.Port, db.User, db.Pass, db.Name, db.SSLMode)
		return postgres.Open(dsn), nil
	case config.SqliteDriver:
		return sqlite.Open(db.Path), nil
	default:
		return nil, errors.Errorf("Unknown database driver %q", db.Driver)
	}
}

// Connect opens the configured database, retrying with exponential backoff
// until DataBase.ConnectTimeout elapses.
func Connect(ctx context.Context, logger *zap.Logger, conf *config.Config) (*DataBase, error) {
	dialector, err := Dialector(conf)
	if err != nil {
		return nil, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = conf.DataBase.ConnectTimeout

	var db *DataBase
	err = backoff.RetryNotify(func() error {
		var err error
		db, err = OpenDataBase(logger, dialector)
		return err
	}, backoff.WithContext(policy, ctx), func(err error, next time.Duration) {
		logger.Warn("Failed to open database",
			zap.String("driver", conf.DataBase.Driver),
			zap.Duration("retry_in", next),
			zap.Error(err),
		)
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to connect to database")
	}

	logger.Info("Connected to database", zap.String("driver", conf.DataBase.Driver))
	return db, nil
}
