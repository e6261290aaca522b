package config

import (
	"time"

	"github.com/docker/go-units"
	"github.com/pkg/errors"

	"github.com/bigredeye/students/pkg/conf"
)

const (
	PostgresDriver = "postgres"
	SqliteDriver   = "sqlite"
)

type Config struct {
	Server struct {
		ListenAddress   string
		ShutdownTimeout time.Duration
		Cookies         struct {
			AuthenticationKey string
			EncryptionKey     string
			Secure            bool
		}
	}

	DataBase struct {
		Driver         string
		Host           string
		Port           uint16
		User           string
		Pass           string
		Name           string
		SSLMode        string
		Path           string
		ConnectTimeout time.Duration
	}

	// Maximum number of characters kept in each text field of a student.
	Limits struct {
		Name       int
		Department int
	}

	Log struct {
		Mode string
		File string
		// Size of a log file before rotation, e.g. "100MB".
		MaxSize    string
		MaxBackups int
	}
}

var defaults = map[string]interface{}{
	"server.listenaddress":   ":8080",
	"server.shutdowntimeout": "10s",
	"server.cookies.secure":  false,

	"database.driver":         PostgresDriver,
	"database.host":           "localhost",
	"database.port":           5432,
	"database.sslmode":        "disable",
	"database.path":           "students.db",
	"database.connecttimeout": "30s",

	"limits.name":       10,
	"limits.department": 20,

	"log.mode":       "dev",
	"log.maxsize":    "100MB",
	"log.maxbackups": 3,
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.EnvPrefix("STUDENTS"),
		conf.ConfigFile(path),
		conf.Defaults(defaults),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid config")
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.DataBase.Driver {
	case PostgresDriver, SqliteDriver:
	default:
		return errors.Errorf("unknown database driver %q", c.DataBase.Driver)
	}
	if c.Limits.Name <= 0 || c.Limits.Department <= 0 {
		return errors.Errorf("field limits must be positive, got name=%d department=%d", c.Limits.Name, c.Limits.Department)
	}
	if _, err := units.RAMInBytes(c.Log.MaxSize); err != nil {
		return errors.Wrap(err, "Invalid log max size")
	}
	return nil
}

// LogMaxSizeMB converts Log.MaxSize to whole megabytes, rounding up.
func (c *Config) LogMaxSizeMB() int {
	size, err := units.RAMInBytes(c.Log.MaxSize)
	if err != nil || size <= 0 {
		return 0
	}
	return int((size + units.MiB - 1) / units.MiB)
}
