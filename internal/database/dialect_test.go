package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bigredeye/students/internal/config"
)

func TestDialector(t *testing.T) {
	conf := &config.Config{}

	conf.DataBase.Driver = config.PostgresDriver
	dialector, err := Dialector(conf)
	if err != nil {
		t.Fatal("Failed to build postgres dialector:", err)
	}
	if dialector.Name() != "postgres" {
		t.Fatalf("Invalid dialector: %s", dialector.Name())
	}

	conf.DataBase.Driver = config.SqliteDriver
	dialector, err = Dialector(conf)
	if err != nil {
		t.Fatal("Failed to build sqlite dialector:", err)
	}
	if dialector.Name() != "sqlite" {
		t.Fatalf("Invalid dialector: %s", dialector.Name())
	}

	conf.DataBase.Driver = "mongo"
	if _, err := Dialector(conf); err == nil {
		t.Fatal("Expected error for unknown driver")
	}
}

func TestConnectSqlite(t *testing.T) {
	conf := &config.Config{}
	conf.DataBase.Driver = config.SqliteDriver
	conf.DataBase.Path = filepath.Join(t.TempDir(), "students.db")
	conf.DataBase.ConnectTimeout = time.Second

	db, err := Connect(context.Background(), zap.NewNop(), conf)
	if err != nil {
		t.Fatal("Failed to connect:", err)
	}
	defer db.Close()

	if _, err := db.ListStudents(); err != nil {
		t.Fatal("Failed to list students:", err)
	}
}
