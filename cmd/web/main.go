package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bigredeye/students/internal/config"
	"github.com/bigredeye/students/internal/web"
	zlog "github.com/bigredeye/students/pkg/log"
)

var configPath = flag.String("config", "", "Path to the config")

func run() error {
	flag.Parse()

	conf, err := config.ParseConfig(*configPath)
	if err != nil {
		return err
	}

	logger := zlog.Init(conf.Log.Mode, zlog.Options{
		File:       conf.Log.File,
		MaxSizeMB:  conf.LogMaxSizeMB(),
		MaxBackups: conf.Log.MaxBackups,
	})
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.Run(ctx, conf, logger)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
