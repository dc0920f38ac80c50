package main

import (
	"fmt"
	"os"
	"time"

	"retailpos/internal/config"
	"retailpos/internal/logger"
	"retailpos/internal/server"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	app := server.NewApp(server.Deps{
		Config:   cfg,
		Log:      log,
		IDs:      &uuidGenerator{},
		Clock:    &realClock{},
		Location: time.Local,
	})

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(server.ExitCode(err))
	}
}
