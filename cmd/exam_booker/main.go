package main

import (
	"fmt"
	"os"

	"github.com/4nxiouz/thaitep-exam-booking/internal/app"
	"github.com/4nxiouz/thaitep-exam-booking/internal/config"
	"github.com/wb-go/wbf/logger"
)

func main() {
	cfg := config.MustLoad()

	// логгер до app.New, чтобы ошибки старта шли в тот же формат
	log, err := logger.InitLogger(cfg.Logger.LogEngine(), "ExamBooker", cfg.Gin.Mode, logger.WithLevel(cfg.Logger.LogLevel()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	if err = run(cfg); err != nil {
		log.Error("exam booker stopped with error", logger.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	return application.Run()
}
