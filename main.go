package main

import (
	"log"

	"hackerstories/config"
	"hackerstories/web"

	"github.com/rohanthewiz/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger.SetLogLevel(cfg.Logging.Level)

	srv := web.NewServer(cfg)
	logger.Info("Starting Hacker Stories", "address", cfg.Server.Address, "default_search", cfg.Search.Default)
	log.Fatal(web.Run(srv, cfg.Server.Address))
}
