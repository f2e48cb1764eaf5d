package main

import (
	"flag"
	"log"
	"os"

	"github.com/hashkv/hashkv/config"
	"github.com/hashkv/hashkv/server"
	"github.com/hashkv/hashkv/shell"
	"github.com/hashkv/hashkv/storage"
	"github.com/hashkv/hashkv/storage/chained"
)

func main() {
	serve := flag.Bool("serve", false, "serve the HTTP API instead of the interactive shell")
	host := flag.String("host", "", "host name to bind to (overrides config)")
	port := flag.Int("port", 0, "port to listen on (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	if *serve {
		store := storage.New(cfg.Table.InitialBuckets, cfg.Table.RehashRatio)
		log.Fatal(server.New(store).ListenAndServe(cfg.Server.Host, cfg.Server.Port))
		return
	}

	table := chained.NewWithOptions(cfg.Table.InitialBuckets, cfg.Table.RehashRatio)
	shell.New(table, os.Stdin, os.Stdout).Run()
}
