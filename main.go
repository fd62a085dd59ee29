package main

import (
	"log"
	"net/http"

	"chainball/config"
	"chainball/level"
	"chainball/network"
	"chainball/room"
)

func main() {
	cfg := config.Load()

	lvl := level.Default()
	if cfg.LevelPath != "" {
		loaded, err := level.Load(cfg.LevelPath)
		if err != nil {
			log.Fatalf("load level: %v", err)
		}
		lvl = loaded
	}
	log.Printf("level: %d segments, %d tiles", len(lvl.Segments), len(lvl.Tiles))

	m := room.NewManager(lvl)
	mux := http.NewServeMux()
	network.Register(mux, m)

	log.Printf("listening on %s (ws endpoint: /ws)", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
