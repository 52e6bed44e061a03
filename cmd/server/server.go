package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zmolik/kpaths/server"
)

type Server struct {
	router       *way.Router
	SearchServer *server.SearchServer
}

func main() {
	cfg := configFromEnv()
	Server := Server{
		SearchServer: server.NewSearchServer(cfg),
	}
	go Server.SearchServer.Loop()
	Server.routes()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, Server.router))
}

func configFromEnv() server.Config {
	cfg := server.DefaultConfig()
	cfg.Cols = envInt("GRID_COLS", cfg.Cols)
	cfg.Rows = envInt("GRID_ROWS", cfg.Rows)
	cfg.MaxPaths = envInt("MAX_PATHS", cfg.MaxPaths)
	cfg.Seed = int64(envInt("WALL_SEED", 0))
	if d := os.Getenv("WALL_DENSITY"); d != "" {
		f, err := strconv.ParseFloat(d, 64)
		if err != nil {
			log.Warnf("bad WALL_DENSITY %q, keeping %v", d, cfg.WallDensity)
		} else {
			cfg.WallDensity = f
		}
	}
	return cfg
}

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("bad %s %q, keeping %d", name, v, def)
		return def
	}
	return n
}
