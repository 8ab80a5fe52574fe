package server

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gameboard/internal/board"
	"gameboard/internal/config"
	"gameboard/internal/db"
	"gameboard/internal/participants"
	"gameboard/internal/ranking"
	"gameboard/internal/snapshot"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Optional database mirror
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without database)\n", err)
			database = nil
		} else if err := database.Migrate(); err != nil {
			log.Printf("[DB] Migration failed: %v (running without database)\n", err)
			database.Close()
			database = nil
		} else {
			log.Println("[DB] Database connected and migrations applied")
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without database")
	}

	b := board.New(
		participants.NewStore(),
		ranking.New(cfg.Locale),
		snapshot.NewFileStore(cfg.BoardFile),
		database,
	)
	if err := b.Recover(); err != nil {
		log.Printf("[Board] Startup snapshot rewrite failed: %v\n", err)
	}

	funcMap := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseFiles(
		"templates/board.html",
	))

	srv := &Server{
		Board: b,
		Tmpl:  tmpl,
		DB:    database,
	}

	mux := http.NewServeMux()
	srv.Routes(mux)

	addr := "0.0.0.0:" + cfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", cfg.Port)
	return http.ListenAndServe(addr, mux)
}

// Routes registers all handlers on mux. Split out so tests can mount the
// same routing table on an httptest server.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleBoardPage)
	mux.HandleFunc("POST /join", s.handleJoin)
	mux.HandleFunc("POST /participants/{id}", s.handleUpdate)
	mux.HandleFunc("PATCH /participants/{id}", s.handleUpdate)
	mux.HandleFunc("GET /scoreboard", s.handleScoreboard)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
}
