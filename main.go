package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mwalls/impactboard/app"
	"github.com/mwalls/impactboard/config"
	"github.com/mwalls/impactboard/database"
	"github.com/mwalls/impactboard/log"
	"github.com/mwalls/impactboard/routes"
	"github.com/mwalls/impactboard/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	st := store.New(db)
	if cfg.Seed {
		err = st.Seed(context.Background())
		if err != nil {
			log.Fatal("main.db.seed:", err)
		}
	}

	app := app.App{
		Store:  st,
		Config: cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
