package app

import (
	"github.com/mwalls/impactboard/config"
	"github.com/mwalls/impactboard/store"
)

type App struct {
	*store.Store
	config.Config
}
