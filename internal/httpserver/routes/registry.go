package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
	"github.com/MrSnakeDoc/soccerfront/internal/logger"
)

// Registrar mounts one group of routes.
type Registrar func(r chi.Router, d deps.Deps)

type mount struct {
	name string
	reg  Registrar
}

var mounts []mount

// Register adds a named registrar. Each routes file calls it from init().
func Register(name string, reg Registrar) {
	mounts = append(mounts, mount{name: name, reg: reg})
}

// RegisterAll mounts every registrar in registration order.
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, m := range mounts {
		m.reg(r, d)
		d.Logger.Debug("routes mounted", logger.String("group", m.name))
	}
}
