package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/idcard/internal/api"
	"github.com/youruser/idcard/internal/card"
	"github.com/youruser/idcard/internal/config"
	"github.com/youruser/idcard/internal/photo"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	layout, err := card.LayoutFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	comp, err := card.NewCompositor(cfg.TemplatePath, layout)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	api.RegisterRoutes(r, &api.Server{
		Compositor: comp,
		Resolver:   photo.Resolver{Dir: cfg.PhotoDir},
	})

	log.Println("starting server on http://localhost:" + cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
