package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tmht.org/checkin/config"
	"tmht.org/checkin/core"
	"tmht.org/checkin/infrastructure/localstore"
	"tmht.org/checkin/infrastructure/remote"
	"tmht.org/checkin/infrastructure/storage"
	"tmht.org/checkin/web/handlers"
	"tmht.org/checkin/web/middlewares"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	kv, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open local storage: %v", err)
	}
	local := localstore.New(kv)

	var remoteStore core.RemoteStore
	if cfg.RemoteEnabled() {
		rs, err := remote.Open(cfg.DatabaseURL)
		if err != nil {
			// the local store still works; fail loudly, not fatally
			log.Printf("remote database unavailable, running local-only: %v", err)
		} else {
			remoteStore = rs
		}
	}

	deps := handlers.Deps{
		Repo:       core.NewRepository(local, remoteStore),
		Gen:        core.NewCodeGenerator(local),
		Ledger:     core.NewReleasedLedger(kv),
		Classrooms: localstore.NewClassroomStore(kv),
		Prefs:      localstore.NewPrefsStore(kv),
		Cfg:        cfg,
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.POST("/login", handlers.Login(cfg))

	protected := r.Group("/api")
	protected.Use(middlewares.Authentication(cfg.JWTSecret))
	ep, err := handlers.Register(protected, deps)
	if err != nil {
		log.Fatalf("open change subscription: %v", err)
	}
	defer ep.Close()

	r.Run(cfg.Addr)
}
