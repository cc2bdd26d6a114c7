package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/configs"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/routes"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/session"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedOwner(cfg); err != nil {
		log.Fatalf("seed owner failed: %v", err)
	}

	// session store
	var store session.Store
	switch cfg.SessionBackend {
	case "redis":
		store = session.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	default:
		store = session.NewGormStore(db)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, store, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
