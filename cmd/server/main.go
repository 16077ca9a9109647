package main

import (
	"log"

	"readit_backend/internal/app/di"
	"readit_backend/internal/app/router"
	authadapters "readit_backend/internal/feature/auth/adapters"
	authusecase "readit_backend/internal/feature/auth/usecase"
	postadapters "readit_backend/internal/feature/post/adapters"
	postusecase "readit_backend/internal/feature/post/usecase"
	"readit_backend/internal/platform/config"
	infradb "readit_backend/internal/platform/db"
	infraredis "readit_backend/internal/platform/redis"
	gqltransport "readit_backend/internal/transport/graphql"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.OpenDB()

	// Redis（セッションとリセットトークンの保存に必須）
	rdb, err := infraredis.NewRedisClient()
	if err != nil {
		log.Fatalf("redis is required for sessions: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	postRepo := postadapters.NewPostPostgres(db)
	sessionRepo := di.NewSessionRepository(rdb, cfg)
	resetTokenRepo := di.NewResetTokenRepository(rdb)
	notifier := di.NewNotifier(cfg)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, resetTokenRepo, notifier, cfg.FrontendURL)
	postUC := postusecase.NewPostUsecase(postRepo)

	// GraphQLハンドラー
	resolver := gqltransport.NewResolver(authUC, postUC, cfg.CookieName, cfg.SessionTTL)
	gqlHandler, err := gqltransport.NewHandler(resolver)
	if err != nil {
		log.Fatalf("failed to build graphql schema: %v", err)
	}

	// ルータ生成
	r := router.NewRouter(cfg, gqlHandler)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
