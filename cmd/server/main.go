package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"cropscience_backend/internal/app/di"
	"cropscience_backend/internal/app/router"
	authadapters "cropscience_backend/internal/feature/auth/adapters"
	authhandler "cropscience_backend/internal/feature/auth/transport/handler"
	authusecase "cropscience_backend/internal/feature/auth/usecase"
	categoryadapters "cropscience_backend/internal/feature/categories/adapters"
	categoryhandler "cropscience_backend/internal/feature/categories/transport/handler"
	categoryusecase "cropscience_backend/internal/feature/categories/usecase"
	cropadapters "cropscience_backend/internal/feature/crops/adapters"
	"cropscience_backend/internal/feature/crops/adapters/excel"
	crophandler "cropscience_backend/internal/feature/crops/transport/handler"
	cropusecase "cropscience_backend/internal/feature/crops/usecase"
	"cropscience_backend/internal/platform/config"
	infradb "cropscience_backend/internal/platform/db"
	jwtmw "cropscience_backend/internal/platform/jwt"
	infraredis "cropscience_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg.DB)

	// Redis (optional; the blacklist falls back to the database)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Using database token blacklist.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	categoryRepo := categoryadapters.NewCategoryPostgres(db)
	cropRepo := cropadapters.NewCropPostgres(db)
	tokenBlacklist := di.NewTokenBlacklist(rdb, db)

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWT)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen, tokenBlacklist)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo)
	cropUC := cropusecase.NewCropUsecase(cropRepo, excel.NewExporter())

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	categoryH := categoryhandler.NewCategoryHandler(categoryUC)
	cropH := crophandler.NewCropHandler(cropUC)

	r := router.NewRouter(cfg.JWT.Secret, authH, categoryH, cropH)

	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal(err)
	}
}
