package main

import (
	"log"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Aashu-1911/Fitness-traker/config"
	"github.com/Aashu-1911/Fitness-traker/controllers"
	"github.com/Aashu-1911/Fitness-traker/routes"
	"github.com/Aashu-1911/Fitness-traker/services"
	"github.com/Aashu-1911/Fitness-traker/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}

	secret := []byte(cfg.JWTSecret)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authSvc := services.NewAuthService(db, secret)
	profileSvc := services.NewProfileService(db)
	logSvc := services.NewLogService(db)
	analyticsSvc := services.NewAnalyticsService(db)
	challengeSvc := services.NewChallengeService(db, rng)

	r := routes.SetupRouter(secret, routes.Controllers{
		Auth:            controllers.NewAuthController(authSvc, logger),
		Health:          controllers.NewHealthController(profileSvc, logger),
		Logs:            controllers.NewLogController(logSvc, logger),
		Analytics:       controllers.NewAnalyticsController(analyticsSvc, logger),
		Challenges:      controllers.NewChallengeController(challengeSvc, logger),
		Recommendations: controllers.NewRecommendationController(profileSvc, logger),
	})

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
