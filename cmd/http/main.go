package main

import (
	"coach-service/internal/app/config"
	"coach-service/internal/app/delivery/http/controllers"
	"coach-service/internal/app/delivery/http/middlewares"
	"coach-service/internal/app/delivery/http/routers"
	"coach-service/internal/app/drivers/database"
	"coach-service/internal/app/drivers/logger"
	coachCounseling "coach-service/internal/app/services/coach/counseling"
	coachGoals "coach-service/internal/app/services/coach/goals"
	coachRecommendations "coach-service/internal/app/services/coach/recommendations"
	coachVitals "coach-service/internal/app/services/coach/vitals"
	"coach-service/internal/app/services/core/blocks"
	"coach-service/internal/app/services/core/counseling"
	"coach-service/internal/app/services/core/goals"
	"coach-service/internal/app/services/core/recommendations"
	"coach-service/internal/app/services/core/vitals"
	"coach-service/internal/app/services/shared/blockstate"
	"coach-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	zapLogger := logger.NewZapLogger(bootstrap.DriverConfig, bootstrap.InternalConfig)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Block state
	blockStateService := blockstate.NewBlockStateService(redisRepository, bootstrap.InternalConfig)

	// COACH backend clients
	coachBaseUrl := bootstrap.InternalConfig.Coach.BaseUrl
	recommendationCoachClient := coachRecommendations.NewRecommendationCoachClient(coachBaseUrl)
	goalCoachClient := coachGoals.NewGoalCoachClient(coachBaseUrl)
	counselingCoachClient := coachCounseling.NewCounselingCoachClient(coachBaseUrl)
	vitalsCoachClient := coachVitals.NewVitalsCoachClient(coachBaseUrl)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(zapLogger, bootstrap.InternalConfig)

	// Recommendation
	recommendationUsecase := recommendations.NewRecommendationUsecase(
		recommendationCoachClient,
		goalCoachClient,
		blockStateService,
		redisRepository,
		bootstrap.InternalConfig,
		zapLogger,
	)
	recommendationController := controllers.NewRecommendationController(zapLogger, recommendationUsecase)

	// Block
	blockUsecase := blocks.NewBlockUsecase(blockStateService, zapLogger)
	blockController := controllers.NewBlockController(zapLogger, blockUsecase)

	// Goal
	goalUsecase := goals.NewGoalUsecase(blockStateService, goalCoachClient, zapLogger)
	goalController := controllers.NewGoalController(zapLogger, goalUsecase)

	// Counseling
	counselingUsecase := counseling.NewCounselingUsecase(blockStateService, counselingCoachClient, zapLogger)
	counselingController := controllers.NewCounselingController(zapLogger, counselingUsecase)

	// Vitals
	vitalsUsecase := vitals.NewVitalsUsecase(vitalsCoachClient, redisRepository, bootstrap.InternalConfig, zapLogger)
	vitalsController := controllers.NewVitalsController(zapLogger, vitalsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		recommendationController,
		blockController,
		goalController,
		counselingController,
		vitalsController,
	)
}
