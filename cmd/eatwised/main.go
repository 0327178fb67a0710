package main

import (
	"context"
	"log"

	"github.com/Sorin-PSP/EatWise-sub000/config"
	"github.com/Sorin-PSP/EatWise-sub000/controllers"
	"github.com/Sorin-PSP/EatWise-sub000/routes"
	"github.com/Sorin-PSP/EatWise-sub000/services"
	"github.com/Sorin-PSP/EatWise-sub000/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx := context.Background()

	var mailer *utils.Mailer
	if cfg.SESEmail != "" {
		if mailer, err = utils.NewMailer(ctx); err != nil {
			log.Fatalf("mailer: %v", err)
		}
	}
	var images *utils.ImageUploader
	if cfg.S3Bucket != "" {
		if images, err = utils.NewImageUploader(ctx); err != nil {
			log.Fatalf("image uploader: %v", err)
		}
	}

	hub := services.NewRealtimeHub()
	authSvc := services.NewAuthService(db, mailer)
	foodSvc := services.NewFoodService(db, hub)
	logSvc := services.NewLogService(db, foodSvc, hub)
	profileSvc := services.NewProfileService(db)
	waterSvc := services.NewWaterService(db)
	analyticsSvc := services.NewAnalyticsService(db, logSvc, profileSvc, waterSvc)
	adminSvc := services.NewAdminService(db)

	r := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc),
		Foods:     controllers.NewFoodController(foodSvc, images),
		Logs:      controllers.NewLogController(logSvc),
		Profile:   controllers.NewProfileController(profileSvc),
		Water:     controllers.NewWaterController(waterSvc),
		Analytics: controllers.NewAnalyticsController(analyticsSvc),
		Admin:     controllers.NewAdminController(adminSvc, foodSvc),
		Realtime:  controllers.NewRealtimeController(hub),
	}, []byte(cfg.JWTSecret))

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
