package main

import (
	"fmt"
	"os"

	"github.com/nurpe/donations-service/internal/auth"
	"github.com/nurpe/donations-service/internal/config"
	"github.com/nurpe/donations-service/internal/db"
	"github.com/nurpe/donations-service/internal/excel"
	httphandler "github.com/nurpe/donations-service/internal/http"
	"github.com/nurpe/donations-service/internal/http/middleware"
	"github.com/nurpe/donations-service/internal/logger"
	"github.com/nurpe/donations-service/internal/mailer"
	"github.com/nurpe/donations-service/internal/pdf"
	"github.com/nurpe/donations-service/internal/repository"
	"github.com/nurpe/donations-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	donationRepo := repository.NewDonationRepository(database)
	campaignRepo := repository.NewCampaignRepository(database)
	requestRepo := repository.NewRequestRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	contactRepo := repository.NewContactRepository(database)
	orgRepo := repository.NewOrganizationRepository(database)

	mail := mailer.NewSMTP(cfg.SMTP)
	excelGenerator := excel.NewGenerator()
	receiptGenerator := pdf.NewGenerator()

	donationService := service.NewDonationService(donationRepo, campaignRepo, profileRepo, mail, excelGenerator, receiptGenerator, log)
	campaignService := service.NewCampaignService(campaignRepo)
	requestService := service.NewRequestService(requestRepo, mail, log)
	profileService := service.NewProfileService(profileRepo)
	contactService := service.NewContactService(contactRepo, mail, log)
	orgService := service.NewOrganizationService(orgRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(donationService, campaignService, requestService, profileService, contactService, orgService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting donations service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
