package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, environment string, allowedOrigins []string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(authMiddleware)

	campaigns := api.Group("/campaigns")
	{
		campaigns.GET("", handler.listCampaigns)
		campaigns.GET("/:id", handler.getCampaign)
		campaigns.POST("", handler.createCampaign)
		campaigns.PUT("/:id", handler.updateCampaign)
		campaigns.DELETE("/:id", handler.deleteCampaign)
	}

	donations := api.Group("/donations")
	{
		donations.POST("", handler.submitDonation)
		donations.GET("", handler.listAllDonations)
		donations.GET("/mine", handler.listMyDonations)
		donations.GET("/approved", handler.listApprovedDonations)
		donations.GET("/pending", handler.pendingDonations)
		donations.GET("/export", handler.exportDonations)
		donations.GET("/:id/receipt", handler.donationReceipt)
		donations.POST("/:id/approve", handler.approveDonation)
		donations.POST("/:id/reject", handler.rejectDonation)
		donations.POST("/bulk-review", handler.bulkReviewDonations)
	}

	requests := api.Group("/requests")
	{
		requests.POST("", handler.submitRequest)
		requests.GET("", handler.listAllRequests)
		requests.GET("/mine", handler.listMyRequests)
		requests.POST("/:id/approve", handler.approveRequest)
		requests.POST("/:id/reject", handler.rejectRequest)
	}

	profile := api.Group("/profile")
	{
		profile.GET("", handler.getProfile)
		profile.PUT("", handler.updateProfile)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", handler.submitContact)
		contact.GET("", handler.listContacts)
		contact.POST("/:id/reply", handler.replyContact)
	}

	organizations := api.Group("/organizations")
	{
		organizations.GET("", handler.listOrganizations)
		organizations.POST("", handler.createOrganization)
	}

	return router
}
