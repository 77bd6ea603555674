package router

import (
	"github.com/blues/cfl/internal/access"
	"github.com/blues/cfl/internal/config"
	"github.com/blues/cfl/internal/event"
	"github.com/blues/cfl/internal/handler"
	"github.com/blues/cfl/internal/ledger"
	"github.com/blues/cfl/internal/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, ac *access.Control, transfer token.TransferService, notifier *event.Notifier, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "crowdfunding-ledger",
		})
	})

	campaignLogic := ledger.NewCampaignLogic(db, ac, notifier)
	contributionLogic := ledger.NewContributionLogic(db, ac, transfer, cfg.Platform.TreasuryAddress, notifier)
	rewardLogic := ledger.NewRewardLogic(db, ac, notifier)
	queryLogic := ledger.NewQueryLogic(db)

	campaignHandler := handler.NewCampaignHandler(campaignLogic)
	contributeHandler := handler.NewContributeHandler(contributionLogic)
	rewardHandler := handler.NewRewardHandler(rewardLogic)
	queryHandler := handler.NewQueryHandler(queryLogic)
	adminHandler := handler.NewAdminHandler(ac)

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 活动相关路由
		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("", queryHandler.GetCampaigns)
			campaigns.GET("/top", queryHandler.GetTopCampaigns)
			campaigns.GET("/featured", queryHandler.GetFeaturedCampaigns)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.PUT("/:id/status", campaignHandler.UpdateCampaignStatus)
			campaigns.PUT("/:id/end-time", campaignHandler.SetCampaignEndTime)
			campaigns.POST("/:id/pause", campaignHandler.PauseCampaign)
			campaigns.POST("/:id/unpause", campaignHandler.UnpauseCampaign)
			campaigns.GET("/:id/stats", campaignHandler.GetCampaignStats)
			campaigns.POST("/:id/contributions", contributeHandler.Contribute)
			campaigns.GET("/:id/contributions", contributeHandler.GetCampaignContributions)
			campaigns.GET("/:id/contributions/:address", contributeHandler.GetContribution)
			campaigns.POST("/:id/supporters", contributeHandler.AddSupporter)
			campaigns.GET("/:id/supporters/count", contributeHandler.GetSupporterCount)
		}

		// 管理员侧活动统计
		v1.GET("/admin/campaigns/:id/stats", campaignHandler.AdminGetCampaignStats)

		// 用户相关路由
		users := v1.Group("/users")
		{
			users.GET("/:address/campaigns", queryHandler.GetUserCampaigns)
			users.GET("/:address/contributions", contributeHandler.GetUserContributions)
		}

		// 管理员注册表
		admins := v1.Group("/admins")
		{
			admins.POST("", adminHandler.AddAdmin)
			admins.GET("", adminHandler.GetAllAdmins)
			admins.GET("/count", adminHandler.GetAdminCount)
			admins.GET("/index/:index", adminHandler.GetAdminByIndex)
			admins.GET("/check/:address", adminHandler.CheckAdmin)
			admins.DELETE("/:address", adminHandler.RemoveAdmin)
		}
		v1.GET("/owner", adminHandler.GetOwner)

		// 创建者审批
		creators := v1.Group("/creators")
		{
			creators.POST("", adminHandler.ApproveCreator)
			creators.GET("/:address", adminHandler.CheckCreator)
			creators.DELETE("/:address", adminHandler.RevokeCreator)
		}

		// 平台运行状态
		platform := v1.Group("/platform")
		{
			platform.POST("/pause", adminHandler.PausePlatform)
			platform.POST("/unpause", adminHandler.UnpausePlatform)
			platform.GET("/status", adminHandler.GetPlatformStatus)
		}

		// 奖励相关路由
		rewards := v1.Group("/rewards")
		{
			rewards.POST("/mint", rewardHandler.MintReward)
			rewards.GET("/tier/:count", rewardHandler.GetTierForCount)
			rewards.GET("/user/:address/available", rewardHandler.GetAvailableTiers)
			rewards.GET("/user/:address/tokens", rewardHandler.GetUserRewards)
			rewards.GET("/user/:address/claimed/:tier", rewardHandler.HasClaimed)
			rewards.GET("/user/:address/eligible/:tier", rewardHandler.CanClaim)
		}
		v1.GET("/tokens/:id/tier", rewardHandler.GetTokenTier)
		tiers := v1.Group("/tiers")
		{
			tiers.PUT("/:tier/metadata", rewardHandler.SetTierMetadata)
			tiers.GET("/:tier/metadata", rewardHandler.GetTierMetadata)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
