package routes

import (
	"foodshare-backend/internal/api/handlers"
	"foodshare-backend/internal/middleware"
	"foodshare-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	DonationHandler handlers.DonationHandler
	RequestHandler  handlers.RequestHandler
	RewardHandler   handlers.RewardHandler
	AdminHandler    handlers.AdminHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Requests()
	c.Rewards()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetUserDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationDetails)
	donations.Put("/:id", c.DonationHandler.UpdateDonation)
	donations.Delete("/:id", c.DonationHandler.DeleteDonation)
	donations.Put("/:id/status", c.DonationHandler.UpdateDonationStatus)
	donations.Post("/:id/match", c.DonationHandler.MatchDonation)
}

func (c *Config) Requests() {
	requests := c.App.Group("/api/v1/requests", c.Middleware.AuthMiddleware(c.JWTService))

	requests.Post("", c.RequestHandler.CreateRequest)
	requests.Get("", c.RequestHandler.GetBeneficiaryRequests)
	requests.Delete("/:id", c.RequestHandler.CancelRequest)
	requests.Put("/:id/approve", c.RequestHandler.ApproveRequest)
}

func (c *Config) Rewards() {
	rewards := c.App.Group("/api/v1/rewards", c.Middleware.AuthMiddleware(c.JWTService))

	rewards.Post("", c.RewardHandler.AssignReward)
	rewards.Get("/leaderboard", c.RewardHandler.GetLeaderboard)
	rewards.Get("/user/:id", c.RewardHandler.GetUserRewards)

	c.App.Get("/api/v1/impact-metrics/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RewardHandler.GetImpactMetrics)
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin", c.Middleware.AuthMiddleware(c.JWTService))

	admin.Get("/users", c.AdminHandler.ListAllUsers)
	admin.Get("/users/:id", c.AdminHandler.GetUserDetails)
	admin.Put("/users/:id/status", c.AdminHandler.UpdateUserStatus)
	admin.Get("/donations", c.AdminHandler.ListAllDonations)
	admin.Put("/donations/:id/status", c.AdminHandler.OverrideDonationStatus)
	admin.Put("/donations/:id/audit", c.AdminHandler.AuditDonation)
	admin.Get("/analytics", c.AdminHandler.GenerateAnalyticsReport)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
