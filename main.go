// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/erinskieasy/calm-yuh-mind/config"
	"github.com/erinskieasy/calm-yuh-mind/endpoint"
	"github.com/erinskieasy/calm-yuh-mind/middleware"
	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Session{},
		&model.TherapistProfile{},
		&model.MoodEntry{},
		&model.JournalEntry{},
		&model.MeditationSession{},
		&model.ChatMessage{},
		&model.Assessment{},
		&model.AssessmentResult{},
		&model.ForumPost{},
		&model.ForumReply{},
		&model.Sound{},
		&model.GameScore{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}
	if err := model.SeedRoles(db); err != nil {
		log.Fatalf("Error seeding roles: %v", err)
	}
	if err := model.SeedAssessments(db); err != nil {
		log.Fatalf("Error seeding assessments: %v", err)
	}
	if err := model.SeedSounds(db); err != nil {
		log.Fatalf("Error seeding sounds: %v", err)
	}

	if _, err := config.ConnectRedis(); err != nil {
		// Rate limiting and session sets degrade gracefully without Redis.
		log.Printf("Redis unavailable: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(util.Logger()))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	authLimiter := middleware.RateLimiter(middleware.RateLimitConfig{Limit: 5, Window: 15 * time.Minute})
	router.POST("/signup", authLimiter, endpoint.Signup)
	router.POST("/login", authLimiter, endpoint.Login)
	router.POST("/logout", endpoint.Logout)
	router.GET("/token/validate", endpoint.ValidateToken)

	api := router.Group("/api")
	api.Use(middleware.ValidateLoginToken())
	{
		api.GET("/user", endpoint.GetUser)
		api.PATCH("/user", endpoint.UpdateUser)

		api.GET("/therapists/nearby", endpoint.ListNearbyTherapists)
		therapistOnly := api.Group("/therapists")
		therapistOnly.Use(middleware.RequireRole(model.RoleTherapist))
		{
			therapistOnly.GET("/profile", endpoint.GetTherapistProfile)
			therapistOnly.PUT("/profile", endpoint.UpsertTherapistProfile)
		}

		api.GET("/moods", endpoint.ListMoods)
		api.POST("/moods", endpoint.CreateMood)
		api.DELETE("/moods/:id", endpoint.DeleteMood)

		api.GET("/journals", endpoint.ListJournalEntries)
		api.GET("/journals/:id", endpoint.GetJournalEntry)
		api.POST("/journals", endpoint.CreateJournalEntry)
		api.DELETE("/journals/:id", endpoint.DeleteJournalEntry)

		api.GET("/meditations", endpoint.ListMeditationSessions)
		api.POST("/meditations", endpoint.CreateMeditationSession)
		api.GET("/meditations/summary", endpoint.MeditationSummary)

		api.GET("/assessments", endpoint.ListAssessments)
		api.POST("/assessments/:key", endpoint.SubmitAssessment)
		api.GET("/assessments/results", endpoint.ListAssessmentResults)

		chatLimiter := middleware.RateLimiter(middleware.RateLimitConfig{Limit: 30, Window: time.Minute})
		api.POST("/chat", chatLimiter, endpoint.Chat)
		api.GET("/chat/history", endpoint.ChatHistory)
		api.DELETE("/chat/history", endpoint.ClearChatHistory)

		api.GET("/forum/posts", endpoint.ListForumPosts)
		api.GET("/forum/posts/:id", endpoint.GetForumPost)
		api.POST("/forum/posts", endpoint.CreateForumPost)
		api.POST("/forum/posts/:id/replies", endpoint.CreateForumReply)
		api.DELETE("/forum/posts/:id", endpoint.DeleteForumPost)

		api.GET("/sounds", endpoint.ListSounds)

		api.POST("/games/scores", endpoint.CreateGameScore)
		api.GET("/games/scores", endpoint.ListGameScores)
	}

	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
