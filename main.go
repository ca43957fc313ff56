package main

import (
	"log"

	"api/config"
	"api/database"
	_ "api/docs"
	"api/gamestate"
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/routes/v1"
	"api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Minduel API
// @version 1.0
// @description Quickplay trivia backend: games, leaderboards and AI question generation
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Load()
	database.InitDB()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	questions := services.NewQuestionStore()
	games := services.NewGameService(questions, services.NewGameRepository())
	anonymous := services.NewAnonymousGameService(questions, gamestate.NewRedisStore(redisClient))
	generator := services.NewGeneratorService(services.NewOpenAIClient())

	games.SetCompletionHook(func(game *models.QuickplayGame) {
		services.OnGameCompleted(game)

		entry, err := services.UserBest(game.PlayerID)
		if err != nil || entry == nil {
			return
		}
		username := "Unknown"
		var user models.User
		if err := database.DB.First(&user, "id = ?", game.PlayerID).Error; err == nil {
			username = user.Username
		}
		realtime.BroadcastLeaderboardUpdate(realtime.LeaderboardUpdate{
			Entry:    *entry,
			Username: username,
		})
	})

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	middleware.UpdateSystemMetrics()

	v1.Register(r, games, anonymous, generator)

	log.Printf("Starting server on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
