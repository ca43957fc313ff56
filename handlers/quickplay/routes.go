package quickplay

import (
	"api/middleware"
	"api/services"

	"github.com/gin-gonic/gin"
)

var (
	gameService      *services.GameService
	anonymousService *services.AnonymousGameService
	generatorService *services.GeneratorService
)

// RegisterRoutes registers all routes related to quickplay games.
// r: the RouterGroup to which routes are added.
// Most endpoints serve both authenticated and anonymous players; which engine
// handles the request depends on whether a valid token is attached.
func RegisterRoutes(r *gin.RouterGroup, games *services.GameService, anonymous *services.AnonymousGameService, generator *services.GeneratorService) {
	gameService = games
	anonymousService = anonymous
	generatorService = generator

	quickplay := r.Group("/quickplay")
	{
		quickplay.POST("/start", middleware.OptionalAuth(), StartGame)
		quickplay.GET("/question", middleware.OptionalAuth(), GetQuestion)
		quickplay.POST("/answer", middleware.OptionalAuth(), SubmitAnswer)
		quickplay.POST("/end", middleware.OptionalAuth(), EndGame)
		quickplay.GET("/results/:game_id", middleware.RequireAuth(), GetResults)

		quickplay.GET("/leaderboard", GetLeaderboard)
		quickplay.GET("/home", middleware.OptionalAuth(), GetHomeStats)
		quickplay.GET("/ws/leaderboard", LeaderboardWebSocket)

		quickplay.POST("/ai/generate", middleware.RequireAuth(), GenerateAIQuestion)
		quickplay.GET("/ai/question", GetAIQuestion)
	}
}
