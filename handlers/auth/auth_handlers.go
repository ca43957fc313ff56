package auth

import (
	"net/http"

	"api/database"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login authenticates a user and returns a JWT
// @Summary Login
// @Description Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400,401 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if user.Blocked {
		response.Error(c, http.StatusUnauthorized, ErrAccountBlocked)
		return
	}

	token, err := utils.GenerateToken(user.ID, req.RememberMe)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, req.RememberMe)
	c.JSON(http.StatusOK, authResponse(token, &user))
}

// RegisterUser creates a new player account
// @Summary Register
// @Description Create a new account with username, email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400,409 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		response.Error(c, http.StatusConflict, ErrEmailInUse)
		return
	}
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		response.Error(c, http.StatusConflict, ErrUsernameInUse)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	token, err := utils.GenerateToken(user.ID, false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, false)
	c.JSON(http.StatusCreated, authResponse(token, &user))
}

// CheckAuth validates the current token and returns the user it belongs to
// @Summary Check authentication
// @Description Validate the current session token
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
func CheckAuth(c *gin.Context) {
	token := extractBearerOrCookie(c)
	if token == "" {
		response.Error(c, http.StatusUnauthorized, ErrNoTokenProvided)
		return
	}

	userID, err := utils.ParseToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidToken)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusUnauthorized, ErrUserNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, authResponse(token, &user))
}

// Logout clears the authentication cookie
// @Summary Logout
// @Description Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": ErrLogoutSuccess})
}

func extractBearerOrCookie(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func authResponse(token string, user *models.User) AuthResponse {
	return AuthResponse{
		Token:        token,
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		TotalScore:   user.TotalScore,
		GamesPlayed:  user.GamesPlayed,
		HighestScore: user.HighestScore,
		LastPlayed:   user.LastPlayed,
	}
}
