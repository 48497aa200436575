package handlers

import (
	"net/http"

	"github.com/Web-Master-pro-max/ecommerce-project/api/middleware"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/redis_repo"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/service"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	userService service.IUserService
	sessionRepo *redis_repo.SessionRepo
	tokenMaker  *token.JWTMaker
}

func NewAuthHandler(userService service.IUserService, sessionRepo *redis_repo.SessionRepo, tokenMaker *token.JWTMaker) *AuthHandler {
	return &AuthHandler{userService: userService, sessionRepo: sessionRepo, tokenMaker: tokenMaker}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterParams
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
// 同時建立session cookie與bearer token，前端頁面用cookie，API客戶端用token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	actor := &model.Actor{UserID: user.UserID, Role: user.Role}

	sessionToken := uuid.NewString()
	if err := h.sessionRepo.Create(c.Request.Context(), sessionToken, actor); err != nil {
		abortWithError(c, err)
		return
	}

	accessToken, err := h.tokenMaker.CreateToken(actor)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, sessionToken, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   accessToken,
	})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie != "" {
		_ = h.sessionRepo.Delete(c.Request.Context(), cookie)
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.GetActor(c)

	user, err := h.userService.GetUser(c.Request.Context(), actor.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// PUT /api/users/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), &model.User{
		UserID:  actor.UserID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GET /api/users (admin)
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
