package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaqueks/tasks/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[user][register][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		log.Printf("[user][register][err] email=%q: %v", req.Email, err)
		respondError(c, err)
		return
	}
	log.Printf("[user][register][ok] id=%s", user.ID)
	c.JSON(http.StatusCreated, user)
}

// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := getUserID(c)
	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[user][me][err] id=%s: %v", userID, err)
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /users/me/telegram
func (h *UserHandler) LinkTelegram(c *gin.Context) {
	userID := getUserID(c)

	var req struct {
		ChatID int64 `json:"chat_id" binding:"required"`
		Notify *bool `json:"notify"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	notify := true
	if req.Notify != nil {
		notify = *req.Notify
	}

	if err := h.service.LinkTelegram(c.Request.Context(), userID, req.ChatID, notify); err != nil {
		log.Printf("[user][telegram][err] id=%s: %v", userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[user][telegram][ok] id=%s chatID=%d notify=%v", userID, req.ChatID, notify)
	c.JSON(http.StatusOK, gin.H{"message": "Telegram link updated"})
}
