package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaqueks/tasks/internal/models"
	"github.com/isaqueks/tasks/internal/services"
)

type CompanyHandler struct {
	service services.CompanyService
}

type createCompanyRequest struct {
	Name string `json:"name" binding:"required"`
	CNPJ string `json:"cnpj"`
}

func NewCompanyHandler(service services.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	userID := getUserID(c)

	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[company][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.service.Create(c.Request.Context(), userID, req.Name, req.CNPJ)
	if err != nil {
		log.Printf("[company][create][err] userID=%s: %v", userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[company][create][ok] id=%s userID=%s", company.ID, userID)
	c.JSON(http.StatusCreated, company)
}

// GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	userID := getUserID(c)

	companies, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[company][list][err] userID=%s: %v", userID, err)
		respondError(c, err)
		return
	}
	if companies == nil {
		companies = []models.Company{}
	}
	c.JSON(http.StatusOK, companies)
}

// GET /companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	userID := getUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	company, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		log.Printf("[company][get][err] id=%s userID=%s: %v", id, userID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// PATCH /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	userID := getUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch models.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.Printf("[company][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.service.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		log.Printf("[company][update][err] id=%s userID=%s: %v", id, userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[company][update][ok] id=%s", id)
	c.JSON(http.StatusOK, company)
}

// DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	userID := getUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		log.Printf("[company][delete][err] id=%s userID=%s: %v", id, userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[company][delete][ok] id=%s", id)
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}
