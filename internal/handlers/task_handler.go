package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaqueks/tasks/internal/models"
	"github.com/isaqueks/tasks/internal/pdf"
	"github.com/isaqueks/tasks/internal/services"
)

type TaskHandler struct {
	service services.TaskService

	// optional Telegram notifications
	tg    *services.TelegramService
	users services.UserService
}

func NewTaskHandler(service services.TaskService, tg *services.TelegramService, users services.UserService) *TaskHandler {
	return &TaskHandler{service: service, tg: tg, users: users}
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID := getUserID(c)

	var req struct {
		Name        string          `json:"name" binding:"required"`
		Description string          `json:"description"`
		Priority    models.Priority `json:"priority"` // LOW|MEDIUM|HIGH
		Date        string          `json:"date"`     // YYYY-MM-DD
		CompanyID   string          `json:"company_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date *models.Date
	if req.Date != "" {
		d, err := models.ParseDate(req.Date)
		if err != nil {
			log.Printf("[task][create][err] invalid date=%q: %v", req.Date, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date (YYYY-MM-DD)"})
			return
		}
		date = &d
	}

	task, err := h.service.Create(c.Request.Context(), userID, services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		Date:        date,
		CompanyID:   req.CompanyID,
	})
	if err != nil {
		log.Printf("[task][create][err] userID=%s: %v", userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][create][ok] id=%s company=%s", task.ID, task.CompanyID)
	c.JSON(http.StatusCreated, task)

	h.notifyCreated(c, userID, task)
}

// GET /tasks?company_id=&priority=&completed=&date=
func (h *TaskHandler) List(c *gin.Context) {
	userID := getUserID(c)

	var filter models.TaskFilter
	if v := c.Query("company_id"); v != "" {
		filter.CompanyID = &v
	} else if v := c.Query("companyId"); v != "" {
		filter.CompanyID = &v
	}
	if v, ok := c.GetQuery("priority"); ok && v != "" {
		p := models.Priority(v)
		filter.Priority = &p
	}
	// anything but the literal "true"/"false" is ignored
	switch c.Query("completed") {
	case "true":
		t := true
		filter.Completed = &t
	case "false":
		f := false
		filter.Completed = &f
	}
	if v, ok := c.GetQuery("date"); ok && v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			log.Printf("[task][list][err] invalid date=%q: %v", v, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date (YYYY-MM-DD)"})
			return
		}
		filter.Date = &d
	}

	tasks, err := h.service.List(c.Request.Context(), userID, filter)
	if err != nil {
		log.Printf("[task][list][err] userID=%s: %v", userID, err)
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Weekly board
// @Description  Groups the caller's tasks into a Monday-to-Sunday grid per company, plus a backlog bucket for undated tasks
// @Tags         Tasks
// @Produce      json
// @Param        start_date  query     string  false  "Anchor date (YYYY-MM-DD); defaults to today"
// @Success      200         {object}  models.WeeklyBoard
// @Failure      400         {object}  map[string]string
// @Router       /tasks/weekly [get]
func (h *TaskHandler) Weekly(c *gin.Context) {
	userID := getUserID(c)

	anchor, ok := h.parseAnchor(c)
	if !ok {
		return
	}

	board, err := h.service.Weekly(c.Request.Context(), userID, anchor)
	if err != nil {
		log.Printf("[task][weekly][err] userID=%s: %v", userID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// GET /tasks/weekly/pdf
func (h *TaskHandler) WeeklyPDF(c *gin.Context) {
	userID := getUserID(c)

	anchor, ok := h.parseAnchor(c)
	if !ok {
		return
	}

	board, err := h.service.Weekly(c.Request.Context(), userID, anchor)
	if err != nil {
		log.Printf("[task][weekly-pdf][err] userID=%s: %v", userID, err)
		respondError(c, err)
		return
	}

	out, err := pdf.WeeklyReport(board)
	if err != nil {
		log.Printf("[task][weekly-pdf][err] render userID=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	filename := fmt.Sprintf("week_%s.pdf", board.StartDate.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

func (h *TaskHandler) parseAnchor(c *gin.Context) (*time.Time, bool) {
	v := c.Query("start_date")
	if v == "" {
		v = c.Query("startDate")
	}
	if v == "" {
		return nil, true
	}
	d, err := models.ParseDate(v)
	if err != nil {
		log.Printf("[task][weekly][err] invalid start_date=%q: %v", v, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date (YYYY-MM-DD)"})
		return nil, false
	}
	t := d.Time
	return &t, true
}

// GET /tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID := getUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		log.Printf("[task][get][err] id=%s userID=%s: %v", id, userID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// PATCH /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID := getUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Priority    *models.Priority `json:"priority"`
		Date        *string          `json:"date"` // "" clears the date
		Completed   *bool            `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := models.TaskPatch{
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}
	if req.Date != nil {
		patch.DateSet = true
		if *req.Date != "" {
			d, err := models.ParseDate(*req.Date)
			if err != nil {
				log.Printf("[task][update][err] invalid date=%q: %v", *req.Date, err)
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date (YYYY-MM-DD)"})
				return
			}
			patch.Date = &d
		}
	}

	task, err := h.service.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		log.Printf("[task][update][err] id=%s userID=%s: %v", id, userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][update][ok] id=%s", id)
	c.JSON(http.StatusOK, task)
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID := getUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		log.Printf("[task][delete][err] id=%s userID=%s: %v", id, userID, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][delete][ok] id=%s", id)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (h *TaskHandler) notifyCreated(c *gin.Context, userID string, task *models.Task) {
	if h.tg == nil || h.users == nil {
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil || user == nil || !user.NotifyTelegram || user.TelegramChatID == nil {
		return
	}
	h.tg.NotifyTaskCreated(*user.TelegramChatID, task)
}
