package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"
	"nfg/fitness-site/internal/service"
	"nfg/fitness-site/internal/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminProgramHandler covers programs plus their week/item hierarchy.
type AdminProgramHandler struct {
	programs service.ProgramService
	store    storage.FileStorage
}

func NewAdminProgramHandler(programs service.ProgramService, store storage.FileStorage) *AdminProgramHandler {
	return &AdminProgramHandler{programs: programs, store: store}
}

func (h *AdminProgramHandler) parseProgramForm(c *gin.Context) service.ProgramInput {
	order, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("order")))
	return service.ProgramInput{
		Title:         c.PostForm("title"),
		Slug:          c.PostForm("slug"),
		Category:      strings.TrimSpace(c.PostForm("category")),
		DurationLabel: strings.TrimSpace(c.PostForm("duration_label")),
		Summary:       c.PostForm("summary"),
		CoverImage:    collectSingleImage(c, h.store, "cover_image_file", "cover_image_url", "cover_image"),
		Order:         order,
		Active:        formBool(c.PostForm("active")),
		ShowOnHome:    formBool(c.PostForm("show_on_home")),
	}
}

func programFormEcho(input service.ProgramInput) gin.H {
	return gin.H{
		"title":         input.Title,
		"slug":          input.Slug,
		"category":      input.Category,
		"durationLabel": input.DurationLabel,
		"summary":       input.Summary,
		"coverImage":    input.CoverImage,
		"order":         input.Order,
		"active":        input.Active,
		"showOnHome":    input.ShowOnHome,
	}
}

func (h *AdminProgramHandler) List(c *gin.Context) {
	programs, err := h.programs.List(c.Request.Context(), false)
	if err != nil {
		log.Printf("ERROR: admin list programs: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load programs.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

func (h *AdminProgramHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	program, err := h.programs.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
			return
		}
		log.Printf("ERROR: admin get program: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load program.")
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *AdminProgramHandler) Create(c *gin.Context) {
	input := h.parseProgramForm(c)
	program, err := h.programs.Create(c.Request.Context(), input)
	if err != nil {
		h.respondFormError(c, input, err, "create")
		return
	}
	c.JSON(http.StatusCreated, program)
}

func (h *AdminProgramHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	input := h.parseProgramForm(c)
	program, err := h.programs.Update(c.Request.Context(), id, input)
	if err != nil {
		h.respondFormError(c, input, err, "update")
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *AdminProgramHandler) respondFormError(c *gin.Context, input service.ProgramInput, err error, op string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title is required", "form": programFormEcho(input)})
	case errors.Is(err, service.ErrSlugTaken):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Slug is already used by another program.", "form": programFormEcho(input)})
	case errors.Is(err, service.ErrProgramNotFound):
		abortWithError(c, http.StatusNotFound, "Program not found.")
	default:
		log.Printf("ERROR: admin %s program: %v", op, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to save program.")
	}
}

// Delete removes the program and everything under it: items first, then
// weeks, then the program document.
func (h *AdminProgramHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.programs.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
			return
		}
		log.Printf("ERROR: admin delete program: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to delete program.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted."})
}

func (h *AdminProgramHandler) ToggleActive(c *gin.Context) {
	h.toggle(c, h.programs.ToggleActive)
}

func (h *AdminProgramHandler) ToggleShowOnHome(c *gin.Context) {
	h.toggle(c, h.programs.ToggleShowOnHome)
}

func (h *AdminProgramHandler) toggle(c *gin.Context, fn func(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	program, err := fn(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
			return
		}
		log.Printf("ERROR: admin toggle program: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to toggle program.")
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *AdminProgramHandler) AddWeek(c *gin.Context) {
	programID, ok := parseObjectID(c)
	if !ok {
		return
	}
	weekNumber, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("week_number")))
	order, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("order")))
	if weekNumber < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "week_number must be at least 1", "form": gin.H{"weekNumber": weekNumber, "order": order}})
		return
	}

	week, err := h.programs.AddWeek(c.Request.Context(), programID, weekNumber, order)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
			return
		}
		log.Printf("ERROR: admin add week: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to add week.")
		return
	}
	c.JSON(http.StatusCreated, week)
}

// DeleteWeek removes a week and its items.
func (h *AdminProgramHandler) DeleteWeek(c *gin.Context) {
	weekID, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.programs.DeleteWeek(c.Request.Context(), weekID); err != nil {
		if errors.Is(err, service.ErrWeekNotFound) {
			abortWithError(c, http.StatusNotFound, "Week not found.")
			return
		}
		log.Printf("ERROR: admin delete week: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to delete week.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Week deleted."})
}

// AddItem attaches a workout reference (or a free slot) to a week. The
// workout reference is loose: it is not verified to exist and may dangle
// after the workout is deleted.
func (h *AdminProgramHandler) AddItem(c *gin.Context) {
	weekID, ok := parseObjectID(c)
	if !ok {
		return
	}
	order, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("order")))

	var workoutID *primitive.ObjectID
	if raw := strings.TrimSpace(c.PostForm("workout_id")); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "workout_id is not a valid ID", "form": gin.H{"workoutId": raw, "order": order}})
			return
		}
		workoutID = &id
	}

	item, err := h.programs.AddItem(c.Request.Context(), weekID, workoutID, order)
	if err != nil {
		if errors.Is(err, service.ErrWeekNotFound) {
			abortWithError(c, http.StatusNotFound, "Week not found.")
			return
		}
		log.Printf("ERROR: admin add item: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to add item.")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AdminProgramHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.programs.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Item not found.")
			return
		}
		log.Printf("ERROR: admin delete item: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to delete item.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted."})
}
