package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"nfg/fitness-site/internal/service"
	"nfg/fitness-site/internal/storage"

	"github.com/gin-gonic/gin"
)

// AdminHomePlanHandler covers the legacy flat home plans.
type AdminHomePlanHandler struct {
	plans service.HomePlanService
	store storage.FileStorage
}

func NewAdminHomePlanHandler(plans service.HomePlanService, store storage.FileStorage) *AdminHomePlanHandler {
	return &AdminHomePlanHandler{plans: plans, store: store}
}

func (h *AdminHomePlanHandler) parsePlanForm(c *gin.Context) service.HomePlanInput {
	order, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("order")))
	return service.HomePlanInput{
		Title:         c.PostForm("title"),
		Slug:          c.PostForm("slug"),
		Category:      strings.TrimSpace(c.PostForm("category")),
		DurationLabel: strings.TrimSpace(c.PostForm("duration_label")),
		Summary:       c.PostForm("summary"),
		CoverImage:    collectSingleImage(c, h.store, "cover_image_file", "cover_image_url", "cover_image"),
		CTALabel:      strings.TrimSpace(c.PostForm("cta_label")),
		CTAURL:        strings.TrimSpace(c.PostForm("cta_url")),
		Order:         order,
		Active:        formBool(c.PostForm("active")),
	}
}

func planFormEcho(input service.HomePlanInput) gin.H {
	return gin.H{
		"title":         input.Title,
		"slug":          input.Slug,
		"category":      input.Category,
		"durationLabel": input.DurationLabel,
		"summary":       input.Summary,
		"coverImage":    input.CoverImage,
		"ctaLabel":      input.CTALabel,
		"ctaUrl":        input.CTAURL,
		"order":         input.Order,
		"active":        input.Active,
	}
}

func (h *AdminHomePlanHandler) List(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context(), false)
	if err != nil {
		log.Printf("ERROR: admin list plans: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load plans.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *AdminHomePlanHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	plan, err := h.plans.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHomePlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Plan not found.")
			return
		}
		log.Printf("ERROR: admin get plan: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load plan.")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *AdminHomePlanHandler) Create(c *gin.Context) {
	input := h.parsePlanForm(c)
	plan, err := h.plans.Create(c.Request.Context(), input)
	if err != nil {
		h.respondFormError(c, input, err, "create")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *AdminHomePlanHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	input := h.parsePlanForm(c)
	plan, err := h.plans.Update(c.Request.Context(), id, input)
	if err != nil {
		h.respondFormError(c, input, err, "update")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *AdminHomePlanHandler) respondFormError(c *gin.Context, input service.HomePlanInput, err error, op string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title is required", "form": planFormEcho(input)})
	case errors.Is(err, service.ErrSlugTaken):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Slug is already used by another plan.", "form": planFormEcho(input)})
	case errors.Is(err, service.ErrHomePlanNotFound):
		abortWithError(c, http.StatusNotFound, "Plan not found.")
	default:
		log.Printf("ERROR: admin %s plan: %v", op, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to save plan.")
	}
}

func (h *AdminHomePlanHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.plans.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrHomePlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Plan not found.")
			return
		}
		log.Printf("ERROR: admin delete plan: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to delete plan.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted."})
}

func (h *AdminHomePlanHandler) Toggle(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	plan, err := h.plans.Toggle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHomePlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Plan not found.")
			return
		}
		log.Printf("ERROR: admin toggle plan: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to toggle plan.")
		return
	}
	c.JSON(http.StatusOK, plan)
}
