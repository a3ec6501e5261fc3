package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"nfg/fitness-site/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminStyleHandler struct {
	styles service.StyleService
}

func NewAdminStyleHandler(styles service.StyleService) *AdminStyleHandler {
	return &AdminStyleHandler{styles: styles}
}

func (h *AdminStyleHandler) List(c *gin.Context) {
	styles, err := h.styles.List(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: admin list styles: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load styles.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"styles": styles})
}

func (h *AdminStyleHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	order, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("order")))
	if name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name is required", "form": gin.H{"name": name, "order": order}})
		return
	}

	style, err := h.styles.Add(c.Request.Context(), name, order)
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "A style with that name already exists.", "form": gin.H{"name": name, "order": order}})
			return
		}
		log.Printf("ERROR: admin create style: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to create style.")
		return
	}
	c.JSON(http.StatusCreated, style)
}

func (h *AdminStyleHandler) Toggle(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	style, err := h.styles.Toggle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStyleNotFound) {
			abortWithError(c, http.StatusNotFound, "Style not found.")
			return
		}
		log.Printf("ERROR: admin toggle style: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to toggle style.")
		return
	}
	c.JSON(http.StatusOK, style)
}

func (h *AdminStyleHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.styles.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStyleNotFound) {
			abortWithError(c, http.StatusNotFound, "Style not found.")
			return
		}
		log.Printf("ERROR: admin delete style: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to delete style.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Style deleted."})
}
