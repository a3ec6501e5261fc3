package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nfg/fitness-site/internal/domain"
	"nfg/fitness-site/internal/repository"
	"nfg/fitness-site/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the public read-only surface of the site.
type ContentHandler struct {
	content   service.ContentService
	programs  service.ProgramService
	plans     service.HomePlanService
	pingStore func(ctx context.Context) error
}

func NewContentHandler(content service.ContentService, programs service.ProgramService, plans service.HomePlanService, pingStore func(ctx context.Context) error) *ContentHandler {
	return &ContentHandler{
		content:   content,
		programs:  programs,
		plans:     plans,
		pingStore: pingStore,
	}
}

// Home serves the site landing page: programs flagged for home, active
// legacy plans, and the quick links shown on every page.
func (h *ContentHandler) Home(c *gin.Context) {
	programs, err := h.programs.ListHome(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: home programs: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load home page.")
		return
	}
	plans, err := h.plans.List(c.Request.Context(), true)
	if err != nil {
		log.Printf("ERROR: home plans: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load home page.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"programs":     programs,
		"plans":        plans,
		"quickOptions": domain.QuickOptions,
	})
}

// WorkoutsLanding serves /workouts. With ?filter=favorites|recent|top it
// returns that quick list; otherwise the full landing payload.
func (h *ContentHandler) WorkoutsLanding(c *gin.Context) {
	if filter := strings.TrimSpace(c.Query("filter")); filter != "" {
		workouts, err := h.content.QuickList(c.Request.Context(), filter)
		if err != nil {
			log.Printf("ERROR: quick list %q: %v", filter, err)
			abortWithError(c, http.StatusInternalServerError, "Failed to load workouts.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"filter": filter, "workouts": workouts})
		return
	}

	data, err := h.content.Landing(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: workouts landing: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load workouts.")
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *ContentHandler) AllWorkouts(c *gin.Context) {
	workouts, err := h.content.AllWorkouts(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: all workouts: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load workouts.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts, "total": len(workouts)})
}

func (h *ContentHandler) StyleCounts(c *gin.Context) {
	counts, err := h.content.StyleCounts(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: style counts: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load styles.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"styles": counts})
}

func (h *ContentHandler) BodyPartCounts(c *gin.Context) {
	counts, err := h.content.BodyPartCounts(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: body part counts: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load body parts.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bodyParts": counts})
}

// browseFilter maps the query string onto a WorkoutFilter. Unknown sort keys
// fall through to the repository default (name ascending).
func browseFilter(c *gin.Context) repository.WorkoutFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "6"))
	return repository.WorkoutFilter{
		Level:   strings.TrimSpace(c.Query("level")),
		Body:    strings.TrimSpace(c.Query("body")),
		Style:   strings.TrimSpace(c.Query("style")),
		Query:   strings.TrimSpace(c.Query("q")),
		Sort:    strings.TrimSpace(c.Query("sort")),
		Page:    page,
		PerPage: perPage,
	}
}

func (h *ContentHandler) Browse(c *gin.Context) {
	filter := browseFilter(c)
	workouts, total, err := h.content.Browse(c.Request.Context(), filter)
	if err != nil {
		log.Printf("ERROR: browse workouts: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to browse workouts.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"workouts": workouts,
		"total":    total,
		"page":     filter.Page,
		"perPage":  filter.PerPage,
	})
}

func (h *ContentHandler) WorkoutDetail(c *gin.Context) {
	slug := c.Param("slug")
	workout, related, err := h.content.WorkoutDetail(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
			return
		}
		log.Printf("ERROR: workout detail %q: %v", slug, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout, "related": related})
}

func (h *ContentHandler) Programs(c *gin.Context) {
	programs, err := h.programs.List(c.Request.Context(), true)
	if err != nil {
		log.Printf("ERROR: list programs: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load programs.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

func (h *ContentHandler) ProgramDetail(c *gin.Context) {
	slug := c.Param("slug")
	detail, err := h.programs.Detail(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
			return
		}
		log.Printf("ERROR: program detail %q: %v", slug, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load program.")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ContentHandler) Recipes(c *gin.Context) {
	recipes, err := h.content.Recipes(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: list recipes: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load recipes.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ContentHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "24"))

	results, err := h.content.Search(c.Request.Context(), query, page, perPage)
	if err != nil {
		log.Printf("ERROR: search %q: %v", query, err)
		abortWithError(c, http.StatusInternalServerError, "Search failed.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"workouts": results.Workouts,
		"total":    results.Total,
		"recipes":  results.Recipes,
	})
}

// Health is the liveness probe. It never touches the store.
func (h *ContentHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Healthz pings the store but still answers 200 either way, reporting the
// store state in the body so probes don't recycle the process on a blip.
func (h *ContentHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	mongoState := "up"
	if err := h.pingStore(ctx); err != nil {
		log.Printf("WARN: healthz store ping: %v", err)
		mongoState = "down"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "mongo": mongoState})
}
