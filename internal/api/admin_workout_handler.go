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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminWorkoutHandler covers the admin workout CRUD, including the ordered
// image slots on the create/update forms.
type AdminWorkoutHandler struct {
	workouts service.WorkoutService
	store    storage.FileStorage
}

func NewAdminWorkoutHandler(workouts service.WorkoutService, store storage.FileStorage) *AdminWorkoutHandler {
	return &AdminWorkoutHandler{workouts: workouts, store: store}
}

func parseObjectID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid ID format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseWorkoutForm reads the admin form, resolving the image slots through
// storage as a side effect.
func (h *AdminWorkoutHandler) parseWorkoutForm(c *gin.Context) service.WorkoutInput {
	rating, _ := strconv.ParseFloat(strings.TrimSpace(c.PostForm("rating")), 64)
	return service.WorkoutInput{
		Name:        c.PostForm("name"),
		Slug:        c.PostForm("slug"),
		Level:       strings.TrimSpace(c.PostForm("level")),
		Style:       strings.TrimSpace(c.PostForm("style")),
		BodyPart:    strings.TrimSpace(c.PostForm("body_part")),
		BodyParts:   c.PostForm("body_parts"),
		Tags:        c.PostForm("tags"),
		Images:      collectOrderedImages(c, h.store),
		MuscleImage: collectSingleImage(c, h.store, "muscle_image_file", "muscle_image_url", "muscle_image"),
		Info:        c.PostForm("info"),
		Tips:        c.PostForm("tips"),
		YouTubeRaw:  c.PostForm("youtube"),
		IsFavorite:  formBool(c.PostForm("is_favorite")),
		Rating:      rating,
	}
}

// formBool treats the usual checkbox values as true.
func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// workoutFormEcho returns the submitted values so the admin form can be
// re-rendered with them after a validation failure.
func workoutFormEcho(input service.WorkoutInput) gin.H {
	return gin.H{
		"name":        input.Name,
		"slug":        input.Slug,
		"level":       input.Level,
		"style":       input.Style,
		"bodyPart":    input.BodyPart,
		"bodyParts":   input.BodyParts,
		"tags":        input.Tags,
		"images":      input.Images,
		"muscleImage": input.MuscleImage,
		"info":        input.Info,
		"tips":        input.Tips,
		"youtube":     input.YouTubeRaw,
		"isFavorite":  input.IsFavorite,
		"rating":      input.Rating,
	}
}

func (h *AdminWorkoutHandler) List(c *gin.Context) {
	workouts, err := h.workouts.ListNewestFirst(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: admin list workouts: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load workouts.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

func (h *AdminWorkoutHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	workout, err := h.workouts.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
			return
		}
		log.Printf("ERROR: admin get workout: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *AdminWorkoutHandler) Create(c *gin.Context) {
	input := h.parseWorkoutForm(c)
	workout, err := h.workouts.Create(c.Request.Context(), input)
	if err != nil {
		h.respondFormError(c, input, err, "create")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (h *AdminWorkoutHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	input := h.parseWorkoutForm(c)
	workout, err := h.workouts.Update(c.Request.Context(), id, input)
	if err != nil {
		h.respondFormError(c, input, err, "update")
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *AdminWorkoutHandler) respondFormError(c *gin.Context, input service.WorkoutInput, err error, op string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "form": workoutFormEcho(input)})
	case errors.Is(err, service.ErrSlugTaken):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Slug is already used by another workout.", "form": workoutFormEcho(input)})
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found.")
	default:
		log.Printf("ERROR: admin %s workout: %v", op, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to save workout.")
	}
}

func (h *AdminWorkoutHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.workouts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
			return
		}
		log.Printf("ERROR: admin delete workout: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted."})
}

// Upload stores a single admin image upload and returns its public URL, for
// forms that resolve images before submitting.
func (h *AdminWorkoutHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "No file in request.")
		return
	}
	url, ok := saveUpload(c, h.store, header)
	if !ok {
		abortWithError(c, http.StatusUnprocessableEntity, "File type not allowed or upload failed.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
