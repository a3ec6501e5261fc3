package api

import (
	"nfg/fitness-site/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps multipart form memory; larger files spill to disk and
// anything beyond this is rejected by the form parser.
const maxUploadBytes = 10 << 20

// SetupRoutes configures the engine: public site routes, the session
// endpoints, and the cookie-gated admin group. mediaPrefix/mediaRoot mount
// the local upload directory; both empty means media is served elsewhere
// (S3 backend).
func SetupRoutes(
	router *gin.Engine,
	authHandler *AuthHandler,
	contentHandler *ContentHandler,
	workoutHandler *AdminWorkoutHandler,
	styleHandler *AdminStyleHandler,
	programHandler *AdminProgramHandler,
	planHandler *AdminHomePlanHandler,
	authService service.AuthService,
	mediaPrefix, mediaRoot string,
) {
	router.MaxMultipartMemory = maxUploadBytes

	if mediaPrefix != "" && mediaRoot != "" {
		router.Static(mediaPrefix, mediaRoot)
	}

	// Probes.
	router.GET("/health", contentHandler.Health)
	router.GET("/healthz", contentHandler.Healthz)

	// Public site.
	router.GET("/", contentHandler.Home)
	router.GET("/workouts", contentHandler.WorkoutsLanding)
	router.GET("/workouts/all", contentHandler.AllWorkouts)
	router.GET("/workouts/styles", contentHandler.StyleCounts)
	router.GET("/workouts/body-parts", contentHandler.BodyPartCounts)
	router.GET("/workouts/browse", contentHandler.Browse)
	router.GET("/workouts/:slug", contentHandler.WorkoutDetail)
	router.GET("/programs", contentHandler.Programs)
	router.GET("/programs/:slug", contentHandler.ProgramDetail)
	router.GET("/recipes", contentHandler.Recipes)
	router.GET("/search", contentHandler.Search)

	// Session.
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	// Admin area, gated on a valid session cookie.
	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(authService))
	{
		admin.GET("/workouts", workoutHandler.List)
		admin.POST("/workouts", workoutHandler.Create)
		admin.GET("/workouts/:id", workoutHandler.Get)
		admin.PUT("/workouts/:id", workoutHandler.Update)
		admin.DELETE("/workouts/:id", workoutHandler.Delete)
		admin.POST("/uploads", workoutHandler.Upload)

		admin.GET("/styles", styleHandler.List)
		admin.POST("/styles", styleHandler.Create)
		admin.POST("/styles/:id/toggle", styleHandler.Toggle)
		admin.DELETE("/styles/:id", styleHandler.Delete)

		admin.GET("/programs", programHandler.List)
		admin.POST("/programs", programHandler.Create)
		admin.GET("/programs/:id", programHandler.Get)
		admin.PUT("/programs/:id", programHandler.Update)
		admin.DELETE("/programs/:id", programHandler.Delete)
		admin.POST("/programs/:id/toggle-active", programHandler.ToggleActive)
		admin.POST("/programs/:id/toggle-home", programHandler.ToggleShowOnHome)
		admin.POST("/programs/:id/weeks", programHandler.AddWeek)
		admin.DELETE("/weeks/:id", programHandler.DeleteWeek)
		admin.POST("/weeks/:id/items", programHandler.AddItem)
		admin.DELETE("/items/:id", programHandler.DeleteItem)

		admin.GET("/plans", planHandler.List)
		admin.POST("/plans", planHandler.Create)
		admin.GET("/plans/:id", planHandler.Get)
		admin.PUT("/plans/:id", planHandler.Update)
		admin.DELETE("/plans/:id", planHandler.Delete)
		admin.POST("/plans/:id/toggle", planHandler.Toggle)
	}
}
