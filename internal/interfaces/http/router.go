package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Jardineria-api/internal/application/auth"
	"github.com/jhoicas/Jardineria-api/internal/application/notifications"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ClientUC    *usecase.ClientUseCase
	JobUC       *usecase.JobUseCase
	TemplateUC  *usecase.TemplateUseCase
	PhotoUC     *usecase.PhotoUseCase
	TaskUC      *usecase.TaskUseCase
	SavedItemUC *usecase.SavedItemUseCase
	Aggregator  *notifications.Aggregator
	JWTSecret   string
	MaxUploadMB int
	Logger      zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Logger)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (protegido; la política interna limita el alta a admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)

	// Clientes (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Agenda de trabajos + notas (protegido)
	schedule := protected.Group("/schedule")
	jobHandler := NewJobHandler(deps.JobUC)
	schedule.Get("/", jobHandler.List)
	schedule.Get("/:id", jobHandler.Get)
	schedule.Put("/:id", jobHandler.Update)
	schedule.Delete("/:id", jobHandler.Delete)
	schedule.Get("/:id/notes", jobHandler.ListNotes)
	schedule.Post("/:id/notes", jobHandler.CreateNote)
	schedule.Put("/:id/notes/:noteId", jobHandler.UpdateNote)

	// Plantillas de presupuesto (protegido, solo-dueño)
	templates := protected.Group("/estimate-templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Post("/", templateHandler.Create)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.Get)
	templates.Put("/:id", templateHandler.Update)
	templates.Delete("/:id", templateHandler.Delete)

	// Fotos (protegido)
	photos := protected.Group("/photos")
	photoHandler := NewPhotoHandler(deps.PhotoUC, deps.MaxUploadMB)
	photos.Post("/", photoHandler.Upload)
	photos.Get("/", photoHandler.List)
	photos.Get("/:id", photoHandler.Get)
	photos.Get("/:id/file", photoHandler.Download)
	photos.Delete("/:id", photoHandler.Delete)

	// Tareas (protegido)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.Get)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Elementos guardados (protegido, solo-dueño)
	savedItems := protected.Group("/saved-items")
	savedItemHandler := NewSavedItemHandler(deps.SavedItemUC)
	savedItems.Post("/", savedItemHandler.Create)
	savedItems.Get("/", savedItemHandler.List)
	savedItems.Get("/:id", savedItemHandler.Get)
	savedItems.Put("/:id", savedItemHandler.Update)
	savedItems.Delete("/:id", savedItemHandler.Delete)

	// Feed de notificaciones (protegido, solo admin y gerente)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin, entity.RoleGerente))
	notificationHandler := NewNotificationHandler(deps.Aggregator)
	admin.Get("/notifications", notificationHandler.Feed)
}
