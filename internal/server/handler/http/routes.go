package http

import (
	"net/http"

	"github.com/yisusboy23/servidor/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// photo-sharing API and the uploaded images.
//
// Routes:
//
//	GET    /api/usuarios        → userHandler.List
//	POST   /api/usuarios        → userHandler.Register
//	POST   /api/login           → userHandler.Login
//	GET    /api/publicaciones   → postHandler.List
//	POST   /api/upload          → postHandler.Upload (multipart)
//	DELETE /api/publicaciones   → postHandler.Delete
//	GET    /api/likes/{username}→ likeHandler.ListFor
//	POST   /api/likes           → likeHandler.Add
//	DELETE /api/likes           → likeHandler.Remove
//	GET    /api/data            → dataHandler.Snapshot
//	GET    /health              → liveness probe
//	GET    /uploads/*           → static files from uploadsDir
//
// All /api routes except /api/upload only accept JSON bodies.
func NewRouter(
	userHandler *UserHandler,
	postHandler *PostHandler,
	likeHandler *LikeHandler,
	dataHandler *DataHandler,
	logger *zap.Logger,
	uploadsDir string,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// The frontend is served from another origin
	r.Use(middleware.CORS)

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// JSON endpoints
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.AllowContentType("application/json"))

			r.Get("/usuarios", userHandler.List)
			r.Post("/usuarios", userHandler.Register)
			r.Post("/login", userHandler.Login)

			r.Get("/publicaciones", postHandler.List)
			r.Delete("/publicaciones", postHandler.Delete)

			r.Get("/likes/{username}", likeHandler.ListFor)
			r.Post("/likes", likeHandler.Add)
			r.Delete("/likes", likeHandler.Remove)

			r.Get("/data", dataHandler.Snapshot)
		})

		// Multipart image upload
		r.Post("/upload", postHandler.Upload)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondMessage(w, http.StatusOK, "ok")
	})

	// Uploaded images are served statically
	fileServer := http.FileServer(http.Dir(uploadsDir))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	return r
}
