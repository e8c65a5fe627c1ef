package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"message": "Resume portfolio generator is running",
		})
	})

	// Resume extraction pipeline
	mux.HandleFunc("POST /resume", a.ResumeHandler)

	// Website generation, editing, and delivery
	mux.HandleFunc("POST /generate-website", a.GenerateWebsiteHandler)
	mux.HandleFunc("POST /modify-component", a.ModifyComponentHandler)
	mux.HandleFunc("GET /preview/{website_id}", a.PreviewHandler)
	mux.HandleFunc("GET /download/{website_id}", a.DownloadHandler)

	return mux
}
