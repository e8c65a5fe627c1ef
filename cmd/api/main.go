package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "resume-portfolio/docs" // Swagger docs
	"resume-portfolio/internal/api"
	"resume-portfolio/internal/config"
	"resume-portfolio/internal/llm"
	"resume-portfolio/internal/resume"
	"resume-portfolio/internal/site"
)

// @title Resume Portfolio Generator API
// @version 1.0
// @description Turns an uploaded PDF resume into an editable, downloadable portfolio website.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func main() {
	cfg := config.Load()

	parser := resume.NewParser(cfg.UploadsDir)

	var extractor api.Extractor
	if cfg.GroqAPIKey != "" {
		extractor = llm.NewService(cfg.GroqAPIKey, cfg.GroqModel)
	}

	var editor api.Editor
	if cfg.GeminiAPIKey != "" {
		ed, err := llm.NewEditor(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Warning: failed to initialize Gemini editor: %v", err)
		} else {
			editor = ed
		}
	}

	generator, err := site.NewGenerator(cfg.SitesDir)
	if err != nil {
		log.Fatal("site generator:", err)
	}

	apiSrv := api.NewAPI(parser, extractor, editor, generator)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,  // file uploads
		WriteTimeout: 3 * time.Minute,   // extraction model call + response
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
