package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/ai-tailor/internal/client"
	"alfredoptarigan/ai-tailor/internal/config"
	"alfredoptarigan/ai-tailor/internal/handlers"
	"alfredoptarigan/ai-tailor/internal/server"
	"alfredoptarigan/ai-tailor/internal/services"
	"alfredoptarigan/ai-tailor/internal/views"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	log.Printf("✅ Config loaded successfully (%s)\n", cfg.Server.Env)

	apiClient := client.New(cfg.ResolveAPIBaseURL())
	log.Printf("✅ API client targets %s\n", apiClient.BaseURL())

	app := server.NewApp("AI Tailor", views.NewEngine())
	server.MountForm(app, handlers.NewFormHandler(apiClient))

	// A relative API base means the analyzer is served by this process.
	if cfg.IsRelativeAPI() {
		llm, err := services.NewLLMService(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("❌ Failed to initialize %s LLM: %v", cfg.LLM.Provider, err)
		}
		analyzer := services.NewAnalyzerService(llm, cfg.LLM.EnabledByDefault, cfg.LLM.Timeout)
		server.MountAnalyzer(app.Group(cfg.APIPrefix()), handlers.NewAnalyzeHandler(analyzer), "")
		log.Printf("✅ Analyzer mounted at %s\n", cfg.APIPrefix())
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Web form starting on http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
