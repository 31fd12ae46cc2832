package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/ai-tailor/internal/config"
	"alfredoptarigan/ai-tailor/internal/handlers"
	"alfredoptarigan/ai-tailor/internal/server"
	"alfredoptarigan/ai-tailor/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	log.Printf("✅ Config loaded successfully (%s)\n", cfg.Server.Env)

	ctx := context.Background()

	// Initialize LLM provider
	llm, err := services.NewLLMService(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s LLM: %v", cfg.LLM.Provider, err)
	}
	log.Printf("✅ LLM provider %s initialized (default on: %v)\n", cfg.LLM.Provider, cfg.LLM.EnabledByDefault)

	analyzer := services.NewAnalyzerService(llm, cfg.LLM.EnabledByDefault, cfg.LLM.Timeout)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer)
	log.Println("✅ Handlers initialized")

	app := server.NewApp("AI Tailor API", nil)
	server.MountAnalyzer(app, analyzeHandler, cfg.Analyzer.CORSOrigins)

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

	addr := fmt.Sprintf(":%s", cfg.Analyzer.Port)
	log.Printf("🚀 Analyzer starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
