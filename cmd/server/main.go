package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rushabh0311/LeadGenPro/ai"
	"github.com/rushabh0311/LeadGenPro/ai/openai"
	"github.com/rushabh0311/LeadGenPro/api"
	"github.com/rushabh0311/LeadGenPro/mailer"
	"github.com/rushabh0311/LeadGenPro/search"
	"github.com/rushabh0311/LeadGenPro/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env")

	// ---- Startup phase: everything below is built once and read-only ----

	csvPath := os.Getenv("LEADS_CSV")
	if csvPath == "" {
		csvPath = "./data/mock_startup_leads.csv"
	}

	leadStore, err := store.LoadCSV(csvPath)
	if err != nil {
		log.Fatalf("Failed to load leads dataset: %v", err)
	}
	log.Printf("Loaded %d leads from %s", leadStore.Len(), csvPath)

	embedCfg := ai.DefaultConfig()
	if host := os.Getenv("EMBEDDING_HOST"); host != "" {
		embedCfg.Host = host
	}
	if model := os.Getenv("EMBEDDING_MODEL"); model != "" {
		embedCfg.Model = model
	}

	embedder, err := openai.NewEmbedder(embedCfg)
	if err != nil {
		log.Fatalf("Failed to configure embedding backend: %v", err)
	}

	index, err := search.BuildIndex(context.Background(), embedder, leadStore.Contexts())
	if err != nil {
		log.Fatalf("Failed to build embedding index (is %s reachable?): %v", embedCfg.Host, err)
	}

	queryRouter, err := search.NewRouter(leadStore, index)
	if err != nil {
		log.Fatalf("Failed to create query router: %v", err)
	}

	smtpPort := 0
	if p := os.Getenv("SMTP_PORT"); p != "" {
		smtpPort, err = strconv.Atoi(p)
		if err != nil {
			log.Fatalf("Invalid SMTP_PORT %q: %v", p, err)
		}
	}
	relay := mailer.NewSMTPMailer(os.Getenv("SMTP_HOST"), smtpPort)
	dispatcher := mailer.NewDispatcher(leadStore, relay)

	// ---- HTTP surface ----

	r := gin.Default()

	// CORS Setup for the dashboard UI
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	srv := api.NewServer(leadStore, queryRouter, dispatcher)
	srv.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8765"
	}

	log.Printf("Starting LeadGen Pro backend on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
