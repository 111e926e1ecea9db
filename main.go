package main

import (
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"crypto-pulse/api/router"
	"crypto-pulse/config"
	"crypto-pulse/logger"
	"crypto-pulse/sentiment"
	"crypto-pulse/session"
	"crypto-pulse/timeline"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	var provider timeline.Provider
	switch cfg.Timeline.Provider {
	case "rss":
		provider = timeline.NewRSSClient(cfg.Timeline.BaseURL)
	default:
		provider = timeline.NewAPIClient(cfg.Timeline.BaseURL, os.Getenv(cfg.Timeline.APIKeyEnv))
	}

	// The completion client is rebuilt per scoring call with the key the
	// user supplied for this session.
	newCompletion := func(apiKey string) sentiment.CompletionClient {
		if cfg.Completion.Provider == "gemini" {
			return sentiment.NewGeminiClient(apiKey, cfg.Completion.Model)
		}
		return sentiment.NewOpenAIClient(apiKey, cfg.Completion.Model)
	}

	st := session.New(provider, newCompletion)
	r := router.New(st)

	logger.Log.Infof("listening on %s (timeline=%s completion=%s)",
		cfg.Server.Addr, provider.Name(), cfg.Completion.Provider)

	handler := cors.Default().Handler(r)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
