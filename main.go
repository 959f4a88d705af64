package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"crm-assistant/dao"
	"crm-assistant/internal/llmclient"
	"crm-assistant/route"
	"crm-assistant/service"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	intentCfg, err := service.LoadIntentConfig(envOr("INTENT_CONFIG", "config/intents.yaml"))
	if err != nil {
		logger.Warn("intent config not loaded, using built-in defaults", zap.Error(err))
		intentCfg = service.DefaultIntentConfig()
	}
	logger.Info("intent rules loaded", zap.Int("rules", len(intentCfg.Rules)))

	classifier := service.NewClassifier(intentCfg)
	llm := llmclient.NewClient(envOr("LLM_BASE_URL", "http://127.0.0.1:8000"), os.Getenv("LLM_API_KEY"))

	var store service.SessionStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		store = dao.NewRedisStore(addr, os.Getenv("REDIS_PASSWORD"), 0, 24*time.Hour)
		logger.Info("using redis session store", zap.String("addr", addr))
	} else {
		store = dao.NewMemoryStore()
		logger.Info("REDIS_ADDR not set, using in-memory session store")
	}

	chatSvc := service.NewChatService(llm, store, classifier, logger)

	r := gin.Default()
	route.Register(r, chatSvc, classifier)

	addr := envOr("LISTEN_ADDR", ":8080")
	logger.Info("listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
