package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "MedChat_PatientAssistant/docs"
	"MedChat_PatientAssistant/internal/config"
	"MedChat_PatientAssistant/internal/handler"
	"MedChat_PatientAssistant/internal/llm"
	"MedChat_PatientAssistant/internal/middleware"
	"MedChat_PatientAssistant/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// @title           MedChat API
// @version         1.0
// @description     Patient-facing medical chat backend: accounts, medical profiles and model-backed conversations.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("main(): Failed to load configuration: ", err)
	}

	store, err := storage.NewStore(cfg.DB.Path)
	if err != nil {
		log.Fatal("main(): Failed to open database: ", err)
	}
	defer store.Close()

	llmClient := llm.NewClient(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.MaxTokens)
	h := handler.New(store, llmClient)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// per-client rate limit on the completion-backed route
	chatLimiter := limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(time.Second), 10), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	})

	router.GET("/check-email", h.CheckEmail)
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.POST("/login/federated", h.FederatedLogin)
	router.POST("/chat", chatLimiter, h.Chat)

	router.GET("/user", h.GetUser)
	router.POST("/user/update", h.UpdateUser)
	router.POST("/user/update/password", h.UpdatePassword)
	router.DELETE("/user", h.DeleteUser)

	protected := router.Group("/api").Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", h.Profile)
	}

	router.GET("/ws/chat", h.HandleChatSession)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("MedChat backend listening on %s", cfg.Server.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
