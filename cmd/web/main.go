package main

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/adaptiv-labs/adaptiv/internal/config"
	"github.com/adaptiv-labs/adaptiv/internal/database"
	"github.com/adaptiv-labs/adaptiv/internal/fulfillment"
	"github.com/adaptiv-labs/adaptiv/internal/handler"
	"github.com/adaptiv-labs/adaptiv/internal/mail"
	"github.com/adaptiv-labs/adaptiv/internal/payments"
)

func main() {
	// .env is optional outside local development; the environment itself
	// is authoritative.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := config.Load()

	smtpPort, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		sugar.Fatalw("invalid SMTP_PORT", "value", cfg.SMTPPort)
	}
	mailer := mail.NewMailer(cfg.SMTPHost, smtpPort, cfg.EmailUser, cfg.EmailPassword, cfg.ManufacturingEmail)
	stripeClient := payments.New(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	// The durable fulfillment queue is optional: without a database the
	// webhook falls back to synchronous best-effort email dispatch.
	var queue *fulfillment.Queue
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			sugar.Fatalw("database connection failed", "error", err)
		}
		queue = fulfillment.NewQueue(db)

		worker := fulfillment.NewWorker(queue, mailer, sugar)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go worker.Run(ctx)
		sugar.Infow("fulfillment worker started")
	} else {
		sugar.Warnw("DATABASE_URL not set, webhook falls back to synchronous email dispatch")
	}

	checkout := &handler.CheckoutHandler{Payments: stripeClient, Cfg: cfg, Log: sugar}
	webhook := &handler.WebhookHandler{Payments: stripeClient, Mailer: mailer, Queue: queue, Log: sugar}
	email := &handler.EmailHandler{Mailer: mailer, Cfg: cfg, Log: sugar}
	recovery := &handler.RecoveryHandler{Payments: stripeClient, Mailer: mailer, Log: sugar}
	contact := &handler.ContactHandler{Mailer: mailer, Log: sugar}
	formulas := &handler.FormulaHandler{}

	router := gin.Default()
	router.LoadHTMLGlob("internal/view/templates/*")

	api := router.Group("/api")
	{
		api.POST("/checkout-session", checkout.CreateSession)
		api.POST("/webhooks/stripe", webhook.HandleEvent)
		api.POST("/send-email", email.SendOrderEmails)
		api.GET("/test-email", email.SendTestEmail)
		api.POST("/recover-order", recovery.RecoverOrder)
		api.POST("/contact", contact.SubmitMessage)
		api.POST("/formula", formulas.AdjustFormula)
		api.GET("/blends", formulas.ListBlends)
		api.GET("/templates/start-from-scratch", formulas.ScratchTemplate)
	}

	router.GET("/admin/recover-order", handler.ShowRecoveryPage)

	sugar.Infow("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
