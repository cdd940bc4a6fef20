package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/wealthdesk/advisor-agent/internal/agent"
	"github.com/wealthdesk/advisor-agent/internal/config"
	"github.com/wealthdesk/advisor-agent/internal/httpapi"
	"github.com/wealthdesk/advisor-agent/internal/llm"
	"github.com/wealthdesk/advisor-agent/internal/mail"
	"github.com/wealthdesk/advisor-agent/internal/session"
	"github.com/wealthdesk/advisor-agent/internal/tools"
	"github.com/wealthdesk/advisor-agent/pkg/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}
	log.InitLogger(log.ParseLevel(cfg.Server.LogLevel))

	client, err := llm.NewClient(&cfg.LLM)
	if err != nil {
		log.Fatal("Failed to create LLM client: %v", err)
	}

	sender := mail.NewSender(cfg.Mail)
	if cfg.Mail.AuditLog != "" {
		audit, err := log.NewFileLogger(cfg.Mail.AuditLog, log.LevelInfo)
		if err != nil {
			log.Fatal("Failed to open mail audit log: %v", err)
		}
		defer audit.Close()
		sender.SetAuditLog(audit.Logger)
	}

	sessions := session.NewStore()

	registry := tools.NewRegistry()
	for _, tool := range []tools.Tool{
		tools.NewClientLookupTool(),
		tools.NewFundLookupTool(),
		tools.NewDraftEmailTool(),
		tools.NewConfirmSendEmailTool(sender),
		tools.NewWeatherTool(),
	} {
		if err := registry.Register(tool); err != nil {
			log.Fatal("Failed to register tool: %v", err)
		}
	}
	log.Info("Registered tools: %v", registry.List())

	advisor := agent.NewAdvisor(client, registry, sessions, cfg.Agent.MaxIterations)

	// Sweep idle sessions on a schedule.
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.Session.SweepCron, func() {
		sessions.PruneExpired(ttl)
	}); err != nil {
		log.Fatal("Invalid SESSION_SWEEP_CRON: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	server := httpapi.NewServer(advisor, httpapi.WithUI(cfg.Server.UIStaticDir, cfg.Server.UIEnabled))

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening on %s", cfg.Server.Addr)
		errCh <- server.ListenAndServe(cfg.Server.Addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal("Server error: %v", err)
	case sig := <-sigCh:
		log.Info("Received %v, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
}
