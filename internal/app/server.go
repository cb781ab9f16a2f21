// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"caseflow-service/internal/config"
	authHandler "caseflow-service/internal/handlers/auth"
	caseHandler "caseflow-service/internal/handlers/cases"
	customerHandler "caseflow-service/internal/handlers/customer"
	quickcaseHandler "caseflow-service/internal/handlers/quickcase"
	reminderHandler "caseflow-service/internal/handlers/reminder"
	settingsHandler "caseflow-service/internal/handlers/settings"
	wsHandler "caseflow-service/internal/handlers/wsh"
	"caseflow-service/internal/middleware"
	"caseflow-service/internal/service/appsettings"
	"caseflow-service/internal/service/audit"
	authService "caseflow-service/internal/service/auth"
	caseService "caseflow-service/internal/service/cases"
	customerService "caseflow-service/internal/service/customers"
	"caseflow-service/internal/service/email"
	"caseflow-service/internal/service/notify"
	quickcaseService "caseflow-service/internal/service/quickcase"
	reminderService "caseflow-service/internal/service/reminders"
	"caseflow-service/internal/service/sms"
	"caseflow-service/internal/service/sweeper"
	"caseflow-service/internal/store"
	"caseflow-service/internal/store/selector"
	"caseflow-service/internal/store/surreal"
	"caseflow-service/internal/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server
	store  store.Store
	cancel context.CancelFunc
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	s.logger = logger

	// ----- Entity store (chosen once, frozen for the process) -----
	st, err := selector.Select(ctx, selector.Options{
		Surreal: surreal.Config{
			URL:       s.cfg.SurrealURL,
			Namespace: s.cfg.SurrealNamespace,
			Database:  s.cfg.SurrealDatabase,
			Username:  s.cfg.SurrealUser,
			Password:  s.cfg.SurrealPass,
		},
		ProbeTimeout:  s.cfg.StoreProbe,
		AdminUsername: s.cfg.SuperAdminUsername,
		AdminEmail:    s.cfg.SuperAdminEmail,
		AdminPassword: s.cfg.SuperAdminPassword,
		AdminName:     s.cfg.SuperAdminName,
	}, logger)
	if err != nil {
		return fmt.Errorf("select entity store: %w", err)
	}
	s.store = st

	// ----- Outbound channels -----
	emailSender := email.NewSender(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUser,
		s.cfg.SMTPPass,
		s.cfg.SMTPFromName,
		s.cfg.SMTPSecure,
	)
	smsSender := sms.NewSender(s.cfg.SMSAccountID, s.cfg.SMSToken, s.cfg.SMSFrom, s.cfg.SMSBaseURL)

	// ----- WebSocket hub -----
	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	// ----- Services -----
	ledger := audit.NewLedger(st.History(), logger)
	settingsSvc := appsettings.NewService(st.Settings(), logger)
	notifier := notify.NewDispatcher(settingsSvc, emailSender, smsSender, s.cfg.CompanyName, logger)
	caseSvc := caseService.NewService(st.Cases(), st.Customers(), ledger, notifier, logger)
	customerSvc := customerService.NewService(st.Customers(), st.Cases(), ledger, logger)
	quickcaseSvc := quickcaseService.NewService(st.QuickCases(), customerSvc, caseSvc, logger)
	reminderSvc := reminderService.NewService(st.Reminders(), st.Admins(), settingsSvc, hub, logger)
	authSvc := authService.NewService(st.Admins(), s.cfg.JWTSecret, logger)

	// ----- Background sweeps -----
	sw := sweeper.New(settingsSvc, caseSvc, st.Cases(), st.Customers(), hub, logger, s.cfg.SweepInterval, s.cfg.ScanInterval)
	go sw.Run(ctx)

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:      authHandler.NewAuthHandler(authSvc),
		CustomerHandler:  customerHandler.NewCustomerHandler(customerSvc, ledger),
		CaseHandler:      caseHandler.NewCaseHandler(caseSvc, ledger),
		QuickCaseHandler: quickcaseHandler.NewQuickCaseHandler(quickcaseSvc),
		ReminderHandler:  reminderHandler.NewReminderHandler(reminderSvc),
		SettingsHandler:  settingsHandler.NewSettingsHandler(settingsSvc),
		WSHandler:        wsHandler.NewWSHandler(hub, logger),
		AuthMiddleware:   middleware.NewAuthMiddleware(authSvc),
	}

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)
	SetupRouter(s.engine, st, handlers)

	s.http = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP listener, the hub and the sweeper.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.logger != nil {
		defer s.logger.Sync()
	}
	if s.http != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	if s.store != nil {
		return s.store.Close(ctx)
	}
	return nil
}
