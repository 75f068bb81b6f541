package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveAppointmentHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/approve_appointment"
	assignSeatHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/assign_seat"
	cancelAppointmentHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/get_appointment"
	getSeatMapHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/get_seat_map"
	getWorkingHoursHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/get_working_hours"
	moveSeatHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/move_seat"
	releaseAppointmentHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/release_appointment"
	updateAppointmentHandler "github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers/update_appointment"
	"github.com/rk49trivedi/appsalozy-sub000/internal/api/middleware"
	"github.com/rk49trivedi/appsalozy-sub000/internal/config"
	appointmentServiceClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	branchServiceClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
	seatServiceClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/seatservice"
	appointmentsService "github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments"
	seatAssignService "github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign"
	seatMapService "github.com/rk49trivedi/appsalozy-sub000/internal/service/seatmap"
	approveAppointmentUC "github.com/rk49trivedi/appsalozy-sub000/internal/usecase/approve_appointment"
	createAppointmentUC "github.com/rk49trivedi/appsalozy-sub000/internal/usecase/create_appointment"
	updateAppointmentUC "github.com/rk49trivedi/appsalozy-sub000/internal/usecase/update_appointment"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/httpmetrics"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/logger"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting appointment admin service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	appointmentClient := appointmentServiceClient.NewClient(
		cfg.AppointmentService.URL,
		time.Duration(cfg.AppointmentService.Timeout)*time.Second,
		log,
	)
	seatClient := seatServiceClient.NewClient(
		cfg.SeatService.URL,
		time.Duration(cfg.SeatService.Timeout)*time.Second,
		log,
	)
	branchClient := branchServiceClient.NewClient(
		cfg.BranchService.URL,
		time.Duration(cfg.BranchService.Timeout)*time.Second,
		log,
	)

	// Оборачиваем исходящие запросы метриками
	if cfg.Metrics.Enabled {
		appointmentClient.SetTransport(httpmetrics.NewTransport(http.DefaultTransport, metricsCollector, "appointment_service"))
		seatClient.SetTransport(httpmetrics.NewTransport(http.DefaultTransport, metricsCollector, "seat_service"))
		branchClient.SetTransport(httpmetrics.NewTransport(http.DefaultTransport, metricsCollector, "branch_service"))
		log.Info("Remote request metrics collection started")
	}

	log.Info("Integration clients initialized (AppointmentService=%s, SeatService=%s, BranchService=%s)",
		cfg.AppointmentService.URL, cfg.SeatService.URL, cfg.BranchService.URL)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentClient, log)
	seatAssignSvc := seatAssignService.NewService(appointmentClient, seatClient, log)
	seatMapSvc := seatMapService.NewService(seatClient, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(appointmentClient, branchClient, log)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(appointmentClient, branchClient, log)
	approveAppointmentUseCase := approveAppointmentUC.NewUseCase(appointmentClient, seatClient, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	approveAppointment := approveAppointmentHandler.NewHandler(approveAppointmentUseCase, log)
	assignSeat := assignSeatHandler.NewHandler(seatAssignSvc, log)
	moveSeat := moveSeatHandler.NewHandler(seatAssignSvc, log)
	releaseAppointment := releaseAppointmentHandler.NewHandler(seatAssignSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getSeatMap := getSeatMapHandler.NewHandler(seatMapSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(branchClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все админские операции требуют X-Admin-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Жизненный цикл ---
	protected.HandleFunc("/appointments/{appointmentId}/approve", approveAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/assign-seat", assignSeat.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/move-seat", moveSeat.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/release", releaseAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// --- Зал и расписание ---
	protected.HandleFunc("/seat-map", getSeatMap.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
