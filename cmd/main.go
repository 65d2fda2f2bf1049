package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	companyColorHandler "github.com/tktkaws/booking-02/internal/api/handlers/company_color"
	deleteBookingHandler "github.com/tktkaws/booking-02/internal/api/handlers/delete_booking"
	deleteDepartmentHandler "github.com/tktkaws/booking-02/internal/api/handlers/delete_department"
	getBookingHandler "github.com/tktkaws/booking-02/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/tktkaws/booking-02/internal/api/handlers/get_calendar"
	getDayBookingsHandler "github.com/tktkaws/booking-02/internal/api/handlers/get_day_bookings"
	listBookingsHandler "github.com/tktkaws/booking-02/internal/api/handlers/list_bookings"
	listDepartmentsHandler "github.com/tktkaws/booking-02/internal/api/handlers/list_departments"
	saveBookingHandler "github.com/tktkaws/booking-02/internal/api/handlers/save_booking"
	saveDepartmentHandler "github.com/tktkaws/booking-02/internal/api/handlers/save_department"
	userColorsHandler "github.com/tktkaws/booking-02/internal/api/handlers/user_colors"
	"github.com/tktkaws/booking-02/internal/api/middleware"
	"github.com/tktkaws/booking-02/internal/config"
	"github.com/tktkaws/booking-02/internal/events"
	bookingRepo "github.com/tktkaws/booking-02/internal/infra/storage/booking"
	departmentRepo "github.com/tktkaws/booking-02/internal/infra/storage/department"
	settingsRepo "github.com/tktkaws/booking-02/internal/infra/storage/settings"
	directoryClient "github.com/tktkaws/booking-02/internal/integrations/directory"
	bookingsService "github.com/tktkaws/booking-02/internal/service/bookings"
	calendarviewService "github.com/tktkaws/booking-02/internal/service/calendarview"
	colorsService "github.com/tktkaws/booking-02/internal/service/colors"
	departmentsService "github.com/tktkaws/booking-02/internal/service/departments"
	saveBookingUC "github.com/tktkaws/booking-02/internal/usecase/save_booking"
	"github.com/tktkaws/booking-02/pkg/dbmetrics"
	"github.com/tktkaws/booking-02/pkg/logger"
	"github.com/tktkaws/booking-02/pkg/metrics"
	"github.com/tktkaws/booking-02/pkg/simpletxmanager"
	"github.com/tktkaws/booking-02/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking service...")

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to resolve calendar timezone: %v", err)
	}
	log.Info("Calendar timezone: %s", location)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)", cfg.Directory.URL, cfg.Directory.Timeout)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository    *bookingRepo.Repository
		departmentRepository *departmentRepo.Repository
		settingsRepository   *settingsRepo.Repository
		txMgr                TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		departmentRepository = departmentRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		departmentRepository = departmentRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	broadcaster := events.NewBroadcaster()

	// Log every mutation the way subscribed views would observe it.
	eventCh, cancelEvents := broadcaster.Subscribe()
	defer cancelEvents()
	go func() {
		for ev := range eventCh {
			log.Debug("Booking %s: booking_id=%d", ev.Kind, ev.BookingID)
		}
	}()

	colorsSvc := colorsService.NewService(settingsRepository, directory, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, directory, broadcaster, location, log)
	calendarSvc := calendarviewService.NewService(bookingRepository, colorsSvc, location, log)
	departmentsSvc := departmentsService.NewService(departmentRepository, directory, log)

	saveBookingUseCase := saveBookingUC.NewUseCase(
		bookingRepository,
		directory,
		txMgr,
		broadcaster,
		location,
		log,
	)

	saveBooking := saveBookingHandler.NewHandler(saveBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(calendarSvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingsSvc, log)
	companyColor := companyColorHandler.NewHandler(colorsSvc, log)
	userColors := userColorsHandler.NewHandler(colorsSvc, log)
	listDepartments := listDepartmentsHandler.NewHandler(departmentsSvc, log)
	saveDepartment := saveDepartmentHandler.NewHandler(departmentsSvc, log)
	deleteDepartment := deleteDepartmentHandler.NewHandler(departmentsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the calendar is readable without authentication. The
	// optional X-User-ID header only selects whose colors apply.
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}/bookings", getDayBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/departments", listDepartments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings/company-color", companyColor.HandleGet).Methods(http.MethodGet)

	// Protected routes: every mutation requires the gateway-injected user.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", saveBooking.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", saveBooking.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/settings/company-color", companyColor.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/settings/colors", userColors.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/settings/colors", userColors.HandleUpdate).Methods(http.MethodPut)

	protected.HandleFunc("/departments", saveDepartment.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/departments/{departmentId}", saveDepartment.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/departments/{departmentId}", deleteDepartment.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
