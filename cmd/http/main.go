package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/config"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/controllers"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/middlewares"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/routers"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/drivers/database"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/drivers/logger"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/services/core/bookings"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/services/core/doctors"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/services/core/payments"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/services/core/services"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/services/core/users"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/services/shared/paymentgateway"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	addr := internalConfig.App.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}
	server := &http.Server{
		Addr:    addr,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: " + err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: " + err.Error())
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error while releasing resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories
	serviceMongoRepository := services.NewServiceMongoRepository(bootstrap.MongoDB, dbName)
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	paymentMongoRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)

	// Shared services
	stripeService := paymentgateway.NewStripeService(bootstrap.InternalConfig)

	// Usecases
	serviceUsecase := services.NewServiceUsecase(serviceMongoRepository, bookingMongoRepository)
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository, paymentMongoRepository)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.InternalConfig)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository)
	paymentUsecase := payments.NewPaymentUsecase(stripeService)

	// Controllers
	serviceController := controllers.NewServiceController(bootstrap.Logger, serviceUsecase)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		serviceController,
		bookingController,
		userController,
		doctorController,
		paymentController,
	)
}
