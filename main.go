package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"job-board-backend/config"
	apiv1 "job-board-backend/controllers/v1"
	"job-board-backend/fiberlog"
	"job-board-backend/initializers"
	"job-board-backend/lib/ws"
	"job-board-backend/middleware"
	"job-board-backend/models"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	bodyLimit := config.Conf.App.BodyLimitMb * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	if config.Conf.App.ErrNotifyAddr != "" {
		apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	}
	apiV1.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitVacancyApiRouters(apiV1)

	//websocket
	ws.InitWs(apiV1.Group("/ws"))

	//уведомления
	notification := fiber.New()
	apiV1.Mount("/notification", notification)
	notification.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
	apiv1.InitNotificationApiRouters(notification)

	//соискатель
	applicant := fiber.New()
	apiV1.Mount("/applicant", applicant)
	applicant.Use(middleware.AuthorizationRequired(), middleware.RoleRequired(models.ApplicantRole), middleware.RbacMiddleware())
	apiv1.InitApplicantApiRouters(applicant)

	//работодатель
	employer := fiber.New()
	apiV1.Mount("/employer", employer)
	employer.Use(middleware.AuthorizationRequired(), middleware.RoleRequired(models.EmployerRole), middleware.RbacMiddleware())
	apiv1.InitEmployerApiRouters(employer)

	//администратор
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AuthorizationRequired(), middleware.RoleRequired(models.AdminRole), middleware.RbacMiddleware())
	apiv1.InitAdminApiRouters(admin)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
