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
	log "github.com/sirupsen/logrus"

	"hiring-hare-backend/config"
	apiv1 "hiring-hare-backend/controllers/v1"
	"hiring-hare-backend/controllers/v1/dict"
	"hiring-hare-backend/fiberlog"
	"hiring-hare-backend/initializers"
	"hiring-hare-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthPublicApiRouters(apiV1)
	apiv1.InitPublicApiRouters(apiV1)

	// everything below requires an access token, a resolved actor and
	// passes the route permission table
	apiV1.Use(middleware.AuthorizationRequired())
	apiV1.Use(middleware.AccessTokenRequired())
	apiV1.Use(middleware.ActorLoader())
	apiV1.Use(middleware.RbacMiddleware())

	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitRequirementApiRouters(apiV1)
	apiv1.InitApprovalsApiRouters(apiV1)
	apiv1.InitPostingApiRouters(apiV1)
	apiv1.InitCandidateApiRouters(apiV1)
	apiv1.InitUsersApiRouters(apiV1)
	dict.InitDictApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
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
