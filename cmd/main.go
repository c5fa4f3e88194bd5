package main

import (
	"time"

	"github.com/catalogo-app/recommendation-backend/api/route"
	"github.com/catalogo-app/recommendation-backend/bootstrap"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	timeout := time.Duration(env.ContextTimeout) * time.Second

	router := gin.Default()
	route.Setup(env, timeout, db, router)

	logrus.Infof("listening on %s", env.ServerAddress)
	if err := router.Run(env.ServerAddress); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
