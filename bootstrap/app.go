package bootstrap

import (
	"github.com/catalogo-app/recommendation-backend/mongo"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

func App() Application {
	app := Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)

	if app.Env.AppEnv == "development" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	mongo.CreateIndexes(app.Mongo.Database(app.Env.DBName))
	return app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
