package bootstrap

import (
	"context"
	"time"

	"github.com/catalogo-app/recommendation-backend/mongo"
	"github.com/sirupsen/logrus"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.DBUri)
	if err != nil {
		logrus.Fatalf("failed to create mongo client: %v", err)
	}
	if err := client.Connect(ctx); err != nil {
		logrus.Fatalf("failed to connect to mongo: %v", err)
	}
	if err := client.Ping(ctx); err != nil {
		logrus.Fatalf("failed to ping mongo: %v", err)
	}
	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logrus.Errorf("failed to close mongo connection: %v", err)
		return
	}
	logrus.Info("connection to mongodb closed")
}
