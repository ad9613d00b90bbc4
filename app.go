package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type App struct {
	cfg      Config
	mongo    *mongo.Client
	db       *mongo.Database
	users    *mongo.Collection
	fields   *mongo.Collection
	analyses *mongo.Collection

	imagery *ImageryClient
	weather *WeatherClient
}

func newApp(ctx context.Context, cfg Config) (*App, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB)

	app := &App{
		cfg:      cfg,
		mongo:    client,
		db:       db,
		users:    db.Collection("users"),
		fields:   db.Collection("fields"),
		analyses: db.Collection("analyses"),
		imagery:  NewImageryClient(cfg.ImageryURI),
		weather:  NewWeatherClient(cfg.WeatherURI, cfg.WeatherAPIKey),
	}
	// Indexes
	if _, err := app.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, err
	}
	if _, err := app.fields.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	}); err != nil {
		return nil, err
	}
	// Analysis history is always read newest-first per field.
	if _, err := app.analyses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "fieldId", Value: 1}, {Key: "createdAt", Value: -1}},
	}); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) close(ctx context.Context) { _ = a.mongo.Disconnect(ctx) }
