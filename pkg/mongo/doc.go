// Package mongo provides MongoDB connection helpers built on
// go.mongodb.org/mongo-driver/v2.
//
// New connects and pings with retries driven by Config, NewWithDatabase
// returns the configured database, and Healthcheck wraps Ping for readiness
// probes. secretsource.Mongo reads signing secrets from a collection of
// {name, value} documents in that database.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src, err := secretsource.NewMongo(db.Collection("token_secrets"), "signing")
package mongo
