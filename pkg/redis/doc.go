// Package redis provides connection helpers around github.com/redis/go-redis/v9.
//
// Connect parses a redis:// URL, pings the server and retries according to
// Config. Healthcheck wraps Ping for readiness probes. The resulting client is
// what secretsource.Redis reads signing secrets from.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	src, err := secretsource.NewRedis(client, "token:secret")
package redis
