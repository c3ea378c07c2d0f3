// Package redis connects to Redis with go-redis and exposes a readiness check.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	checks["redis"] = redis.Healthcheck(client)
//
// Config is populated from REDIS_* environment variables. Connect retries
// the initial ping RetryAttempts times, waiting RetryInterval between tries,
// and gives up early when ctx or ConnectTimeout expires.
package redis
