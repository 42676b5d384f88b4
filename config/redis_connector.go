package config

import (
	redis "gopkg.in/redis.v5"
)

// SetupRedis connects to redis at the given address and verifies the
// connection with a ping.
func SetupRedis(redisURL string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, err
	}

	return client, nil
}
