package cache

import (
	redis "gopkg.in/redis.v5"
)

// RedisRequestCacher stores the last MaxNumber entries per key in a redis
// list, newest first.
type RedisRequestCacher struct {
	Client    *redis.Client
	MaxNumber int
}

func NewRedisRequestCacher(client *redis.Client, maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{Client: client, MaxNumber: maxNumber}
}

func (c *RedisRequestCacher) Write(key string, value []byte) error {
	pushCmd := c.Client.LPush(key, value)
	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := c.Client.LTrim(key, 0, int64(c.MaxNumber-1))
	if trimCmd.Err() != nil {
		return trimCmd.Err()
	}

	return nil
}

func (c *RedisRequestCacher) Read(key string) ([]string, error) {
	return c.Client.LRange(key, 0, int64(c.MaxNumber-1)).Result()
}
