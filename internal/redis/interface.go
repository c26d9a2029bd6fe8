package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. It is
// satisfied by *redis.Client, cluster clients and redismock clients.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
var Nil = redis.Nil
