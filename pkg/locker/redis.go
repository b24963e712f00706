/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	redisapi "github.com/redis/go-redis/v9"
)

// RedisLocker is a distributed Locker backed by Redis. Locks it hands out
// are held across all service instances sharing the Redis deployment.
type RedisLocker struct {
	rs   *redsync.Redsync
	opts []redsync.Option
}

// NewRedisLocker creates a distributed locker on the given Redis client. The
// given options apply to every mutex it hands out.
func NewRedisLocker(client redisapi.UniversalClient, opts ...redsync.Option) *RedisLocker {
	return &RedisLocker{
		rs:   redsync.New(goredis.NewPool(client)),
		opts: opts,
	}
}

// NewMutex returns a distributed mutex for the given key.
func (r *RedisLocker) NewMutex(key string, opts ...redsync.Option) Lock {
	return r.rs.NewMutex(key, append(r.opts, opts...)...)
}
