/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"context"
	"sync"

	"github.com/go-redsync/redsync/v4"
)

// Lock guards a critical section. The surface matches the redsync mutex so
// distributed and process-local locks are interchangeable.
type Lock interface {
	LockContext(ctx context.Context) error
	UnlockContext(ctx context.Context) (bool, error)
	Unlock() (bool, error)
}

// Locker hands out named locks.
type Locker interface {
	NewMutex(key string, opts ...redsync.Option) Lock
}

// KeyedMutexLocker is a process-local Locker. It is suitable for
// single-instance deployments and tests only: the locks it hands out are not
// visible to other processes.
type KeyedMutexLocker struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

// NewKeyedMutex creates a new process-local locker.
func NewKeyedMutex() *KeyedMutexLocker {
	return &KeyedMutexLocker{
		mutexes: make(map[string]*sync.Mutex),
	}
}

// NewMutex returns the mutex for the given key, creating it on first use.
func (k *KeyedMutexLocker) NewMutex(key string, _ ...redsync.Option) Lock {
	k.mu.Lock()
	if _, ok := k.mutexes[key]; !ok {
		k.mutexes[key] = &sync.Mutex{}
	}
	mu := k.mutexes[key]
	k.mu.Unlock()

	return &KeyedMutex{
		Mut: mu,
	}
}

// KeyedMutex adapts sync.Mutex to the Lock interface.
type KeyedMutex struct {
	Mut *sync.Mutex
}

// LockContext locks the mutex.
func (k *KeyedMutex) LockContext(_ context.Context) error {
	k.Mut.Lock()
	return nil
}

// UnlockContext unlocks the mutex.
func (k *KeyedMutex) UnlockContext(_ context.Context) (bool, error) {
	return k.Unlock()
}

// Unlock unlocks the mutex.
func (k *KeyedMutex) Unlock() (bool, error) {
	k.Mut.Unlock()

	return true, nil
}
