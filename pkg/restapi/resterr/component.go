/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	RegistrySvcComponent     Component = "statuslist.registry-service"
	ShardManagerComponent    Component = "statuslist.shard-manager"
	PublisherSvcComponent    Component = "statuslist.publisher-service"
	DefinitionStoreComponent Component = "definition-store"
	ShardStoreComponent      Component = "shard-store"
	SlotStoreComponent       Component = "slot-store"
	TokenSinkComponent       Component = "token-sink"
	JWTSignerComponent       Component = "jwt-signer"
	RedisComponent           Component = "redis-service"
)
