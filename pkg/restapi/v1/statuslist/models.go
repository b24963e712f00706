/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

// CreateDefinitionData is the request body of CreateDefinition.
type CreateDefinitionData struct {
	StatusPurpose  string            `json:"statusPurpose"`
	StatusSize     int               `json:"statusSize,omitempty"`
	StatusMessages map[string]string `json:"statusMessages,omitempty"`
	ShardCapacity  int               `json:"shardCapacity,omitempty"`
}

// UpdateDefinitionData is the request body of UpdateDefinition. It carries
// the mutable attributes of a definition only.
type UpdateDefinitionData struct {
	StatusMessages map[string]string `json:"statusMessages,omitempty"`
	ShardCapacity  int               `json:"shardCapacity,omitempty"`
}

// AllocateEntryData is the request body of AllocateEntry.
type AllocateEntryData struct {
	DefinitionID string `json:"definitionId"`
}

// UpdateEntryStatusData is the request body of UpdateEntryStatus.
type UpdateEntryStatusData struct {
	Status int `json:"status"`
}

// PublishStatusListsData is the request body of PublishStatusLists.
type PublishStatusListsData struct {
	DefinitionID string `json:"definitionId"`
	IssuerDID    string `json:"issuerDid"`
	Format       string `json:"format"`
	PublishURI   string `json:"publishUri,omitempty"`
}
