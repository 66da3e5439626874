// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package store

// Storages aggregates all repository implementations handed to the service
// layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires repositories over the shared database handle.
func NewStorages(db *DB) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, db.logger),
	}
}
