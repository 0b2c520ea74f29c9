package store

import "github.com/MKhiriev/go-user-records/internal/logger"

// Storages groups the repositories built on one connection pool.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}
}
