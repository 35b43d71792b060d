package configs

import "strings"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Storage selects the campaign store. Memory keeps everything in process
// and is lost on restart.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// Seed loads demo campaigns on startup when the store is empty.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Kind normalises Driver. Unknown drivers fall back to postgres.
func (c Storage) Kind() string {
	if strings.EqualFold(strings.TrimSpace(c.Driver), StorageMemory) {
		return StorageMemory
	}
	return StoragePostgres
}
