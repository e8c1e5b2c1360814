package keys

import (
	"context"
)

// KeyRepository stores the metadata of generated key records
type KeyRepository interface {
	Create(ctx context.Context, key *KeyMeta) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}

// GeneratedKeyPair is the metadata of both records written for one key pair
type GeneratedKeyPair struct {
	KeyPairID string
	Public    *KeyMeta
	Private   *KeyMeta
}

// KeyService manages key pairs on disk together with their registry entries
type KeyService interface {
	// Generate creates a key pair, writes its records into keyDir and registers both.
	Generate(ctx context.Context, keyDir string) (*GeneratedKeyPair, error)

	// List returns registry entries matching query.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// Delete removes the records of a key pair and their registry entries.
	Delete(ctx context.Context, keyPairID string) error
}
