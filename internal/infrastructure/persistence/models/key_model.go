package models

import (
	"time"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/keys"
)

// KeyModel is the GORM database model for key records (infrastructure concern)
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Type            string    `gorm:"type:varchar(20)"`
	ModulusDigits   int       `gorm:"type:integer"`
	Exponent        string    `gorm:"type:varchar(64)"`
	FilePath        string    `gorm:"not null;type:varchar(1024)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyModel) TableName() string {
	return "rsa_keys"
}

// ToDomain converts GORM model to domain entity
func (m *KeyModel) ToDomain() *keys.KeyMeta {
	return &keys.KeyMeta{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		Type:            m.Type,
		ModulusDigits:   m.ModulusDigits,
		Exponent:        m.Exponent,
		FilePath:        m.FilePath,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyModel) FromDomain(k *keys.KeyMeta) {
	m.ID = k.ID
	m.KeyPairID = k.KeyPairID
	m.Type = k.Type
	m.ModulusDigits = k.ModulusDigits
	m.Exponent = k.Exponent
	m.FilePath = k.FilePath
	m.DateTimeCreated = k.DateTimeCreated
}
