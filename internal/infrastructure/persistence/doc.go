// Package persistence provides the database side of the key registry.
// It uses GORM as the ORM layer on SQLite or PostgreSQL and stores key metadata only:
// key record paths, modulus sizes and public exponents. Private exponents stay in their records.
package persistence
