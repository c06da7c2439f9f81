// Package store holds the schema shared by the per-family store packages.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the reference DDL for the three family tables. Length bounds,
// not-null constraints and uniqueness mirror the domain validation contract:
// the database enforces at rest what the constructors enforce at build time.
// Division and urban rows carry their kind as a discriminator column, so one
// table holds every variant of a family.
const Schema = `
CREATE TABLE IF NOT EXISTS countries (
	id           integer PRIMARY KEY,
	iso          varchar(2) NOT NULL UNIQUE,
	calling_code integer NOT NULL CHECK (calling_code > 0),
	name         varchar(100) NOT NULL,
	native       varchar(100) NOT NULL,
	population   bigint NOT NULL CHECK (population >= 0)
);

CREATE TABLE IF NOT EXISTS divisions (
	id         integer PRIMARY KEY,
	country_id integer NOT NULL REFERENCES countries (id),
	kind       varchar(32) NOT NULL,
	iso        varchar(5) NOT NULL,
	name       varchar(100) NOT NULL,
	native     varchar(100) NOT NULL,
	population bigint NOT NULL CHECK (population >= 0),
	UNIQUE (country_id, iso)
);

CREATE TABLE IF NOT EXISTS urbans (
	id          integer PRIMARY KEY,
	division_id integer NOT NULL REFERENCES divisions (id),
	kind        varchar(32) NOT NULL,
	iso         varchar(5) NOT NULL,
	name        varchar(100) NOT NULL,
	native      varchar(100) NOT NULL
);
`

// EnsureSchema creates the family tables when they do not exist yet. It is
// idempotent; there is deliberately no migration machinery beyond it.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
