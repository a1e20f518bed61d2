package sqlite

import (
	"context"
	"database/sql"
)

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: users and members must be created before the tables that
// reference them. Foreign keys cascade deletes uniformly:
//   - deleting a member removes its couples, its parent-child row as a child
//     and its family memberships
//   - deleting a couple removes its parent-child rows
//   - deleting a family removes its memberships
//
// The unique indexes on couples.husband_id, couples.wife_id and
// parent_child.child_id enforce monogamy and single parentage even when two
// writers race past application-level validation.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    name TEXT NOT NULL CHECK (name <> ''),
    gender INTEGER NOT NULL CHECK (gender IN (0, 1)),
    age INTEGER NOT NULL CHECK (age >= 0),
    date_of_birth TEXT,
    date_of_death TEXT,
    blood_group TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS couples (
    id TEXT PRIMARY KEY,
    husband_id TEXT NOT NULL UNIQUE,
    wife_id TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (husband_id) REFERENCES members(id) ON DELETE CASCADE,
    FOREIGN KEY (wife_id) REFERENCES members(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS parent_child (
    couple_id TEXT NOT NULL,
    child_id TEXT NOT NULL UNIQUE,
    PRIMARY KEY (couple_id, child_id),
    FOREIGN KEY (couple_id) REFERENCES couples(id) ON DELETE CASCADE,
    FOREIGN KEY (child_id) REFERENCES members(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS families (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    name TEXT NOT NULL CHECK (name <> ''),
    created_at INTEGER NOT NULL,
    UNIQUE (owner_id, name)
);

CREATE TABLE IF NOT EXISTS family_members (
    family_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    PRIMARY KEY (family_id, member_id),
    FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE,
    FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_members_owner_id ON members(owner_id);
CREATE INDEX IF NOT EXISTS idx_families_owner_id ON families(owner_id);
CREATE INDEX IF NOT EXISTS idx_family_members_member_id ON family_members(member_id);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
