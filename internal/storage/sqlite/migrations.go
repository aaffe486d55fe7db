package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: cards must be created BEFORE menu_items and selections due to
// foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_by TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS menu_items (
    id TEXT NOT NULL,
    card_id TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    price REAL NOT NULL DEFAULT 0,
    image_url TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (card_id, id),
    FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS selections (
    card_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (card_id, user_id),
    FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS selection_items (
    card_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    menu_item_id TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    PRIMARY KEY (card_id, user_id, menu_item_id),
    FOREIGN KEY (card_id, user_id) REFERENCES selections(card_id, user_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_menu_items_card_id ON menu_items(card_id);
CREATE INDEX IF NOT EXISTS idx_selection_items_card_user ON selection_items(card_id, user_id);
CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
