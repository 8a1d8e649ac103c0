package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS menu_items (
    name          TEXT PRIMARY KEY,
    price         REAL NOT NULL,
    shared        INTEGER NOT NULL DEFAULT 0,
    updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS regulars (
    name          TEXT PRIMARY KEY,
    tip_percent   REAL NOT NULL,
    updated_at    TEXT NOT NULL
);
`
