package store

import (
	"context"
	"database/sql"
)

// GetTranslation looks up a cached Spanish translation. Returns ("", nil)
// on a cache miss.
func (s *Store) GetTranslation(ctx context.Context, english string) (string, error) {
	var spanish string
	err := s.db.GetContext(ctx, &spanish,
		"SELECT es FROM translations WHERE en = $1", english)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return spanish, nil
}

// SaveTranslation persists a translation fetched from the external API.
// Re-saving the same word is a no-op.
func (s *Store) SaveTranslation(ctx context.Context, english, spanish string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO translations (en, es) VALUES ($1, $2) ON CONFLICT (en) DO NOTHING",
		english, spanish)
	return err
}
