package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
)

// insertRaw writes a row without the uniqueness checks so the UNIQUE
// indexes are what reject duplicates.
func insertRaw(ctx context.Context, s *Store, name, clientID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO api_access (client_name, api_client_id, enabled, description) VALUES (?, ?, 1, '')`,
		name, clientID,
	)
	return err
}

func TestMapConstraint_UniqueIndexes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := New(filepath.Join(t.TempDir(), "apiaccess.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, insertRaw(ctx, s, "Shop A", "shopA-1"))

	tests := []struct {
		name     string
		client   string
		clientID string
		want     apiaccess.Code
	}{
		{name: "client name index", client: "Shop A", clientID: "shopA-2", want: apiaccess.ClientNameAlreadyUsed},
		{name: "api client id index", client: "Shop B", clientID: "shopA-1", want: apiaccess.ClientIDAlreadyUsed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapConstraint(insertRaw(ctx, s, tt.client, tt.clientID))

			var cerr *apiaccess.ConstraintError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.want, cerr.Code)
		})
	}
}

func TestMapConstraint_PassesThroughOtherErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	// NOT NULL violations share the constraint class but not the UNIQUE code.
	_, notNull := s.db.ExecContext(ctx, `INSERT INTO api_access (client_name, api_client_id) VALUES (NULL, 'x')`)
	require.Error(t, notNull)
	assert.Equal(t, notNull, mapConstraint(notNull))

	plain := errors.New("UNIQUE constraint failed: api_access.client_name")
	assert.Equal(t, plain, mapConstraint(plain))
}
