package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"figures/config"
	"figures/internal/domain/entity"
	"figures/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeSeedFile(t, `
profiles:
  - name: Ada Lovelace
    category: science
    fameLevel: famous
    era: 19th century
    achievements:
      - First published algorithm
      - Notes on the Analytical Engine
    createdAt: "2024-01-02T03:04:05Z"
  - name: Mary Anning
    category: science
    fameLevel: hidden
`)

	profiles, err := loadCatalog(path)

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Ada Lovelace", profiles[0].Name)
	assert.Equal(t, entity.FameLevelFamous, profiles[0].FameLevel)
	assert.Equal(t, []string{"First published algorithm", "Notes on the Analytical Engine"}, profiles[0].Achievements)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), profiles[0].CreatedAt.UTC())
	assert.True(t, profiles[1].CreatedAt.IsZero())
}

func TestLoadCatalog_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no profiles", "other: 1\n"},
		{"bad fame level", "profiles:\n  - name: X\n    category: art\n    fameLevel: legendary\n"},
		{"missing name", "profiles:\n  - category: art\n    fameLevel: famous\n"},
		{"reserved category", "profiles:\n  - name: X\n    category: all\n    fameLevel: famous\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCatalog(writeSeedFile(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeedCatalog_SkipsExistingNames(t *testing.T) {
	repo := memory.NewStore().ProfileRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	catalog := func() []*entity.Profile {
		return []*entity.Profile{
			{Name: "Ada Lovelace", Category: "science", FameLevel: entity.FameLevelFamous},
			{Name: "Frida Kahlo", Category: "art", FameLevel: entity.FameLevelFamous},
		}
	}

	created, err := seedCatalog(ctx, repo, catalog(), logger)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = seedCatalog(ctx, repo, catalog(), logger)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	all, err := repo.List(ctx, entity.ProfileFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRequireDurableStore(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverMemory}}
	err := requireDurableStore(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory")

	cfg.Store.Driver = config.StoreDriverMongo
	assert.NoError(t, requireDurableStore(cfg))

	cfg.Store.Driver = config.StoreDriverFirestore
	assert.NoError(t, requireDurableStore(cfg))
}
