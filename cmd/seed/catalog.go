package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"figures/config"
	"figures/internal/domain/entity"
	"figures/internal/domain/repository"
	"figures/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// catalogEntry is one profile as written in the seed file.
type catalogEntry struct {
	Name            string    `koanf:"name"`
	Category        string    `koanf:"category"`
	FameLevel       string    `koanf:"fameLevel"`
	Era             string    `koanf:"era"`
	Nationality     string    `koanf:"nationality"`
	Title           string    `koanf:"title"`
	ShortBio        string    `koanf:"shortBio"`
	FullStory       string    `koanf:"fullStory"`
	Quote           string    `koanf:"quote"`
	Achievements    []string  `koanf:"achievements"`
	Inspiration     string    `koanf:"inspiration"`
	ModernRelevance string    `koanf:"modernRelevance"`
	Avatar          string    `koanf:"avatar"`
	CreatedAt       time.Time `koanf:"createdAt"`
}

func (e catalogEntry) toProfile() *entity.Profile {
	return &entity.Profile{
		Name:            strings.TrimSpace(e.Name),
		Category:        strings.TrimSpace(e.Category),
		FameLevel:       entity.FameLevel(strings.TrimSpace(e.FameLevel)),
		Era:             e.Era,
		Nationality:     e.Nationality,
		Title:           e.Title,
		ShortBio:        e.ShortBio,
		FullStory:       e.FullStory,
		Quote:           e.Quote,
		Achievements:    e.Achievements,
		Inspiration:     e.Inspiration,
		ModernRelevance: e.ModernRelevance,
		Avatar:          e.Avatar,
		CreatedAt:       e.CreatedAt,
	}
}

// loadCatalog parses the "profiles" list of a YAML seed file and validates every entry.
func loadCatalog(path string) ([]*entity.Profile, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}

	var entries []catalogEntry
	if err := k.UnmarshalWithConf("profiles", &entries, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &entries,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(time.RFC3339),
			),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "decode profiles")
	}

	if len(entries) == 0 {
		return nil, errors.Errorf("seed file %s has no profiles", path)
	}

	profiles := make([]*entity.Profile, 0, len(entries))
	for i, entry := range entries {
		p := entry.toProfile()
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "profile #%d", i+1)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// seedCatalog inserts profiles whose name is not yet in the store, so reruns are safe.
func seedCatalog(ctx context.Context, repo repository.ProfileRepository, profiles []*entity.Profile, logger *slog.Logger) (int, error) {
	existing, err := repo.List(ctx, entity.ProfileFilter{})
	if err != nil {
		return 0, errors.Wrap(err, "list existing profiles")
	}

	known := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		known[p.Name] = struct{}{}
	}

	created := 0
	for _, p := range profiles {
		if _, ok := known[p.Name]; ok {
			logger.Debug("Profile already seeded", slog.String("name", p.Name))

			continue
		}

		if err := repo.Create(ctx, p); err != nil {
			return created, errors.Wrapf(err, "create profile %q", p.Name)
		}
		known[p.Name] = struct{}{}
		created++

		logger.Info("Profile seeded", slog.String("id", p.ID), slog.String("name", p.Name))
	}

	return created, nil
}

// requireDurableStore refuses the memory driver: its data would vanish when the seeder exits.
func requireDurableStore(cfg *config.Config) error {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return errors.Errorf("store.driver %q cannot be seeded from a separate process", cfg.Store.Driver)
	}

	return nil
}
