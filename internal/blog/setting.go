package blog

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/storage"
	"strings"
)

type settings struct {
	storage storage.Storage
}

// NewSettings creates a Settings service backed by storage.
func NewSettings(storage storage.Storage) Settings {
	return &settings{storage: storage}
}

func normalizeSetting(in SettingInput) (domain.Setting, error) {
	if err := check(in); err != nil {
		return domain.Setting{}, err
	}

	s := domain.Setting{
		Key:         strings.TrimSpace(in.Key),
		Value:       in.Value,
		Description: in.Description,
		Type:        in.Type,
		Public:      in.Public,
	}
	if s.Type == "" {
		s.Type = domain.DefaultSettingType
	}

	return s, nil
}

func (s *settings) Create(ctx context.Context, in SettingInput) (*domain.Setting, error) {
	setting, err := normalizeSetting(in)
	if err != nil {
		return nil, err
	}

	created, err := s.storage.CreateSetting(ctx, setting)
	if err != nil {
		return nil, storeErr(err, "create", "setting")
	}

	return created, nil
}

func (s *settings) Update(ctx context.Context, id int64, in SettingInput) (*domain.Setting, error) {
	setting, err := normalizeSetting(in)
	if err != nil {
		return nil, err
	}
	setting.ID = id

	updated, err := s.storage.UpdateSetting(ctx, setting)
	if err != nil {
		return nil, storeErr(err, "update", "setting")
	}
	if updated == nil {
		return nil, notFound("setting")
	}

	return updated, nil
}

func (s *settings) Delete(ctx context.Context, id int64) error {
	deleted, err := s.storage.DeleteSetting(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete setting: %w", err)
	}
	if !deleted {
		return notFound("setting")
	}

	return nil
}

func (s *settings) ByID(ctx context.Context, id int64) (*domain.Setting, error) {
	setting, err := s.storage.SettingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get setting: %w", err)
	}
	if setting == nil {
		return nil, notFound("setting")
	}

	return setting, nil
}

func (s *settings) ByKey(ctx context.Context, key string) (*domain.Setting, error) {
	setting, err := s.storage.SettingByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("could not get setting: %w", err)
	}
	if setting == nil {
		return nil, notFound("setting")
	}

	return setting, nil
}

func (s *settings) List(ctx context.Context, filter storage.SettingFilter) ([]domain.Setting, error) {
	items, err := s.storage.Settings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list settings: %w", err)
	}

	return items, nil
}

func (s *settings) Upsert(ctx context.Context, in []SettingInput) ([]domain.Setting, error) {
	normalized := make([]domain.Setting, 0, len(in))
	for i := range in {
		setting, err := normalizeSetting(in[i])
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, setting)
	}

	out := make([]domain.Setting, 0, len(normalized))
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for i := range normalized {
			saved, err := tx.UpsertSetting(ctx, normalized[i])
			if err != nil {
				return storeErr(err, "save", "setting "+normalized[i].Key)
			}
			out = append(out, *saved)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return out, nil
}
