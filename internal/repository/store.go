// Package repository implements the persistence gateway over Postgres.
// Profiles and daily logs are stored as opaque JSON documents; every
// mutation is a single full replace, so a failed call leaves prior
// state untouched.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arkadyvolkov/nutrition-helper/internal/database"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// Store is the gorm-backed document store for profiles and daily logs.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ domain.Gateway = (*Store)(nil)

// GetProfile fetches a profile document. Absence is nil, not an error.
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var record database.ProfileRecord
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(record.Data), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile document: %w", err)
	}
	return &profile, nil
}

// PutProfile fully replaces the stored profile document.
func (s *Store) PutProfile(ctx context.Context, userID string, profile domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile document: %w", err)
	}

	var record database.ProfileRecord
	err = s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = database.ProfileRecord{UserID: userID, Data: string(data)}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to load profile: %w", err)
	}

	record.Data = string(data)
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// MergeProfile applies the patch to the stored profile; fields the
// patch does not carry are preserved. Merging into an absent profile
// fails: onboarding must create it first.
func (s *Store) MergeProfile(ctx context.Context, userID string, patch domain.ProfilePatch) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile not found for user %s", userID)
	}

	patch.ApplyTo(profile)
	return s.PutProfile(ctx, userID, *profile)
}

// GetDailyLog fetches the log for a date key; a missing record is an
// empty log.
func (s *Store) GetDailyLog(ctx context.Context, userID, dateKey string) (domain.DailyLog, error) {
	var record database.DailyLogRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DailyLog{Entries: []domain.FoodEntry{}}, nil
	}
	if err != nil {
		return domain.DailyLog{}, fmt.Errorf("failed to get daily log: %w", err)
	}

	var entries []domain.FoodEntry
	if err := json.Unmarshal([]byte(record.Entries), &entries); err != nil {
		return domain.DailyLog{}, fmt.Errorf("failed to decode daily log document: %w", err)
	}
	return domain.DailyLog{Entries: entries}, nil
}

// PutDailyLog fully replaces the log for a date key. Last write wins.
func (s *Store) PutDailyLog(ctx context.Context, userID, dateKey string, log domain.DailyLog) error {
	entries := log.Entries
	if entries == nil {
		entries = []domain.FoodEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode daily log document: %w", err)
	}

	var record database.DailyLogRecord
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = database.DailyLogRecord{UserID: userID, DateKey: dateKey, Entries: string(data)}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create daily log: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to load daily log: %w", err)
	}

	record.Entries = string(data)
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save daily log: %w", err)
	}
	return nil
}
