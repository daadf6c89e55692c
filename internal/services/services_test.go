package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// fakeGateway is an in-memory Gateway used across the service tests. It
// mirrors the store's contract: absent profile is nil, absent log is
// empty, merges preserve unset fields.
type fakeGateway struct {
	profiles map[string]domain.UserProfile
	logs     map[string]domain.DailyLog
	failNext error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		profiles: make(map[string]domain.UserProfile),
		logs:     make(map[string]domain.DailyLog),
	}
}

func (g *fakeGateway) fail() error {
	if g.failNext != nil {
		err := g.failNext
		g.failNext = nil
		return err
	}
	return nil
}

func (g *fakeGateway) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if err := g.fail(); err != nil {
		return nil, err
	}
	profile, ok := g.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (g *fakeGateway) PutProfile(ctx context.Context, userID string, profile domain.UserProfile) error {
	if err := g.fail(); err != nil {
		return err
	}
	g.profiles[userID] = profile
	return nil
}

func (g *fakeGateway) MergeProfile(ctx context.Context, userID string, patch domain.ProfilePatch) error {
	if err := g.fail(); err != nil {
		return err
	}
	profile, ok := g.profiles[userID]
	if !ok {
		return errors.New("no profile to merge into")
	}
	patch.ApplyTo(&profile)
	g.profiles[userID] = profile
	return nil
}

func (g *fakeGateway) GetDailyLog(ctx context.Context, userID, dateKey string) (domain.DailyLog, error) {
	if err := g.fail(); err != nil {
		return domain.DailyLog{}, err
	}
	return g.logs[logKey(userID, dateKey)], nil
}

func (g *fakeGateway) PutDailyLog(ctx context.Context, userID, dateKey string, log domain.DailyLog) error {
	if err := g.fail(); err != nil {
		return err
	}
	g.logs[logKey(userID, dateKey)] = log
	return nil
}

func logKey(userID, dateKey string) string {
	return fmt.Sprintf("%s/%s", userID, dateKey)
}

var _ domain.Gateway = (*fakeGateway)(nil)
