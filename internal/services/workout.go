// Package services contains application services for the gym client.
// This file defines the workout service: browsing exercise groups and
// exercises, registering completed exercises, and reviewing history.
package services

import (
	"context"
	"errors"
	"fmt"

	"gymcli/internal/api"
	"gymcli/internal/logging"
	"gymcli/internal/models"
)

var ErrEmptyArgument = errors.New("argument must not be empty")

// WorkoutService exposes the browse/track operations of the gym backend.
//
// All methods honor context cancellation/timeouts. Server-declared failures
// (*api.Error) pass through unwrapped so the caller can display them.
type WorkoutService interface {
	Groups(ctx context.Context) ([]string, error)
	ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error)
	Exercise(ctx context.Context, id string) (models.Exercise, error)
	MarkDone(ctx context.Context, exerciseID string) error
	History(ctx context.Context) ([]models.HistoryDay, error)
}

type workoutService struct {
	client api.Client
	log    logging.Logger
}

// NewWorkoutService constructs a WorkoutService bound to the given API client.
func NewWorkoutService(client api.Client, log logging.Logger) WorkoutService {
	return &workoutService{client: client, log: log}
}

func (s *workoutService) Groups(ctx context.Context) ([]string, error) {
	groups, err := s.client.Groups(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading groups: %w", err)
	}
	return groups, nil
}

func (s *workoutService) ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error) {
	if group == "" {
		return nil, fmt.Errorf("group: %w", ErrEmptyArgument)
	}
	exercises, err := s.client.ExercisesByGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("loading exercises: %w", err)
	}
	return exercises, nil
}

func (s *workoutService) Exercise(ctx context.Context, id string) (models.Exercise, error) {
	if id == "" {
		return models.Exercise{}, fmt.Errorf("exercise id: %w", ErrEmptyArgument)
	}
	exercise, err := s.client.Exercise(ctx, id)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("loading exercise: %w", err)
	}
	return exercise, nil
}

func (s *workoutService) MarkDone(ctx context.Context, exerciseID string) error {
	if exerciseID == "" {
		return fmt.Errorf("exercise id: %w", ErrEmptyArgument)
	}
	if err := s.client.RegisterHistory(ctx, exerciseID); err != nil {
		return fmt.Errorf("registering exercise: %w", err)
	}
	s.log.Info(ctx, "exercise registered", "exercise", exerciseID)
	return nil
}

func (s *workoutService) History(ctx context.Context) ([]models.HistoryDay, error) {
	days, err := s.client.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return days, nil
}
