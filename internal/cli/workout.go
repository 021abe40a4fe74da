package cli

import (
	"context"
	"fmt"
)

func (a *App) Groups(ctx context.Context) error {
	groups, err := a.workouts.Groups(ctx)
	if err != nil {
		printErr(err)
		return err
	}

	if len(groups) == 0 {
		printlnFn("No exercise groups available.")
		return nil
	}
	for _, g := range groups {
		printlnFn(" -", g)
	}
	return nil
}

func (a *App) Exercises(ctx context.Context, group string) error {
	exercises, err := a.workouts.ExercisesByGroup(ctx, group)
	if err != nil {
		printErr(err)
		return err
	}

	if len(exercises) == 0 {
		printlnFn("No exercises in group", group)
		return nil
	}
	for _, e := range exercises {
		printlnFn(fmt.Sprintf(" %s  %s (%dx%d)", e.ID, e.Name, e.Series, e.Repetitions))
	}
	return nil
}

func (a *App) ShowExercise(ctx context.Context, id string) error {
	e, err := a.workouts.Exercise(ctx, id)
	if err != nil {
		printErr(err)
		return err
	}

	printlnFn(fmt.Sprintf("%s (%s)", e.Name, e.Group))
	printlnFn(fmt.Sprintf("  %d series of %d repetitions", e.Series, e.Repetitions))
	if e.Demo != "" {
		printlnFn("  demo:", e.Demo)
	}
	return nil
}

func (a *App) Done(ctx context.Context, id string) error {
	if err := a.workouts.MarkDone(ctx, id); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Registered. Good job!")
	return nil
}

func (a *App) History(ctx context.Context) error {
	days, err := a.workouts.History(ctx)
	if err != nil {
		printErr(err)
		return err
	}

	if len(days) == 0 {
		printlnFn("No exercises registered yet. How about training today?")
		return nil
	}
	for _, day := range days {
		printlnFn(day.Title)
		for _, entry := range day.Data {
			printlnFn(fmt.Sprintf("  %s  %s - %s", entry.Hour, entry.Group, entry.Name))
		}
	}
	return nil
}
