package store

import (
	"context"
	"fmt"

	"github.com/arnavj/mathsprint/ent"
	"github.com/arnavj/mathsprint/ent/lessonprogress"
	"github.com/arnavj/mathsprint/internal/curriculum"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) All(ctx context.Context) (map[string]curriculum.Progress, error) {
	rows, err := r.client.LessonProgress.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson progress: %w", err)
	}

	out := make(map[string]curriculum.Progress, len(rows))
	for _, row := range rows {
		out[row.LessonID] = curriculum.Progress{
			LessonID:  row.LessonID,
			Completed: row.Completed,
			Stars:     row.Stars,
			BestScore: row.BestScore,
			Attempts:  row.Attempts,
		}
	}
	return out, nil
}

func (r *progressRepo) Upsert(ctx context.Context, p curriculum.Progress) error {
	existing, err := r.client.LessonProgress.Query().
		Where(lessonprogress.LessonID(p.LessonID)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query lesson progress %s: %w", p.LessonID, err)
		}
		_, err = r.client.LessonProgress.Create().
			SetLessonID(p.LessonID).
			SetCompleted(p.Completed).
			SetStars(p.Stars).
			SetBestScore(p.BestScore).
			SetAttempts(p.Attempts).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create lesson progress %s: %w", p.LessonID, err)
		}
		return nil
	}

	_, err = r.client.LessonProgress.UpdateOne(existing).
		SetCompleted(p.Completed).
		SetStars(p.Stars).
		SetBestScore(p.BestScore).
		SetAttempts(p.Attempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update lesson progress %s: %w", p.LessonID, err)
	}
	return nil
}
