package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavj/mathsprint/ent"
	entpowerup "github.com/arnavj/mathsprint/ent/powerup"
	"github.com/arnavj/mathsprint/internal/powerup"
)

// powerUpRepo implements PowerUpRepo using the ent client.
type powerUpRepo struct {
	client *ent.Client
}

func (r *powerUpRepo) All(ctx context.Context) ([]powerup.PowerUp, error) {
	rows, err := r.client.PowerUp.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query power-ups: %w", err)
	}

	out := make([]powerup.PowerUp, 0, len(rows))
	for _, row := range rows {
		out = append(out, powerup.PowerUp{
			ID:        row.ID,
			Type:      powerup.Type(row.Type),
			Active:    row.Active,
			ExpiresAt: row.ExpiresAt,
		})
	}
	return out, nil
}

func (r *powerUpRepo) Add(ctx context.Context, p powerup.PowerUp) error {
	create := r.client.PowerUp.Create().
		SetType(string(p.Type)).
		SetActive(p.Active)
	if !p.ExpiresAt.IsZero() {
		create.SetExpiresAt(p.ExpiresAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create power-up %s: %w", p.Type, err)
	}
	return nil
}

func (r *powerUpRepo) Deactivate(ctx context.Context, id int) error {
	_, err := r.client.PowerUp.UpdateOneID(id).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate power-up %d: %w", id, err)
	}
	return nil
}

func (r *powerUpRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.client.PowerUp.Delete().
		Where(
			entpowerup.ExpiresAtNotNil(),
			entpowerup.ExpiresAtLTE(now),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete expired power-ups: %w", err)
	}
	return nil
}
