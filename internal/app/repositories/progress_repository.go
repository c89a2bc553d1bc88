package repositories

import (
	"context"

	"github.com/lmshub/lms-backend/internal/app/models"
	"github.com/lmshub/lms-backend/internal/store"
)

// ProgressRepository reads lesson progress records.
type ProgressRepository struct {
	store store.Store
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(st store.Store) *ProgressRepository {
	return &ProgressRepository{store: st}
}

// RecentByMember returns the member's most recent progress records,
// newest first, bounded to limit.
func (r *ProgressRepository) RecentByMember(ctx context.Context, member string, limit int) ([]models.ProgressRecord, error) {
	records, err := r.store.Query(ctx, store.EntityProgress, store.Query{
		Filters: []store.Condition{store.Eq("member", member)},
		OrderBy: "modified_at",
		Desc:    true,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	progress := make([]models.ProgressRecord, 0, len(records))
	for _, record := range records {
		progress = append(progress, models.ProgressRecord{
			Lesson:     record.Str("lesson"),
			Status:     models.ProgressStatus(record.Str("status")),
			TimeSpent:  record.Float("time_spent"),
			ModifiedAt: record.Time("modified_at"),
		})
	}
	return progress, nil
}
