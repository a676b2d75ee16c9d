package services

import (
	"context"
	"time"

	"github.com/HarshaVardhank74/Nutricook/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ScoreSummary aggregates a user's checked-meal scores over a date range.
type ScoreSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	TotalChecks    int64   `json:"total_checks"`
	PositiveChecks int64   `json:"positive_checks"`
	NegativeChecks int64   `json:"negative_checks"`
	NeutralChecks  int64   `json:"neutral_checks"`
	ScoreSum       int64   `json:"score_sum"`
	AvgScore       float64 `json:"avg_score"`

	BestMeal  *MealScore `json:"best_meal,omitempty"`
	WorstMeal *MealScore `json:"worst_meal,omitempty"`
}

type MealScore struct {
	MealName      string    `json:"meal_name"`
	AssignedScore int       `json:"assigned_score"`
	CheckedAt     time.Time `json:"checked_at"`
}

func (s *AnalyticsService) Summary(
	ctx context.Context, userID uint, from, to time.Time,
) (*ScoreSummary, error) {

	var rows []models.CheckedMeal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND checked_at BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("checked_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := &ScoreSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")

	for i := range rows {
		r := rows[i]
		out.TotalChecks++
		out.ScoreSum += int64(r.AssignedScore)
		switch {
		case r.AssignedScore > 0:
			out.PositiveChecks++
		case r.AssignedScore < 0:
			out.NegativeChecks++
		default:
			out.NeutralChecks++
		}
		if out.BestMeal == nil || r.AssignedScore > out.BestMeal.AssignedScore {
			out.BestMeal = &MealScore{MealName: r.MealName, AssignedScore: r.AssignedScore, CheckedAt: r.CheckedAt}
		}
		if out.WorstMeal == nil || r.AssignedScore < out.WorstMeal.AssignedScore {
			out.WorstMeal = &MealScore{MealName: r.MealName, AssignedScore: r.AssignedScore, CheckedAt: r.CheckedAt}
		}
	}
	if out.TotalChecks > 0 {
		out.AvgScore = float64(out.ScoreSum) / float64(out.TotalChecks)
	}

	return out, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
