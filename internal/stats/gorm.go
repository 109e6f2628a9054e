package stats

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/pitabwire/frame/data"
	"github.com/pitabwire/frame/datastore/pool"
)

// UserStatRecord is the persisted form of UserStats.
type UserStatRecord struct {
	data.BaseModel

	UserID           string      `gorm:"type:varchar(100);not null;uniqueIndex:idx_us_user" json:"user_id"`
	TotalAnalyses    int         `gorm:"default:0"                                           json:"total_analyses"`
	TotalDurationSec float64     `gorm:"default:0"                                           json:"total_duration_sec"`
	TotalWPM         float64     `gorm:"default:0"                                           json:"total_wpm"`
	TotalFillers     int         `gorm:"default:0"                                           json:"total_fillers"`
	LastAnalysisDate string      `gorm:"type:varchar(64)"                                    json:"last_analysis_date"`
	History          HistoryJSON `gorm:"type:jsonb;default:'[]'"                             json:"history"`
}

func (UserStatRecord) TableName() string { return "user_stats" }

// HistoryJSON is a custom GORM type for JSONB storage of analysis
// summaries.
type HistoryJSON []Summary

func (h HistoryJSON) Value() (interface{}, error) {
	return json.Marshal(h)
}

func (h *HistoryJSON) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		*h = HistoryJSON{}
		return nil
	}
}

// GormRepository stores user stats in the service datastore.
type GormRepository struct {
	pool pool.Pool
}

func NewGormRepository(pool pool.Pool) *GormRepository {
	return &GormRepository{pool: pool}
}

func (r *GormRepository) db(ctx context.Context, readOnly bool) *gorm.DB {
	return r.pool.DB(ctx, readOnly)
}

func (r *GormRepository) Get(ctx context.Context, userID string) (*UserStats, error) {
	var rec UserStatRecord
	err := r.db(ctx, true).Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &UserStats{
		UserID:           rec.UserID,
		TotalAnalyses:    rec.TotalAnalyses,
		TotalDurationSec: rec.TotalDurationSec,
		TotalWPM:         rec.TotalWPM,
		TotalFillers:     rec.TotalFillers,
		LastAnalysisDate: rec.LastAnalysisDate,
		History:          append([]Summary(nil), rec.History...),
	}, nil
}

func (r *GormRepository) Record(ctx context.Context, userID string, s Summary) error {
	return r.db(ctx, false).Transaction(func(tx *gorm.DB) error {
		var rec UserStatRecord
		err := tx.Where("user_id = ?", userID).First(&rec).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = UserStatRecord{UserID: userID}
		}

		u := UserStats{
			TotalAnalyses:    rec.TotalAnalyses,
			TotalDurationSec: rec.TotalDurationSec,
			TotalWPM:         rec.TotalWPM,
			TotalFillers:     rec.TotalFillers,
			LastAnalysisDate: rec.LastAnalysisDate,
			History:          rec.History,
		}
		u.Append(s)

		rec.TotalAnalyses = u.TotalAnalyses
		rec.TotalDurationSec = u.TotalDurationSec
		rec.TotalWPM = u.TotalWPM
		rec.TotalFillers = u.TotalFillers
		rec.LastAnalysisDate = u.LastAnalysisDate
		rec.History = u.History
		return tx.Save(&rec).Error
	})
}
