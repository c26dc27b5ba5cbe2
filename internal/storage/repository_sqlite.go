package storage

import (
	"errors"
	"time"

	"github.com/ericogr/saber-duel/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByID(id string) (*game.Session, error) {
	var s game.Session
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpdateSession writes every column, including zero values, so a reset
// session is stored as reset.
func (r *sqliteRepository) UpdateSession(s *game.Session) error {
	res := r.db.Model(s).Select("*").Omit("created_at").Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) DeleteSession(id string) error {
	res := r.db.Where("id = ?", id).Delete(&game.Session{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) DeleteIdleSessions(before time.Time) (int64, error) {
	res := r.db.Where("updated_at < ?", before).Delete(&game.Session{})
	return res.RowsAffected, res.Error
}
