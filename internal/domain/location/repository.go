package location

import (
	"context"
	"errors"
	"strings"

	"jobvibe/internal/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) States(ctx context.Context) ([]State, error) {
	var out []State
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *Repository) StateExists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&State{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// Cities lists cities by name, limited to one state when stateID is set.
func (r *Repository) Cities(ctx context.Context, stateID string) ([]City, error) {
	tx := r.db.WithContext(ctx).Order("name ASC")
	if stateID != "" {
		tx = tx.Where("state_id = ?", stateID)
	}
	var out []City
	err := tx.Find(&out).Error
	return out, err
}

func (r *Repository) CreateCity(ctx context.Context, c *City) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if apperr.IsUniqueViolation(err) {
		return ErrCityExists
	}
	return err
}

func (r *Repository) GetCity(ctx context.Context, id string) (*City, error) {
	var c City
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) RenameCity(ctx context.Context, id, name string) error {
	res := r.db.WithContext(ctx).Model(&City{}).Where("id = ?", id).Update("name", name)
	if apperr.IsUniqueViolation(res.Error) {
		return ErrCityExists
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCityNotFound
	}
	return nil
}

func (r *Repository) DeleteCity(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&City{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCityNotFound
	}
	return nil
}

func (r *Repository) JobTitles(ctx context.Context) ([]JobTitle, error) {
	var out []JobTitle
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

// SeedState inserts the state and its cities, skipping rows that already
// exist by name. It returns the number of rows inserted.
func (r *Repository) SeedState(ctx context.Context, name, code string, cities []string) (int64, error) {
	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := State{Name: strings.TrimSpace(name), Code: code}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&st)
		if res.Error != nil {
			return res.Error
		}
		inserted += res.RowsAffected

		var stored State
		if err := tx.Where("name = ?", st.Name).First(&stored).Error; err != nil {
			return err
		}
		for _, city := range cities {
			c := City{StateID: stored.ID, Name: strings.TrimSpace(city)}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&c)
			if res.Error != nil {
				return res.Error
			}
			inserted += res.RowsAffected
		}
		return nil
	})
	return inserted, err
}

func (r *Repository) SeedJobTitle(ctx context.Context, name, category string) (int64, error) {
	jt := JobTitle{Name: strings.TrimSpace(name), Category: category}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&jt)
	return res.RowsAffected, res.Error
}
