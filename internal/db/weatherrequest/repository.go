package weatherrequest

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(request *WeatherRequest) error
	FindByID(id uuid.UUID) (*WeatherRequest, error)
	FindByLocationName(location string) (*WeatherRequest, error)
	Updates(id uuid.UUID, fields map[string]interface{}) (*WeatherRequest, error)
	DeleteByID(id uuid.UUID) error
	ListRecent(limit int) ([]WeatherRequest, error)
}

type WeatherRequestSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherRequestSQLRepository{db: db}
}

func (r *WeatherRequestSQLRepository) Create(request *WeatherRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	return r.db.Create(request).Error
}

func (r *WeatherRequestSQLRepository) FindByID(id uuid.UUID) (*WeatherRequest, error) {
	var request WeatherRequest
	err := r.db.Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *WeatherRequestSQLRepository) FindByLocationName(location string) (*WeatherRequest, error) {
	var request WeatherRequest
	err := r.db.Where("location_name = ?", location).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Updates applies the given column values and returns the refreshed
// record. Last write wins; readings are never touched here.
func (r *WeatherRequestSQLRepository) Updates(id uuid.UUID, fields map[string]interface{}) (*WeatherRequest, error) {
	if len(fields) > 0 {
		fields["updated_at"] = time.Now()

		err := r.db.Model(&WeatherRequest{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	return r.FindByID(id)
}

// DeleteByID removes the record if it exists. Deleting an absent id
// is not an error.
func (r *WeatherRequestSQLRepository) DeleteByID(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&WeatherRequest{}).Error
}

func (r *WeatherRequestSQLRepository) ListRecent(limit int) ([]WeatherRequest, error) {
	var requests []WeatherRequest
	err := r.db.Order("created_at DESC").Limit(limit).Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
