package weatherrequest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Reading is one normalized weather observation or forecast point,
// stored inside the readings jsonb column. Timestamp is always set;
// every other field is only present when the provider reported it.
type Reading struct {
	Timestamp          time.Time       `json:"timestamp"`
	Temp               *float64        `json:"temp,omitempty"`
	FeelsLike          *float64        `json:"feels_like,omitempty"`
	Humidity           *float64        `json:"humidity,omitempty"`
	Pressure           *float64        `json:"pressure,omitempty"`
	WeatherMain        string          `json:"weather_main,omitempty"`
	WeatherDescription string          `json:"weather_description,omitempty"`
	WindSpeed          *float64        `json:"wind_speed,omitempty"`
	RawJSON            json.RawMessage `json:"raw_json,omitempty"`
}

// WeatherRequest is one stored location/date-range query together
// with the readings resolved for it at creation time.
type WeatherRequest struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	LocationName   string         `json:"location_name" gorm:"not null;index:idx_location_name"`
	NormalizedName string         `json:"normalized_name"`
	Lat            float64        `json:"lat"`
	Lon            float64        `json:"lon"`
	Unit           string         `json:"unit" gorm:"default:metric"`
	StartDate      time.Time      `json:"start_date"`
	EndDate        time.Time      `json:"end_date"`
	Readings       datatypes.JSON `json:"weather_readings" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at" gorm:"index:idx_created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (WeatherRequest) TableName() string {
	return "weather_requests"
}

// SetReadings marshals the reading list into the jsonb column. An
// empty list is stored as an empty JSON array, not NULL.
func (w *WeatherRequest) SetReadings(readings []Reading) error {
	if readings == nil {
		readings = []Reading{}
	}
	data, err := json.Marshal(readings)
	if err != nil {
		return err
	}
	w.Readings = datatypes.JSON(data)
	return nil
}

// DecodeReadings unmarshals the stored jsonb column back into the
// reading list.
func (w *WeatherRequest) DecodeReadings() ([]Reading, error) {
	if len(w.Readings) == 0 {
		return []Reading{}, nil
	}
	var readings []Reading
	if err := json.Unmarshal(w.Readings, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}
