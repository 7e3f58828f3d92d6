package kernel_test

import (
	"strconv"
	"testing"

	"waterdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, kernel.Haversine(41.0, 69.0, 41.0, 69.0), 1e-9)
	})

	t.Run("antipodal on equator is half the circumference", func(t *testing.T) {
		d := kernel.Haversine(0, 0, 0, 180)

		assert.InEpsilon(t, 20015.0, d, 0.01)
	})

	t.Run("is symmetric", func(t *testing.T) {
		// Tashkent to Samarkand, roughly 270 km
		a := kernel.Haversine(41.2995, 69.2401, 39.6542, 66.9597)
		b := kernel.Haversine(39.6542, 66.9597, 41.2995, 69.2401)

		assert.InDelta(t, a, b, 1e-9)
		assert.InDelta(t, 270.0, a, 10.0)
	})
}

func TestEtaSeconds(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		speed    float64
		want     int
	}{
		{"one hour at default speed", 25, kernel.DefaultCourierSpeedKmh, 3600},
		{"zero distance", 0, 25, 0},
		{"negative distance", -3, 25, 0},
		{"fraction is truncated", 1, 25, 144},
		{"speed below one is clamped", 2, 0, 7200},
		{"faster courier", 10, 40, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.EtaSeconds(tt.distance, tt.speed))
		})
	}
}

func TestFormatEta(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, ""},
		{-10, ""},
		{30, "0 daqiqa"},
		{90, "2 daqiqa"},
		{150, "2 daqiqa"},
		{600, "10 daqiqa"},
		{3569, "59 daqiqa"},
		{3570, "1 soat 0 daqiqa"},
		{3590, "1 soat 0 daqiqa"},
		{3600, "1 soat 0 daqiqa"},
		{5400, "1 soat 30 daqiqa"},
		{7290, "2 soat 2 daqiqa"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.seconds), func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.FormatEta(tt.seconds))
		})
	}
}
