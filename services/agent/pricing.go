package agent

import (
	"innkeeper/config"
	"innkeeper/models"
)

// RateTable maps room types to their configured nightly rate.
type RateTable map[models.RoomType]float64

// RatesFromConfig builds the rate table from loaded configuration.
func RatesFromConfig() RateTable {
	return RateTable{
		models.RoomStandard: config.AppConfig.RateStandard,
		models.RoomDeluxe:   config.AppConfig.RateDeluxe,
		models.RoomSuite:    config.AppConfig.RateSuite,
	}
}

// Price computes the total for a stay: nightly rate times night count.
// Callers validate that nights is positive before pricing.
func (t RateTable) Price(roomType models.RoomType, nights int) float64 {
	return t[roomType] * float64(nights)
}
