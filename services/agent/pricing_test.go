package agent

import (
	"testing"

	"innkeeper/models"

	"github.com/stretchr/testify/assert"
)

func testRates() RateTable {
	return RateTable{
		models.RoomStandard: 100,
		models.RoomDeluxe:   150,
		models.RoomSuite:    250,
	}
}

func TestRateTablePrice(t *testing.T) {
	rates := testRates()

	testCases := []struct {
		name     string
		roomType models.RoomType
		nights   int
		want     float64
	}{
		{"standard one night", models.RoomStandard, 1, 100},
		{"standard week", models.RoomStandard, 7, 700},
		{"deluxe four nights", models.RoomDeluxe, 4, 600},
		{"suite four nights", models.RoomSuite, 4, 1000},
		{"suite one night", models.RoomSuite, 1, 250},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Table lookup times night count, exact.
			assert.Equal(t, tc.want, rates.Price(tc.roomType, tc.nights))
		})
	}
}
