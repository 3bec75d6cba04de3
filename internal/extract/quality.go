package extract

import (
	"math"

	"github.com/orderdocs/order-extractor/constants"
	"github.com/orderdocs/order-extractor/internal/entity"
)

// EvaluateQuality scores a record by the fraction of essential fields that
// are non-empty after trimming. Pure function; dates, weight, and quantity
// never gate quality because preliminary documents legitimately omit them.
func EvaluateQuality(fields entity.OrderFields) (score int, level constants.QualityLevel) {
	filled := 0
	for _, name := range constants.EssentialFields {
		if fields.StringField(name) != "" {
			filled++
		}
	}
	score = int(math.Round(100 * float64(filled) / float64(len(constants.EssentialFields))))
	return score, constants.LevelForScore(score)
}
