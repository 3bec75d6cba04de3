package constants

// QualityLevel is the coarse bucket derived from how many essential fields
// were filled by an extraction.
type QualityLevel string

const (
	QualityExcellent QualityLevel = "excellent"
	QualityGood      QualityLevel = "good"
	QualityFair      QualityLevel = "fair"
	QualityPoor      QualityLevel = "poor"
)

// Score thresholds for the quality buckets (0-100 scale).
const (
	QualityExcellentMin = 80
	QualityGoodMin      = 60
	QualityFairMin      = 40
)

// LevelForScore maps a 0-100 quality score to its bucket.
func LevelForScore(score int) QualityLevel {
	switch {
	case score >= QualityExcellentMin:
		return QualityExcellent
	case score >= QualityGoodMin:
		return QualityGood
	case score >= QualityFairMin:
		return QualityFair
	default:
		return QualityPoor
	}
}
