package stats

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Kind selects how FormatStatistic renders a value.
type Kind string

const (
	Percentage   Kind = "percentage"
	Number       Kind = "number"
	Currency     Kind = "currency"
	Score        Kind = "score"
	Participants Kind = "participants"
	Thousands    Kind = "thousands"
	Difference   Kind = "difference"
)

// FormatStatistic renders v for display. Unknown kinds render as a grouped
// number.
func FormatStatistic(v float64, kind Kind) string {
	switch kind {
	case Percentage:
		return plain(v) + "%"
	case Currency:
		return "$" + grouped(v)
	case Score:
		return plain(v) + "/100"
	case Participants:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case Thousands:
		return fmt.Sprintf("%.0fK", v/1_000)
	case Difference:
		if v > 0 {
			return "+" + plain(v) + "pp"
		}
		return plain(v) + "pp"
	default:
		return grouped(v)
	}
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// grouped prints v with English digit grouping and at most three decimals.
func grouped(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// CompactNumber abbreviates large counters: 15847 is "15.8K".
func CompactNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}

// ImpactLevel names the band a personal impact score falls in.
type ImpactLevel struct {
	Level string `json:"level"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var impactLevels = []struct {
	min   int
	level ImpactLevel
}{
	{90, ImpactLevel{"Exceptional", "#667eea", "🏆"}},
	{80, ImpactLevel{"High Impact", "#48bb78", "🌟"}},
	{70, ImpactLevel{"Growing Influence", "#ed8936", "🚀"}},
	{60, ImpactLevel{"Emerging Artist", "#38b2ac", "🌱"}},
}

// LevelFor classifies a social score.
func LevelFor(score int) ImpactLevel {
	for _, l := range impactLevels {
		if score >= l.min {
			return l.level
		}
	}
	return ImpactLevel{"Getting Started", "#a0aec0", "🎯"}
}
