package domain

import "fmt"

// Season is one of the four Australian seasons.
type Season string

const (
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
)

// Seasons lists the four seasons in alphabetical order, the order seasonal
// report lines are emitted in.
var Seasons = [4]Season{SeasonAutumn, SeasonSpring, SeasonSummer, SeasonWinter}

// SeasonForMonth maps a month number to its Southern-Hemisphere season.
// Months outside 1-12 are an error; an undefined season must never reach a report.
func SeasonForMonth(month int) (Season, error) {
	switch month {
	case 12, 1, 2:
		return SeasonSummer, nil
	case 3, 4, 5:
		return SeasonAutumn, nil
	case 6, 7, 8:
		return SeasonWinter, nil
	case 9, 10, 11:
		return SeasonSpring, nil
	default:
		return "", fmt.Errorf("invalid month %d: must be 1-12", month)
	}
}
