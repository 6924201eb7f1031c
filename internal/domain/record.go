package domain

// MonthNames lists the twelve month column headers in calendar order.
// The index of a name plus one is its month number.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// IdentityColumns are the non-month columns every input CSV must carry.
var IdentityColumns = [4]string{"STATION_NAME", "STN_ID", "LAT", "LON"}

// MonthIndex maps a month column name to its 1-based month number.
// Returns 0 for anything that is not one of the twelve English month names.
func MonthIndex(name string) int {
	for i, m := range MonthNames {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// WideStationRow is one source CSV row before reshaping: a station's identity
// plus its twelve monthly temperatures. A missing observation is NaN.
type WideStationRow struct {
	StationName string
	StationID   string
	Latitude    string
	Longitude   string
	Temps       [12]float64 // index 0 = January
}

// StationMonthRecord is the long-form unit of data: one station, one month.
// Records are built once during reshaping and only read afterwards.
type StationMonthRecord struct {
	StationName string
	StationID   string
	Latitude    string
	Longitude   string
	Month       int // 1-12
	Temperature float64
	Season      Season
}

// Dataset is the combined long-form table plus extraction bookkeeping.
type Dataset struct {
	Records     []StationMonthRecord
	FilesRead   int
	RowsDropped int // melted rows discarded for missing temperature
}
