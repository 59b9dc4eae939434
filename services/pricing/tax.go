package pricing

import (
	"regexp"
	"strings"

	"feastly/models"
)

// DefaultTaxRate applies when a location cannot be resolved to any known
// jurisdiction.
const DefaultTaxRate = 0.08

// zipTaxEntry is one row of the ZIP-code tax table.
type zipTaxEntry struct {
	Rate   float64
	City   string
	County string
}

// zipTaxTable maps 5-digit ZIP codes of major metro areas to their combined
// sales-tax rate. A ZIP hit always beats the state-level fallback.
var zipTaxTable = map[string]zipTaxEntry{
	// California
	"94102": {0.0863, "San Francisco", "San Francisco County"},
	"94103": {0.0863, "San Francisco", "San Francisco County"},
	"94110": {0.0863, "San Francisco", "San Francisco County"},
	"94612": {0.1025, "Oakland", "Alameda County"},
	"95113": {0.0938, "San Jose", "Santa Clara County"},
	"90012": {0.0950, "Los Angeles", "Los Angeles County"},
	"90001": {0.0950, "Los Angeles", "Los Angeles County"},
	"92101": {0.0775, "San Diego", "San Diego County"},
	"95814": {0.0875, "Sacramento", "Sacramento County"},
	// New York
	"10001": {0.08875, "New York", "New York County"},
	"10013": {0.08875, "New York", "New York County"},
	"11201": {0.08875, "Brooklyn", "Kings County"},
	// Illinois
	"60601": {0.1025, "Chicago", "Cook County"},
	"60607": {0.1025, "Chicago", "Cook County"},
	// Texas
	"77002": {0.0825, "Houston", "Harris County"},
	"75201": {0.0825, "Dallas", "Dallas County"},
	"78701": {0.0825, "Austin", "Travis County"},
	// Washington
	"98101": {0.1035, "Seattle", "King County"},
	"98109": {0.1035, "Seattle", "King County"},
	// Oregon has no sales tax.
	"97201": {0.0000, "Portland", "Multnomah County"},
	// Others
	"80202": {0.0881, "Denver", "Denver County"},
	"85004": {0.0860, "Phoenix", "Maricopa County"},
	"89101": {0.08375, "Las Vegas", "Clark County"},
	"33130": {0.0700, "Miami", "Miami-Dade County"},
	"30303": {0.0890, "Atlanta", "Fulton County"},
	"02108": {0.0625, "Boston", "Suffolk County"},
	"20001": {0.0600, "Washington", "District of Columbia"},
	"19103": {0.0800, "Philadelphia", "Philadelphia County"},
	"48226": {0.0600, "Detroit", "Wayne County"},
	"55401": {0.09025, "Minneapolis", "Hennepin County"},
	"63101": {0.09679, "St. Louis", "St. Louis City"},
}

// stateTaxEntry is one state with its average combined rate.
type stateTaxEntry struct {
	Name   string
	Abbrev string
	Rate   float64
}

// stateTaxTable lists every state plus DC, ordered longest-name-first so
// substring matching cannot hit "Virginia" inside "West Virginia".
var stateTaxTable = []stateTaxEntry{
	{"District of Columbia", "DC", 0.0600},
	{"South Carolina", "SC", 0.0744},
	{"North Carolina", "NC", 0.0698},
	{"Massachusetts", "MA", 0.0625},
	{"West Virginia", "WV", 0.0657},
	{"New Hampshire", "NH", 0.0000},
	{"South Dakota", "SD", 0.0640},
	{"North Dakota", "ND", 0.0696},
	{"Pennsylvania", "PA", 0.0634},
	{"Rhode Island", "RI", 0.0700},
	{"Connecticut", "CT", 0.0635},
	{"Mississippi", "MS", 0.0707},
	{"Washington", "WA", 0.0929},
	{"California", "CA", 0.0875},
	{"New Mexico", "NM", 0.0784},
	{"New Jersey", "NJ", 0.0660},
	{"Minnesota", "MN", 0.0749},
	{"Louisiana", "LA", 0.0955},
	{"Wisconsin", "WI", 0.0543},
	{"Tennessee", "TN", 0.0955},
	{"Oklahoma", "OK", 0.0897},
	{"Nebraska", "NE", 0.0694},
	{"Michigan", "MI", 0.0600},
	{"Kentucky", "KY", 0.0600},
	{"Delaware", "DE", 0.0000},
	{"Colorado", "CO", 0.0778},
	{"Arkansas", "AR", 0.0947},
	{"Virginia", "VA", 0.0573},
	{"Vermont", "VT", 0.0624},
	{"New York", "NY", 0.0852},
	{"Missouri", "MO", 0.0829},
	{"Montana", "MT", 0.0000},
	{"Maryland", "MD", 0.0600},
	{"Illinois", "IL", 0.0882},
	{"Wyoming", "WY", 0.0536},
	{"Georgia", "GA", 0.0735},
	{"Florida", "FL", 0.0702},
	{"Alabama", "AL", 0.0924},
	{"Arizona", "AZ", 0.0837},
	{"Indiana", "IN", 0.0700},
	{"Oregon", "OR", 0.0000},
	{"Nevada", "NV", 0.0823},
	{"Kansas", "KS", 0.0870},
	{"Hawaii", "HI", 0.0444},
	{"Alaska", "AK", 0.0176},
	{"Texas", "TX", 0.0820},
	{"Maine", "ME", 0.0550},
	{"Idaho", "ID", 0.0602},
	{"Utah", "UT", 0.0719},
	{"Ohio", "OH", 0.0722},
	{"Iowa", "IA", 0.0694},
}

var zipPattern = regexp.MustCompile(`\b(\d{5})\b`)

// ResolveTax maps a free-text location string to a tax rate and jurisdiction
// label. Precedence: 5-digit ZIP lookup, exact state name, state name
// substring, then 2-letter state abbreviation as a standalone token only
// ("Canada" never matches "CA"). It always returns a valid result; unknown
// locations get the default rate.
func ResolveTax(location string) models.TaxInfo {
	if zip := zipPattern.FindString(location); zip != "" {
		if entry, ok := zipTaxTable[zip]; ok {
			return models.TaxInfo{Rate: entry.Rate, Jurisdiction: entry.City + ", " + entry.County}
		}
	}

	loc := strings.ToLower(strings.TrimSpace(location))
	if loc != "" {
		for _, st := range stateTaxTable {
			if loc == strings.ToLower(st.Name) {
				return models.TaxInfo{Rate: st.Rate, Jurisdiction: st.Name}
			}
		}
		for _, st := range stateTaxTable {
			if strings.Contains(loc, strings.ToLower(st.Name)) {
				return models.TaxInfo{Rate: st.Rate, Jurisdiction: st.Name}
			}
		}

		// Abbreviations match whole tokens only; a substring check would
		// turn "Canada" into California.
		tokens := strings.FieldsFunc(loc, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ',' || r == '.' || r == ';'
		})
		for _, tok := range tokens {
			for _, st := range stateTaxTable {
				if tok == strings.ToLower(st.Abbrev) {
					return models.TaxInfo{Rate: st.Rate, Jurisdiction: st.Name}
				}
			}
		}
	}

	return models.TaxInfo{Rate: DefaultTaxRate, Jurisdiction: "Unknown"}
}
