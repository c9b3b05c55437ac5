package dataset

import "fmt"

// continentByHost maps host countries to continents. Only nations that
// have hosted (or co-hosted) a World Cup appear here; historical German
// names are kept as separate keys.
var continentByHost = map[string]string{
	"Uruguay":           "South America",
	"Italy":             "Europe",
	"France":            "Europe",
	"Brazil":            "South America",
	"Switzerland":       "Europe",
	"Sweden":            "Europe",
	"Chile":             "South America",
	"England":           "Europe",
	"Mexico":            "North America",
	"Germany":           "Europe",
	"Germany FR":        "Europe",
	"West Germany":      "Europe",
	"Argentina":         "South America",
	"Spain":             "Europe",
	"USA":               "North America",
	"Korea/Japan":       "Asia",
	"South Africa":      "Africa",
	"Russia":            "Europe",
	"Qatar":             "Asia",
	"Canada/Mexico/USA": "North America",
}

// iso3ByCountry consolidates team names (including historic ones) to
// ISO 3166-1 alpha-3 codes for the choropleth map. This is the only
// place where the different Germany spellings collapse to one code.
var iso3ByCountry = map[string]string{
	"USA": "USA", "Uruguay": "URY", "Argentina": "ARG", "Yugoslavia": "YUG", "Chile": "CHL",
	"Brazil": "BRA", "France": "FRA", "Romania": "ROU", "Paraguay": "PRY", "Peru": "PER",
	"Belgium": "BEL", "Bolivia": "BOL", "Mexico": "MEX", "Italy": "ITA", "Czechoslovakia": "CZE",
	"Germany": "DEU", "West Germany": "DEU", "Germany FR": "DEU", "Austria": "AUT", "Spain": "ESP",
	"Hungary": "HUN", "Switzerland": "CHE", "Sweden": "SWE", "Netherlands": "NLD", "Egypt": "EGY",
	"Cuba": "CUB", "Norway": "NOR", "Poland": "POL", "Dutch East Indies": "IDN", "England": "GBR",
	"Scotland": "GBR", "Wales": "GBR", "Northern Ireland": "GBR", "Turkey": "TUR",
	"South Korea": "KOR", "Korea Republic": "KOR", "Soviet Union": "RUS", "Colombia": "COL",
	"Bulgaria": "BGR", "North Korea": "PRK", "Korea DPR": "PRK", "Portugal": "PRT", "Morocco": "MAR",
	"El Salvador": "SLV", "Israel": "ISR", "East Germany": "DEU", "Germany DR": "DEU", "Australia": "AUS",
	"Haiti": "HTI", "Zaire": "COD", "Tunisia": "TUN", "IR Iran": "IRN", "Iran": "IRN",
	"Algeria": "DZA", "Cameroon": "CMR", "Honduras": "HND", "Kuwait": "KWT",
	"New Zealand": "NZL", "Denmark": "DNK", "Iraq": "IRQ", "Canada": "CAN",
	"Republic of Ireland": "IRL", "Costa Rica": "CRI", "United Arab Emirates": "ARE",
	"Nigeria": "NGA", "Saudi Arabia": "SAU", "Russia": "RUS", "Greece": "GRC",
	"Croatia": "HRV", "Jamaica": "JAM", "South Africa": "ZAF", "Japan": "JPN",
	"FR Yugoslavia": "YUG", "Senegal": "SEN", "Slovenia": "SVN", "Ecuador": "ECU",
	"China PR": "CHN", "Trinidad and Tobago": "TTO", "Ivory Coast": "CIV", "Cote d'Ivoire": "CIV",
	"Côte d'Ivoire": "CIV", "Angola": "AGO", "Czech Republic": "CZE", "Ghana": "GHA", "Togo": "TGO",
	"Ukraine": "UKR", "Serbia and Montenegro": "SRB", "Serbia": "SRB", "Slovakia": "SVK",
	"Bosnia and Herzegovina": "BIH", "Iceland": "ISL", "Panama": "PAN", "Qatar": "QAT",
}

// iso2ByCountry maps team names to ISO2 codes for flag images. The UK
// home nations use the flagcdn subdivision codes.
var iso2ByCountry = map[string]string{
	"Germany": "de", "USA": "us", "Republic of Ireland": "ie", "Korea Republic": "kr",
	"South Korea": "kr", "Korea DPR": "kp", "North Korea": "kp", "IR Iran": "ir",
	"England": "gb-eng", "Scotland": "gb-sct", "Wales": "gb-wls", "Northern Ireland": "gb-nir",
	"Germany FR": "de", "Germany DR": "de", "West Germany": "de", "East Germany": "de",
	"Soviet Union": "ru", "Yugoslavia": "rs", "Czechoslovakia": "cz", "Dutch East Indies": "id",
	"Serbia and Montenegro": "rs", "Zaire": "cd",
	"Algeria": "dz", "Angola": "ao", "Argentina": "ar", "Australia": "au", "Austria": "at",
	"Belgium": "be", "Bolivia": "bo", "Bosnia and Herzegovina": "ba", "Brazil": "br",
	"Bulgaria": "bg", "Cameroon": "cm", "Canada": "ca", "Chile": "cl", "China PR": "cn",
	"Colombia": "co", "Costa Rica": "cr", "Cote d'Ivoire": "ci", "Côte d'Ivoire": "ci",
	"Croatia": "hr", "Cuba": "cu", "Czech Republic": "cz", "Denmark": "dk", "Ecuador": "ec",
	"Egypt": "eg", "El Salvador": "sv", "France": "fr", "Ghana": "gh", "Greece": "gr",
	"Haiti": "ht", "Honduras": "hn", "Hungary": "hu", "Iceland": "is", "Iran": "ir",
	"Iraq": "iq", "Israel": "il", "Italy": "it", "Jamaica": "jm", "Japan": "jp",
	"Kuwait": "kw", "Mexico": "mx", "Morocco": "ma", "Netherlands": "nl", "New Zealand": "nz",
	"Nigeria": "ng", "Norway": "no", "Panama": "pa", "Paraguay": "py", "Peru": "pe",
	"Poland": "pl", "Portugal": "pt", "Qatar": "qa", "Romania": "ro", "Russia": "ru",
	"Saudi Arabia": "sa", "Senegal": "sn", "Serbia": "rs", "Slovakia": "sk", "Slovenia": "si",
	"South Africa": "za", "Spain": "es", "Sweden": "se", "Switzerland": "ch", "Togo": "tg",
	"Trinidad and Tobago": "tt", "Tunisia": "tn", "Turkey": "tr", "Ukraine": "ua",
	"United Arab Emirates": "ae", "Uruguay": "uy",
}

// ContinentOf returns the continent for a host country, or "" if the
// country never hosted.
func ContinentOf(host string) string {
	return continentByHost[host]
}

// ISO3 returns the alpha-3 code a team name consolidates to, if known.
func ISO3(country string) (string, bool) {
	code, ok := iso3ByCountry[country]
	return code, ok
}

// ISO2 returns the alpha-2 (or subdivision) flag code, if known.
func ISO2(country string) (string, bool) {
	code, ok := iso2ByCountry[country]
	return code, ok
}

// FlagURL returns a flag image URL for a team name, or "" when the
// country has no flag mapping.
func FlagURL(country string) string {
	iso2, ok := ISO2(country)
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://flagcdn.com/w320/%s.png", iso2)
}
