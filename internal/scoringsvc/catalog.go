package scoringsvc

// CityInfo carries the per-city lookup values used as model features.
type CityInfo struct {
	Lat     float64
	Long    float64
	State   string
	Zip     int
	CityPop int
}

// MerchantInfo carries the merchant location lookup.
type MerchantInfo struct {
	MerchLat  float64
	MerchLong float64
}

// Defaults when a city is not in the catalog: the geographic center of the
// contiguous US and a mid-size population.
var defaultCity = CityInfo{Lat: 39.8283, Long: -98.5795, State: "KS", Zip: 66101, CityPop: 50000}

// cityCatalog mirrors the lookup table the original service aggregated
// from its transaction dataset.
var cityCatalog = map[string]CityInfo{
	"Aliso Viejo":    {Lat: 33.5686, Long: -117.7267, State: "CA", Zip: 92656, CityPop: 50044},
	"Birmingham":     {Lat: 33.5186, Long: -86.8104, State: "AL", Zip: 35203, CityPop: 209880},
	"Bozeman":        {Lat: 45.6770, Long: -111.0429, State: "MT", Zip: 59715, CityPop: 53293},
	"Cedar Rapids":   {Lat: 41.9779, Long: -91.6656, State: "IA", Zip: 52401, CityPop: 137710},
	"Columbia":       {Lat: 34.0007, Long: -81.0348, State: "SC", Zip: 29201, CityPop: 136632},
	"Fort Washakie":  {Lat: 43.0063, Long: -108.8964, State: "WY", Zip: 82514, CityPop: 1759},
	"Houston":        {Lat: 29.7604, Long: -95.3698, State: "TX", Zip: 77002, CityPop: 2304580},
	"Mesa":           {Lat: 33.4152, Long: -111.8315, State: "AZ", Zip: 85201, CityPop: 504258},
	"Naples":         {Lat: 26.1420, Long: -81.7948, State: "FL", Zip: 34102, CityPop: 21812},
	"Phoenix":        {Lat: 33.4484, Long: -112.0740, State: "AZ", Zip: 85003, CityPop: 1608139},
	"Portland":       {Lat: 45.5152, Long: -122.6784, State: "OR", Zip: 97201, CityPop: 652503},
	"Sutherland":     {Lat: 41.1561, Long: -101.1265, State: "NE", Zip: 69165, CityPop: 1286},
	"Tulsa":          {Lat: 36.1540, Long: -95.9928, State: "OK", Zip: 74103, CityPop: 413066},
	"Westfield":      {Lat: 40.6590, Long: -74.3474, State: "NJ", Zip: 7090, CityPop: 30316},
}

var merchantCatalog = map[string]MerchantInfo{
	"fraud_Kirlin and Sons":          {MerchLat: 33.9862, MerchLong: -118.2537},
	"fraud_Sporer-Keebler":           {MerchLat: 29.3902, MerchLong: -94.9436},
	"fraud_Swaniawski, Nitzsche and Welch": {MerchLat: 40.4931, MerchLong: -74.4350},
	"fraud_Haley Group":              {MerchLat: 36.4301, MerchLong: -95.8121},
	"fraud_Johnston-Casper":          {MerchLat: 45.9060, MerchLong: -110.3202},
	"fraud_Daugherty LLC":            {MerchLat: 33.1191, MerchLong: -112.6430},
	"fraud_Romaguera Ltd":            {MerchLat: 26.5235, MerchLong: -81.2247},
	"fraud_Reichel LLC":              {MerchLat: 41.4861, MerchLong: -91.2470},
	"fraud_Goyette, Howell and Collier": {MerchLat: 34.5211, MerchLong: -80.6743},
	"fraud_Kilback LLC":              {MerchLat: 45.0179, MerchLong: -122.2431},
	"fraud_Cormier LLC":              {MerchLat: 33.0333, MerchLong: -86.3038},
	"fraud_Schumm PLC":               {MerchLat: 41.9001, MerchLong: -101.6239},
}

var categoryCatalog = []string{
	"entertainment",
	"food_dining",
	"gas_transport",
	"grocery_net",
	"grocery_pos",
	"health_fitness",
	"home",
	"kids_pets",
	"misc_net",
	"misc_pos",
	"personal_care",
	"shopping_net",
	"shopping_pos",
	"travel",
}

// Card-not-present categories carry more fraud weight than in-person ones.
var cnpCategories = map[string]bool{
	"grocery_net":  true,
	"misc_net":     true,
	"shopping_net": true,
}
