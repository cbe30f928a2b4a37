package scoringsvc

import (
	"math"
	"sort"
	"time"

	"github.com/securebank/frauddesk/internal/domain"
)

// Predictor scores transactions with a deterministic heuristic standing in
// for the trained model the original service loaded at startup. Given the
// same transaction at the same clock time it always produces the same
// score, which makes the service contract easy to test end to end.
type Predictor struct {
	now func() time.Time
}

// NewPredictor creates a predictor. now may be nil to use the wall clock;
// tests pin it for reproducible time features.
func NewPredictor(now func() time.Time) *Predictor {
	if now == nil {
		now = time.Now
	}
	return &Predictor{now: now}
}

// Options returns the sorted dropdown catalogs.
func (p *Predictor) Options() (merchants, categories, cities []string) {
	for m := range merchantCatalog {
		merchants = append(merchants, m)
	}
	for c := range cityCatalog {
		cities = append(cities, c)
	}
	categories = append(categories, categoryCatalog...)

	sort.Strings(merchants)
	sort.Strings(cities)
	sort.Strings(categories)
	return merchants, categories, cities
}

// Predict scores one transaction. The feature set mirrors the original
// model's inputs: amount, customer/merchant distance, time of day, weekend
// flag, card-not-present category and city population.
func (p *Predictor) Predict(input domain.TransactionInput) domain.RiskAssessment {
	city, ok := cityCatalog[input.City]
	if !ok {
		city = defaultCity
	}

	merch, ok := merchantCatalog[input.Merchant]
	if !ok {
		// Unknown merchant: assume it sits near the transaction city.
		merch = MerchantInfo{MerchLat: city.Lat + 0.01, MerchLong: city.Long + 0.01}
	}

	now := p.now()
	hour := now.Hour()
	weekday := now.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	distance := haversineKm(city.Lat, city.Long, merch.MerchLat, merch.MerchLong)

	// Logistic over hand-tuned feature weights. Amount dominates, as it
	// did in the trained model's feature importances.
	z := -3.2
	z += 1.1 * math.Log1p(input.Amount/100)
	z += 0.004 * math.Min(distance, 500)
	if hour < 6 || hour >= 23 {
		z += 0.8 // late-night transactions
	}
	if isWeekend {
		z += 0.2
	}
	if cnpCategories[input.Category] {
		z += 0.7
	}
	if city.CityPop < 10000 {
		z += 0.3 // small towns see relatively more card skimming
	}

	proba := 1 / (1 + math.Exp(-z))
	score := clampScore(int(math.Round(proba * 100)))
	level, decision := domain.Classify(score)

	return domain.RiskAssessment{
		RiskScore:   score,
		Probability: math.Round(proba*10000) / 10000,
		RiskLevel:   level,
		Decision:    decision,
	}
}

// haversineKm returns the distance in km between two lat/long points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	lat1, lon1, lat2, lon2 = rad(lat1), rad(lon1), rad(lat2), rad(lon2)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 99 {
		return 99
	}
	return score
}
