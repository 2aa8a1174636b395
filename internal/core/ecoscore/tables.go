package ecoscore

// scoreEntry pairs a lower-cased substring key with its eco-score.
//
// The tables below are ordered lists scanned linearly, first match wins.
// Order is load-bearing for overlapping keys, so these must never be turned
// into maps.
type scoreEntry struct {
	key   string
	score int
}

// merchantScores is checked first, against the lower-cased merchant name.
var merchantScores = []scoreEntry{
	{"whole foods", 85},
	{"trader joe's", 80},
	{"farmers market", 95},
	{"amazon", 60},
	{"walmart", 55},
	{"target", 65},
	{"h&m", 45},
	{"zara", 40},
	{"patagonia", 90},
	{"uber", 60},
	{"lyft", 62},
	{"public transit", 90},
	{"starbucks", 65},
	{"local coffee", 85},
	{"mcdonald's", 40},
	{"chipotle", 70},
}

// categoryScores is the fallback when no merchant entry matches.
var categoryScores = []scoreEntry{
	{"groceries", 75},
	{"shopping", 50},
	{"transportation", 60},
	{"dining", 65},
	{"utilities", 70},
	{"entertainment", 65},
	{"housing", 55},
	{"health", 80},
	{"education", 85},
	{"travel", 45},
	{"other", 60},
}

// DefaultScore is returned when neither table matches.
const DefaultScore = 60

// alternativeCategories and alternativeMerchants drive the greener-alternative
// suggestion for transactions scoring below the threshold.
var alternativeCategories = []string{"shopping", "transportation", "dining", "groceries"}

var alternativeMerchants = []string{"h&m", "zara", "uber", "lyft", "starbucks", "walmart", "mcdonald's"}

// SustainableThreshold is the minimum eco-score for a transaction to count as
// a sustainable purchase.
const SustainableThreshold = 70

// noAlternativesThreshold short-circuits alternative suggestions for
// already-green transactions.
const noAlternativesThreshold = 80
