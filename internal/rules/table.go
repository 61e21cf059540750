// Package rules holds the static categorization rule table and loaders for
// alternate tables. The table is read-only configuration data; ordering is
// significant because the matcher breaks confidence ties by rule position.
package rules

import "github.com/centsible/centsible/internal/model"

// Default returns the built-in rule table. Several categories appear more
// than once on purpose; each rule is an independent signal source with its
// own keyword set and weight.
func Default() []model.Rule {
	return []model.Rule{
		// Food & dining
		{
			Keywords:   []string{"restaurant", "cafe", "coffee", "starbucks", "mcdonalds", "pizza", "burger", "food", "dining", "lunch", "dinner", "breakfast", "delivery", "takeout", "grubhub", "doordash", "ubereats"},
			Category:   "food",
			Confidence: 0.9,
		},
		{
			Keywords:   []string{"grocery", "supermarket", "walmart", "target", "safeway", "kroger", "whole foods", "trader joe"},
			Category:   "food",
			Confidence: 0.8,
		},

		// Transport
		{
			Keywords:   []string{"gas", "fuel", "shell", "bp", "exxon", "chevron", "mobil", "station"},
			Category:   "fuel",
			Confidence: 0.9,
		},
		{
			Keywords:   []string{"uber", "lyft", "taxi", "cab", "bus", "metro", "subway", "train", "parking", "toll"},
			Category:   "transport",
			Confidence: 0.9,
		},
		{
			Keywords:   []string{"car payment", "auto loan", "insurance", "registration", "smog", "repair", "mechanic", "oil change"},
			Category:   "transport",
			Confidence: 0.8,
		},

		// Shopping
		{
			Keywords:   []string{"amazon", "ebay", "shopping", "store", "mall", "retail", "purchase", "buy"},
			Category:   "shopping",
			Confidence: 0.7,
		},
		{
			Keywords:   []string{"clothing", "shoes", "fashion", "apparel", "nike", "adidas", "h&m", "zara"},
			Category:   "shopping",
			Confidence: 0.8,
		},

		// Entertainment
		{
			Keywords:   []string{"movie", "cinema", "theater", "netflix", "spotify", "game", "concert", "ticket", "entertainment"},
			Category:   "entertainment",
			Confidence: 0.8,
		},
		{
			Keywords:   []string{"bar", "club", "pub", "brewery", "wine", "alcohol", "drinks"},
			Category:   "entertainment",
			Confidence: 0.7,
		},

		// Utilities
		{
			Keywords:   []string{"electric", "electricity", "gas bill", "water", "sewer", "internet", "phone", "cable", "utility"},
			Category:   "utilities",
			Confidence: 0.9,
		},
		{
			Keywords:   []string{"verizon", "at&t", "tmobile", "sprint", "comcast", "xfinity"},
			Category:   "utilities",
			Confidence: 0.8,
		},

		// Healthcare
		{
			Keywords:   []string{"doctor", "hospital", "pharmacy", "medical", "dental", "dentist", "clinic", "health", "cvs", "walgreens"},
			Category:   "healthcare",
			Confidence: 0.9,
		},
		{
			Keywords:   []string{"prescription", "medicine", "drug", "copay", "insurance"},
			Category:   "healthcare",
			Confidence: 0.8,
		},

		// Housing
		{
			Keywords:   []string{"rent", "mortgage", "lease", "apartment", "house", "property", "hoa", "maintenance"},
			Category:   "housing",
			Confidence: 0.9,
		},

		// Education
		{
			Keywords:   []string{"school", "university", "college", "tuition", "books", "education", "course", "class"},
			Category:   "education",
			Confidence: 0.9,
		},

		// Fitness
		{
			Keywords:   []string{"gym", "fitness", "yoga", "personal trainer", "workout", "sports", "athletic"},
			Category:   "fitness",
			Confidence: 0.8,
		},

		// Gifts
		{
			Keywords:   []string{"gift", "present", "birthday", "anniversary", "wedding", "donation", "charity"},
			Category:   "gifts",
			Confidence: 0.8,
		},

		// Coffee (specialized category)
		{
			Keywords:   []string{"coffee", "starbucks", "dunkin", "peets", "cafe", "espresso", "latte"},
			Category:   "coffee",
			Confidence: 0.9,
		},
	}
}
