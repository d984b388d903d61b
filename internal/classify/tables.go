package classify

// DefaultSecuredTypes lists account-type names treated as collateral-backed.
func DefaultSecuredTypes() []string {
	return []string{
		"Housing Loan", "Property Loan", "Auto Loan", "Gold Loan",
		"Two Wheeler Loan", "Tractor Loan", "Construction Equipment Loan",
		"Secured", "Loan Against Shares", "Home Loan",
		"Commercial Vehicle Loan",
	}
}

// DefaultUnsecuredTypes lists account-type names with no collateral backing.
func DefaultUnsecuredTypes() []string {
	return []string{
		"Personal Loan", "Credit Card", "Consumer Loan", "Business Loan",
		"Education Loan", "Overdraft", "Kisan Credit Card", "Unsecured",
		"Professional Loan", "Credit Card Loan",
	}
}

// DefaultSevereKeywords lists derogatory status markers, most severe first.
// Matching is case-insensitive substring containment over the free-text
// status field.
func DefaultSevereKeywords() []string {
	return []string{
		"SUIT", "WILFUL", "LSS", "WOF", "WRITTEN OFF", "SETTLED",
		"DBT", "DOUBTFUL", "SUBSTANDARD", "SMA",
	}
}
