package model

// Pricing holds the per-foot rates used to quote a job.
type Pricing struct {
	RetailPerFoot  float64 `json:"retail_per_foot"` // List price per linear foot
	SalePerFoot    float64 `json:"sale_per_foot"`   // Discounted price per linear foot
	ControllerCost float64 `json:"controller_cost"` // Flat controller charge
	ExtraDiscount  float64 `json:"extra_discount"`  // Flat discount off the sale total
}

func DefaultPricing() Pricing {
	return Pricing{
		RetailPerFoot:  35,
		SalePerFoot:    22,
		ControllerCost: 300,
		ExtraDiscount:  0,
	}
}

// Quote holds the result of a pricing calculation.
type Quote struct {
	TotalFeet    float64 `json:"total_feet"`
	RetailTotal  float64 `json:"retail_total"`
	SaleTotal    float64 `json:"sale_total"`
	TotalSavings float64 `json:"total_savings"`
}

// CalculateQuote prices a job from its grand total length.
// Negative or NaN lengths are priced as zero feet.
func CalculateQuote(totalFeet float64, p Pricing) Quote {
	if !(totalFeet > 0) {
		totalFeet = 0
	}

	retail := totalFeet*p.RetailPerFoot + p.ControllerCost
	sale := totalFeet*p.SalePerFoot + p.ControllerCost - p.ExtraDiscount

	return Quote{
		TotalFeet:    totalFeet,
		RetailTotal:  retail,
		SaleTotal:    sale,
		TotalSavings: retail - sale,
	}
}
