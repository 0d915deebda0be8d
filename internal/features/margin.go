package features

// NetProfitMargin is profit over epsilon-guarded revenue. Total function:
// zero revenue with zero profit yields 0, never NaN and never an error.
func NetProfitMargin(profit, revenue, epsilon float64) float64 {
	return SafeDiv(profit, revenue, epsilon)
}
