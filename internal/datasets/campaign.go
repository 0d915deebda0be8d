package datasets

import "tailwagg-analytics/internal/domain"

// CampaignTimeline returns the static Q4/Q1 campaign planning reference.
// The rows are fixed marketing-calendar content, not derived from sales
// data, and are emitted verbatim on every run.
func CampaignTimeline() []domain.CampaignPhase {
	return []domain.CampaignPhase{
		{
			CampaignPhase:         "Early Bird Holiday",
			StartDate:             "2025-10-20",
			EndDate:               "2025-11-10",
			DurationDays:          22,
			TargetAudience:        "Loyalty members and high-value customers",
			TargetProducts:        "High-margin declining Accessories, Wellness",
			Channels:              "Email/SMS",
			MessagingTheme:        "Be the first to save on holiday must-haves",
			RecommendedCategories: "Accessories, Wellness",
			DiscountRange:         "15-20%",
		},
		{
			CampaignPhase:         "Pre-Black Friday",
			StartDate:             "2025-11-11",
			EndDate:               "2025-11-27",
			DurationDays:          17,
			TargetAudience:        "All customers",
			TargetProducts:        "Grooming, Toys bundles",
			Channels:              "Paid Social (Instagram/TikTok)",
			MessagingTheme:        "Get ready for the biggest savings",
			RecommendedCategories: "Grooming, Toys",
			DiscountRange:         "10-15%",
		},
		{
			CampaignPhase:         "Black Friday/Cyber Monday",
			StartDate:             "2025-11-28",
			EndDate:               "2025-12-02",
			DurationDays:          5,
			TargetAudience:        "All customers - omnichannel",
			TargetProducts:        "All reactivation targets + top performers",
			Channels:              "Social, Email, Paid Search, Amazon",
			MessagingTheme:        "Biggest savings of the year + Limited stock urgency",
			RecommendedCategories: "All categories",
			DiscountRange:         "20-30%",
		},
		{
			CampaignPhase:         "Holiday Gifting",
			StartDate:             "2025-12-03",
			EndDate:               "2025-12-20",
			DurationDays:          18,
			TargetAudience:        "Gift buyers, first-time customers",
			TargetProducts:        "Toys, Treats bundles, Accessories",
			Channels:              "Instagram/TikTok Ads, Paid Search",
			MessagingTheme:        "Perfect presents for your pup + Free gift wrapping",
			RecommendedCategories: "Toys, Treats, Accessories",
			DiscountRange:         "15-25%",
		},
		{
			CampaignPhase:         "Last Minute Rush",
			StartDate:             "2025-12-21",
			EndDate:               "2025-12-24",
			DurationDays:          4,
			TargetAudience:        "Last-minute shoppers",
			TargetProducts:        "Fast-ship, digital products",
			Channels:              "Search + Email urgency",
			MessagingTheme:        "Still time for pup gifts! Express shipping available",
			RecommendedCategories: "Toys, Treats",
			DiscountRange:         "10-20%",
		},
		{
			CampaignPhase:         "New Year Wellness",
			StartDate:             "2025-12-26",
			EndDate:               "2026-01-15",
			DurationDays:          21,
			TargetAudience:        "Health-conscious pet parents, subscription customers",
			TargetProducts:        "Wellness category (supplements, vitamins)",
			Channels:              "Paid Search, Email",
			MessagingTheme:        "New year, healthier dog + Subscription upgrades",
			RecommendedCategories: "Wellness",
			DiscountRange:         "15-20%",
		},
	}
}
