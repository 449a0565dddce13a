package donation

import "foodshare-backend/domain"

// donationTransitions is the donation lifecycle graph. available is the only
// entry state; delivered, expired and rejected are terminal.
var donationTransitions = map[string][]string{
	domain.DonationStatusAvailable: {
		domain.DonationStatusRequested,
		domain.DonationStatusExpired,
		domain.DonationStatusRejected,
	},
	domain.DonationStatusRequested: {
		domain.DonationStatusInTransit,
		domain.DonationStatusRejected,
	},
	domain.DonationStatusInTransit: {
		domain.DonationStatusDelivered,
	},
	domain.DonationStatusDelivered: {},
	domain.DonationStatusExpired:   {},
	domain.DonationStatusRejected:  {},
}

// adminOnlyTargets marks states only an administrative override may reach.
var adminOnlyTargets = map[string]bool{
	domain.DonationStatusRejected: true,
}

func isValidStatus(status string) bool {
	_, ok := donationTransitions[status]
	return ok
}

func isValidCategory(category string) bool {
	switch category {
	case domain.FoodCategoryPerishable, domain.FoodCategoryNonPerishable, domain.FoodCategoryPrepared:
		return true
	}
	return false
}

func canTransition(from, to string) bool {
	for _, next := range donationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
