package stats

import donationPort "github.com/jonuar/Donacrypto/internal/ports/donation"

// DashboardDTO is the creator dashboard view. Sub-queries that fail
// contribute their zero value; the dashboard as a whole never fails on a
// partial outage.
type DashboardDTO struct {
	FollowersCount int64                          `json:"followers_count"`
	PostsCount     int64                          `json:"posts_count"`
	Donations      *donationPort.DonationStatsDTO `json:"donations"`
}

// CreatorProfileDTO is the public creator profile with donation totals.
type CreatorProfileDTO struct {
	Username               string  `json:"username"`
	Bio                    string  `json:"bio"`
	AvatarURL              string  `json:"avatar_url"`
	TotalDonationsReceived float64 `json:"total_donations_received"`
	NumberOfDonations      int64   `json:"number_of_donations"`
}
