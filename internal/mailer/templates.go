package mailer

import "fmt"

const (
	SubjectDonationApproved = "Donation Approved"
	SubjectDonationRejected = "Donation Rejected"
	SubjectRequestApproved  = "Request Approved"
	SubjectRequestRejected  = "Request Rejected"
)

func DonationApprovedBody(donorName, campaignTitle string) string {
	return fmt.Sprintf(
		"Dear %s,\n\nThank you for your generous donation towards %s. Your donation has been approved.\n\nRegards,\nDonations Team",
		donorName, campaignTitle,
	)
}

func DonationRejectedBody(donorName, campaignTitle string) string {
	return fmt.Sprintf(
		"Dear %s,\n\nUnfortunately, your donation towards %s has been rejected. For any queries, please contact us.\n\nRegards,\nDonations Team",
		donorName, campaignTitle,
	)
}

func RequestApprovedBody(userName string) string {
	return fmt.Sprintf(
		"Dear %s,\n\nYour assistance request has been approved by the admin.\n\nRegards,\nDonations Team",
		userName,
	)
}

func RequestRejectedBody(userName string) string {
	return fmt.Sprintf(
		"Dear %s,\n\nYour assistance request has been rejected by the admin.\n\nRegards,\nDonations Team",
		userName,
	)
}
