package courier

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidDocument(documentID string) bool {
	return strings.TrimSpace(documentID) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status string) bool {
	switch status {
	case "AVAILABLE", "EN_ROUTE", "MAINTENANCE", "INACTIVE", "RESTING":
		return true
	default:
		return false
	}
}

func isValidLicense(licenseType string) bool {
	switch licenseType {
	case "TYPE_A", "TYPE_B", "TYPE_C", "TYPE_E":
		return true
	default:
		return false
	}
}

func isValidScore(score int) bool {
	return score >= 1 && score <= 5
}
