package models

type ClaimStatus string

const (
	ClaimPending     ClaimStatus = "pending"
	ClaimUnderReview ClaimStatus = "under_review"
	ClaimApproved    ClaimStatus = "approved"
	ClaimRejected    ClaimStatus = "rejected"
)

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimPending, ClaimUnderReview, ClaimApproved, ClaimRejected:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

type DamageType string

const (
	DamageFlood   DamageType = "flood"
	DamageDrought DamageType = "drought"
	DamagePest    DamageType = "pest"
	DamageStorm   DamageType = "storm"
	DamageFire    DamageType = "fire"
	DamageOther   DamageType = "other"
)

func (d DamageType) IsValid() bool {
	switch d {
	case DamageFlood, DamageDrought, DamagePest, DamageStorm, DamageFire, DamageOther:
		return true
	}
	return false
}

type ApplicationType string

const (
	ApplicationNewClaim       ApplicationType = "new_claim"
	ApplicationRenewal        ApplicationType = "renewal"
	ApplicationCoverageChange ApplicationType = "coverage_change"
)

func (t ApplicationType) IsValid() bool {
	switch t {
	case ApplicationNewClaim, ApplicationRenewal, ApplicationCoverageChange:
		return true
	}
	return false
}

type RelatedEntityType string

const (
	RelatedClaim  RelatedEntityType = "claim"
	RelatedPolicy RelatedEntityType = "policy"
	RelatedSystem RelatedEntityType = "system"
)

type AlertType string

const (
	AlertWeather AlertType = "weather"
	AlertPest    AlertType = "pest"
)

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

type SupportStatus string

const (
	SupportOpen     SupportStatus = "open"
	SupportAnswered SupportStatus = "answered"
	SupportClosed   SupportStatus = "closed"
)
