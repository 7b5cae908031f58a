package models

// Collection names in the record store.
const (
	CollectionFarmers         = "farmers"
	CollectionInspectors      = "inspectors"
	CollectionLands           = "lands"
	CollectionPolicies        = "insurance_policies"
	CollectionApplications    = "insurance_applications"
	CollectionClaims          = "insurance_claims"
	CollectionNotifications   = "notifications"
	CollectionRiskAlerts      = "risk_alerts"
	CollectionSupportMessages = "support_messages"
)

// Timestamps are stored as RFC3339 strings; the record store is plain JSON.

// Claim is a farmer's damage report filed against a policy and land parcel.
type Claim struct {
	ID                 string      `json:"-"`
	PolicyID           string      `json:"policy_id"`
	LandID             string      `json:"land_id"`
	FarmerID           string      `json:"farmer_id"`
	DamageType         DamageType  `json:"damage_type"`
	DamageDate         string      `json:"damage_date"`
	Description        string      `json:"description"`
	EvidenceFiles      []string    `json:"evidence_files,omitempty"`
	WeatherDataID      *string     `json:"weather_data_id,omitempty"`
	InspectorID        *string     `json:"inspector_id,omitempty"`
	InspectionReportID *string     `json:"inspection_report_id,omitempty"`
	Status             ClaimStatus `json:"status"`
	Notes              *string     `json:"notes,omitempty"`
	CreatedAt          string      `json:"created_at"`
	UpdatedAt          string      `json:"updated_at"`
}

// InsuranceApplication is a farmer's request against a policy, distinct from a Claim.
type InsuranceApplication struct {
	ID              string            `json:"-"`
	PolicyID        string            `json:"policy_id"`
	FarmerID        string            `json:"farmer_id"`
	ApplicationType ApplicationType   `json:"application_type"`
	ClaimAmount     *float64          `json:"claim_amount,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	Status          ApplicationStatus `json:"status"`
	InspectorID     *string           `json:"inspector_id,omitempty"`
	AppliedAt       string            `json:"applied_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// Notification is a stored, addressed, read-tracked event record.
type Notification struct {
	ID          string            `json:"-"`
	UserID      string            `json:"user_id"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	RelatedType RelatedEntityType `json:"related_type"`
	RelatedID   string            `json:"related_id"`
	IsRead      bool              `json:"is_read"`
	CreatedAt   string            `json:"created_at"`
	ReadAt      *string           `json:"read_at,omitempty"`
}

// RiskAlert is shaped like a Notification but sourced from external hazard feeds.
type RiskAlert struct {
	ID        string        `json:"-"`
	FarmerID  string        `json:"farmer_id"`
	AlertType AlertType     `json:"alert_type"`
	Severity  AlertSeverity `json:"severity"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	LandID    *string       `json:"land_id,omitempty"`
	IsRead    bool          `json:"is_read"`
	CreatedAt string        `json:"created_at"`
	ReadAt    *string       `json:"read_at,omitempty"`
}

type Farmer struct {
	ID        string `json:"-"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	Region    string `json:"region,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Inspector struct {
	ID        string `json:"-"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Region    string `json:"region,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Land struct {
	ID           string          `json:"-"`
	FarmerID     string          `json:"farmer_id"`
	Name         string          `json:"name"`
	AreaHectares float64         `json:"area_hectares"`
	SoilType     string          `json:"soil_type,omitempty"`
	CropType     string          `json:"crop_type,omitempty"`
	Location     string          `json:"location,omitempty"`
	Boundary     *GeoJSONPolygon `json:"boundary,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type Policy struct {
	ID             string       `json:"-"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	CropType       string       `json:"crop_type,omitempty"`
	CoverageAmount float64      `json:"coverage_amount"`
	PremiumRate    float64      `json:"premium_rate"`
	DurationMonths int          `json:"duration_months"`
	CoveredPerils  []DamageType `json:"covered_perils,omitempty"`
	Active         bool         `json:"active"`
	CreatedAt      string       `json:"created_at"`
	UpdatedAt      string       `json:"updated_at"`
}

type SupportMessage struct {
	ID        string        `json:"-"`
	UserID    string        `json:"user_id"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    SupportStatus `json:"status"`
	Reply     *string       `json:"reply,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}
