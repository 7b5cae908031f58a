package models

// ============================================================================
// CLAIM REQUESTS
// ============================================================================

type CreateClaimRequest struct {
	PolicyID      string     `json:"policy_id"`
	LandID        string     `json:"land_id"`
	FarmerID      string     `json:"farmer_id"`
	DamageType    DamageType `json:"damage_type"`
	DamageDate    string     `json:"damage_date"`
	Description   string     `json:"description"`
	EvidenceFiles []string   `json:"evidence_files,omitempty"`
	WeatherDataID *string    `json:"weather_data_id,omitempty"`
}

// UpdateClaimRequest carries a partial update; nil fields are left untouched.
type UpdateClaimRequest struct {
	Status             *ClaimStatus `json:"status,omitempty"`
	InspectionReportID *string      `json:"inspection_report_id,omitempty"`
	InspectorID        *string      `json:"inspector_id,omitempty"`
	Notes              *string      `json:"notes,omitempty"`
}

// ClaimFilter composes with AND semantics; empty fields are not applied.
type ClaimFilter struct {
	FarmerID    string
	Status      ClaimStatus
	InspectorID string
}

// ============================================================================
// APPLICATION REQUESTS
// ============================================================================

type CreateApplicationRequest struct {
	PolicyID        string          `json:"policy_id"`
	FarmerID        string          `json:"farmer_id"`
	ApplicationType ApplicationType `json:"application_type"`
	ClaimAmount     *float64        `json:"claim_amount,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

type UpdateApplicationRequest struct {
	Status      *ApplicationStatus `json:"status,omitempty"`
	InspectorID *string            `json:"inspector_id,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

type ApplicationFilter struct {
	PolicyID    string
	InspectorID string
}

// ============================================================================
// NOTIFICATION / ALERT REQUESTS
// ============================================================================

type NotificationFilter struct {
	UserID string
	IsRead *bool
}

type AlertFilter struct {
	FarmerID string
	IsRead   *bool
}

type CreateRiskAlertRequest struct {
	FarmerID  string        `json:"farmer_id"`
	AlertType AlertType     `json:"alert_type"`
	Severity  AlertSeverity `json:"severity"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	LandID    *string       `json:"land_id,omitempty"`
}

// ============================================================================
// SUPPORTING CRUD REQUESTS
// ============================================================================

type CreateFarmerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	Region   string `json:"region,omitempty"`
}

type UpdateFarmerRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Region   *string `json:"region,omitempty"`
}

type CreateInspectorRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Region   string `json:"region,omitempty"`
}

type UpdateInspectorRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Region   *string `json:"region,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

type CreateLandRequest struct {
	FarmerID     string          `json:"farmer_id"`
	Name         string          `json:"name"`
	AreaHectares float64         `json:"area_hectares,omitempty"`
	SoilType     string          `json:"soil_type,omitempty"`
	CropType     string          `json:"crop_type,omitempty"`
	Location     string          `json:"location,omitempty"`
	Boundary     *GeoJSONPolygon `json:"boundary,omitempty"`
}

type UpdateLandRequest struct {
	Name     *string         `json:"name,omitempty"`
	SoilType *string         `json:"soil_type,omitempty"`
	CropType *string         `json:"crop_type,omitempty"`
	Location *string         `json:"location,omitempty"`
	Boundary *GeoJSONPolygon `json:"boundary,omitempty"`
}

type CreatePolicyRequest struct {
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	CropType       string       `json:"crop_type,omitempty"`
	CoverageAmount float64      `json:"coverage_amount"`
	PremiumRate    float64      `json:"premium_rate"`
	DurationMonths int          `json:"duration_months"`
	CoveredPerils  []DamageType `json:"covered_perils,omitempty"`
}

type UpdatePolicyRequest struct {
	Name           *string      `json:"name,omitempty"`
	Description    *string      `json:"description,omitempty"`
	CropType       *string      `json:"crop_type,omitempty"`
	CoverageAmount *float64     `json:"coverage_amount,omitempty"`
	PremiumRate    *float64     `json:"premium_rate,omitempty"`
	DurationMonths *int         `json:"duration_months,omitempty"`
	CoveredPerils  []DamageType `json:"covered_perils,omitempty"`
	Active         *bool        `json:"active,omitempty"`
}

type CreateSupportMessageRequest struct {
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ReplySupportMessageRequest struct {
	Reply string `json:"reply"`
	Close bool   `json:"close,omitempty"`
}

// ============================================================================
// AUTH REQUESTS
// ============================================================================

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}
