package services

import (
	"context"
	"testing"
	"time"

	"insurance-service/internal/models"
	"insurance-service/internal/repository"
	"insurance-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

const testAdminID = "admin"

type testEnv struct {
	store         *store.MemoryStore
	claims        *ClaimService
	applications  *ApplicationService
	notifications *NotificationService
	lands         *LandService
	support       *SupportService

	farmerID string
	policyID string
	landID   string
}

// newTestEnv wires the services over an in-memory store and seeds one
// farmer, one policy and one land parcel.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	memStore := store.NewMemoryStore()

	farmerRepo := repository.NewFarmerRepository(memStore)
	landRepo := repository.NewLandRepository(memStore)
	policyRepo := repository.NewPolicyRepository(memStore, nil)
	claimRepo := repository.NewClaimRepository(memStore)
	applicationRepo := repository.NewApplicationRepository(memStore)
	notificationRepo := repository.NewNotificationRepository(memStore)
	supportRepo := repository.NewSupportRepository(memStore)

	notifier := NewNotificationService(notificationRepo, nil)

	now := time.Now().UTC().Format(time.RFC3339)
	farmerID, err := farmerRepo.Create(ctx, &models.Farmer{
		FullName:  "Nguyen Van A",
		Email:     "nguyenvana@example.com",
		Phone:     "+84901234567",
		Region:    "Mekong Delta",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	policyID, err := policyRepo.Create(ctx, &models.Policy{
		Name:           "Rice Flood Cover",
		CropType:       "rice",
		CoverageAmount: 50000000,
		PremiumRate:    0.05,
		DurationMonths: 12,
		CoveredPerils:  []models.DamageType{models.DamageFlood, models.DamageStorm},
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	require.NoError(t, err)

	landID, err := landRepo.Create(ctx, &models.Land{
		FarmerID:     farmerID,
		Name:         "North paddy",
		AreaHectares: 2.5,
		CropType:     "rice",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	return &testEnv{
		store:         memStore,
		claims:        NewClaimService(claimRepo, policyRepo, landRepo, farmerRepo, notifier, testAdminID),
		applications:  NewApplicationService(applicationRepo, policyRepo, farmerRepo, notifier, false),
		notifications: notifier,
		lands:         NewLandService(landRepo, farmerRepo),
		support:       NewSupportService(supportRepo, notifier),
		farmerID:      farmerID,
		policyID:      policyID,
		landID:        landID,
	}
}

func (e *testEnv) validClaimRequest() models.CreateClaimRequest {
	return models.CreateClaimRequest{
		PolicyID:    e.policyID,
		LandID:      e.landID,
		FarmerID:    e.farmerID,
		DamageType:  models.DamageFlood,
		DamageDate:  "2026-08-15",
		Description: "Field flooded after three days of heavy rain.",
	}
}

// userNotifications returns the stored notifications addressed to userID.
func (e *testEnv) userNotifications(t *testing.T, userID string) []models.Notification {
	t.Helper()
	byKey, err := e.notifications.List(context.Background(), models.NotificationFilter{UserID: userID})
	require.NoError(t, err)
	result := make([]models.Notification, 0, len(byKey))
	for _, n := range byKey {
		result = append(result, n)
	}
	return result
}

func notificationTitles(notifications []models.Notification) []string {
	titles := make([]string, 0, len(notifications))
	for _, n := range notifications {
		titles = append(titles, n.Title)
	}
	return titles
}

func claimStatus(s models.ClaimStatus) *models.ClaimStatus { return &s }
func strRef(s string) *string                              { return &s }

// ============================================================================
// TEST SUITE 1: CLAIM CREATION
// ============================================================================

func TestCreateClaim_StartsPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)
	require.NotEmpty(t, key)

	claim, err := env.claims.GetClaim(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, models.ClaimPending, claim.Status)
	assert.Equal(t, env.policyID, claim.PolicyID)
	assert.Equal(t, env.landID, claim.LandID)
	assert.Equal(t, env.farmerID, claim.FarmerID)
	assert.Equal(t, models.DamageFlood, claim.DamageType)
	assert.Equal(t, key, claim.ID)
	assert.NotEmpty(t, claim.CreatedAt)
	assert.Equal(t, claim.CreatedAt, claim.UpdatedAt)
}

func TestCreateClaim_MissingRequiredFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		field  string
		mutate func(*models.CreateClaimRequest)
	}{
		{"policy_id", func(r *models.CreateClaimRequest) { r.PolicyID = "" }},
		{"land_id", func(r *models.CreateClaimRequest) { r.LandID = "" }},
		{"farmer_id", func(r *models.CreateClaimRequest) { r.FarmerID = "" }},
		{"damage_type", func(r *models.CreateClaimRequest) { r.DamageType = "" }},
		{"damage_date", func(r *models.CreateClaimRequest) { r.DamageDate = "" }},
		{"description", func(r *models.CreateClaimRequest) { r.Description = "" }},
	}

	for _, tc := range cases {
		req := env.validClaimRequest()
		tc.mutate(&req)

		_, err := env.claims.CreateClaim(ctx, req)
		require.Error(t, err, "missing %s must be rejected", tc.field)
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Contains(t, err.Error(), tc.field)
	}
}

func TestCreateClaim_InvalidDamageType(t *testing.T) {
	env := newTestEnv(t)

	req := env.validClaimRequest()
	req.DamageType = "earthquake"

	_, err := env.claims.CreateClaim(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateClaim_UnknownPolicyRejected(t *testing.T) {
	env := newTestEnv(t)

	req := env.validClaimRequest()
	req.PolicyID = "no-such-policy"

	_, err := env.claims.CreateClaim(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateClaim_NotifiesFarmerAndAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)

	farmerNotifications := env.userNotifications(t, env.farmerID)
	require.Len(t, farmerNotifications, 1)
	assert.Equal(t, "Claim Filed", farmerNotifications[0].Title)
	assert.Equal(t, models.RelatedClaim, farmerNotifications[0].RelatedType)
	assert.Equal(t, key, farmerNotifications[0].RelatedID)
	assert.False(t, farmerNotifications[0].IsRead)

	adminNotifications := env.userNotifications(t, testAdminID)
	require.Len(t, adminNotifications, 1)
	assert.Equal(t, "New Claim Filed", adminNotifications[0].Title)
}

// ============================================================================
// TEST SUITE 2: CLAIM UPDATES AND FAN-OUT
// ============================================================================

func TestUpdateClaim_StatusChangeNotifiesFarmerOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)
	before := len(env.userNotifications(t, env.farmerID))

	claim, err := env.claims.UpdateClaim(ctx, key, models.UpdateClaimRequest{
		Status: claimStatus(models.ClaimApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ClaimApproved, claim.Status)

	after := env.userNotifications(t, env.farmerID)
	require.Len(t, after, before+1)
	assert.Contains(t, notificationTitles(after), "Claim Approved")
}

func TestUpdateClaim_SameStatusEmitsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)
	before := len(env.userNotifications(t, env.farmerID))

	// Resubmitting the current status is a no-op transition.
	_, err = env.claims.UpdateClaim(ctx, key, models.UpdateClaimRequest{
		Status: claimStatus(models.ClaimPending),
	})
	require.NoError(t, err)

	assert.Len(t, env.userNotifications(t, env.farmerID), before)
}

func TestUpdateClaim_InvalidStatusRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)

	_, err = env.claims.UpdateClaim(ctx, key, models.UpdateClaimRequest{
		Status: claimStatus("archived"),
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	claim, err := env.claims.GetClaim(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, models.ClaimPending, claim.Status)
}

func TestUpdateClaim_InspectorAssignmentNotifiesBothParties(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)

	claim, err := env.claims.UpdateClaim(ctx, key, models.UpdateClaimRequest{
		InspectorID: strRef("inspector-7"),
	})
	require.NoError(t, err)
	require.NotNil(t, claim.InspectorID)
	assert.Equal(t, "inspector-7", *claim.InspectorID)

	inspectorNotifications := env.userNotifications(t, "inspector-7")
	require.Len(t, inspectorNotifications, 1)
	assert.Equal(t, "New Inspection Assignment", inspectorNotifications[0].Title)

	assert.Contains(t, notificationTitles(env.userNotifications(t, env.farmerID)), "Inspector Assigned")
}

func TestUpdateClaim_InspectionReportNotifiesEvenWhenUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)

	for range 2 {
		_, err = env.claims.UpdateClaim(ctx, key, models.UpdateClaimRequest{
			InspectionReportID: strRef("report-1"),
		})
		require.NoError(t, err)
	}

	count := 0
	for _, title := range notificationTitles(env.userNotifications(t, env.farmerID)) {
		if title == "Inspection Report Available" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestUpdateClaim_UnknownClaim(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.claims.UpdateClaim(context.Background(), "missing", models.UpdateClaimRequest{
		Status: claimStatus(models.ClaimApproved),
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// ============================================================================
// TEST SUITE 3: CLAIM LISTING
// ============================================================================

func TestListClaims_FilterByStatusAndFarmer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)
	second, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)

	_, err = env.claims.UpdateClaim(ctx, first, models.UpdateClaimRequest{
		Status: claimStatus(models.ClaimUnderReview),
	})
	require.NoError(t, err)

	pending, err := env.claims.ListClaims(ctx, models.ClaimFilter{
		FarmerID: env.farmerID,
		Status:   models.ClaimPending,
	})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	_, ok := pending[second]
	assert.True(t, ok)

	all, err := env.claims.ListClaims(ctx, models.ClaimFilter{FarmerID: env.farmerID})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListClaims_FilterByInspector(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assigned, err := env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)
	_, err = env.claims.CreateClaim(ctx, env.validClaimRequest())
	require.NoError(t, err)

	_, err = env.claims.UpdateClaim(ctx, assigned, models.UpdateClaimRequest{
		InspectorID: strRef("inspector-7"),
	})
	require.NoError(t, err)

	claims, err := env.claims.ListClaims(ctx, models.ClaimFilter{InspectorID: "inspector-7"})
	require.NoError(t, err)
	require.Len(t, claims, 1)
	_, ok := claims[assigned]
	assert.True(t, ok)
}
