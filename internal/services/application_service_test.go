package services

import (
	"context"
	"testing"

	"insurance-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationStatus(s models.ApplicationStatus) *models.ApplicationStatus { return &s }

func (e *testEnv) validApplicationRequest() models.CreateApplicationRequest {
	return models.CreateApplicationRequest{
		PolicyID:        e.policyID,
		FarmerID:        e.farmerID,
		ApplicationType: models.ApplicationNewClaim,
	}
}

// ============================================================================
// TEST SUITE 1: APPLICATION CREATION
// ============================================================================

func TestCreateApplication_StartsPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.applications.CreateApplication(ctx, env.validApplicationRequest())
	require.NoError(t, err)

	application, err := env.applications.GetApplication(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.Equal(t, models.ApplicationNewClaim, application.ApplicationType)
	assert.NotEmpty(t, application.AppliedAt)
	assert.Nil(t, application.InspectorID)
}

func TestCreateApplication_MissingFieldsRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := env.validApplicationRequest()
	req.PolicyID = ""
	_, err := env.applications.CreateApplication(ctx, req)
	assert.ErrorIs(t, err, models.ErrValidation)

	req = env.validApplicationRequest()
	req.ApplicationType = "subscription"
	_, err = env.applications.CreateApplication(ctx, req)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateApplication_UnknownFarmerRejected(t *testing.T) {
	env := newTestEnv(t)

	req := env.validApplicationRequest()
	req.FarmerID = "ghost"

	_, err := env.applications.CreateApplication(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// ============================================================================
// TEST SUITE 2: APPLICATION UPDATES
// ============================================================================

func TestUpdateApplication_InvalidStatusLeavesRecordUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.applications.CreateApplication(ctx, env.validApplicationRequest())
	require.NoError(t, err)

	_, err = env.applications.UpdateApplication(ctx, key, models.UpdateApplicationRequest{
		Status: applicationStatus("cancelled"),
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	application, err := env.applications.GetApplication(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, application.Status)
}

func TestUpdateApplication_ApprovalWithInspector(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.applications.CreateApplication(ctx, env.validApplicationRequest())
	require.NoError(t, err)

	application, err := env.applications.UpdateApplication(ctx, key, models.UpdateApplicationRequest{
		Status:      applicationStatus(models.ApplicationApproved),
		InspectorID: strRef("inspector-3"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, application.Status)
	require.NotNil(t, application.InspectorID)
	assert.Equal(t, "inspector-3", *application.InspectorID)
}

func TestUpdateApplication_TransitionsSilentByDefault(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.applications.CreateApplication(ctx, env.validApplicationRequest())
	require.NoError(t, err)

	_, err = env.applications.UpdateApplication(ctx, key, models.UpdateApplicationRequest{
		Status: applicationStatus(models.ApplicationApproved),
	})
	require.NoError(t, err)

	assert.Empty(t, env.userNotifications(t, env.farmerID))
}

func TestUpdateApplication_TransitionNotifiesWhenEnabled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	noisy := NewApplicationService(
		env.applications.applicationRepo,
		env.applications.policyRepo,
		env.applications.farmerRepo,
		env.notifications,
		true,
	)

	key, err := noisy.CreateApplication(ctx, env.validApplicationRequest())
	require.NoError(t, err)

	_, err = noisy.UpdateApplication(ctx, key, models.UpdateApplicationRequest{
		Status: applicationStatus(models.ApplicationRejected),
	})
	require.NoError(t, err)

	notifications := env.userNotifications(t, env.farmerID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Application Rejected", notifications[0].Title)
	assert.Equal(t, models.RelatedPolicy, notifications[0].RelatedType)
}

// ============================================================================
// TEST SUITE 3: APPLICATION LISTING
// ============================================================================

func TestListApplications_FilterByPolicy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.applications.CreateApplication(ctx, env.validApplicationRequest())
	require.NoError(t, err)

	applications, err := env.applications.ListApplications(ctx, models.ApplicationFilter{PolicyID: env.policyID})
	require.NoError(t, err)
	require.Len(t, applications, 1)
	_, ok := applications[key]
	assert.True(t, ok)

	none, err := env.applications.ListApplications(ctx, models.ApplicationFilter{PolicyID: "other"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
