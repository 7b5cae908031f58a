package services

import (
	"context"
	"testing"

	"insurance-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoundary() *models.GeoJSONPolygon {
	return &models.GeoJSONPolygon{
		Type: "Polygon",
		Coordinates: [][][]float64{{
			{105.75, 10.03},
			{105.76, 10.03},
			{105.76, 10.04},
			{105.75, 10.04},
			{105.75, 10.03},
		}},
	}
}

func TestCreateLand_BoundaryDerivesArea(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.lands.CreateLand(ctx, models.CreateLandRequest{
		FarmerID:     env.farmerID,
		Name:         "West paddy",
		AreaHectares: 999, // overridden by the boundary-derived value
		Boundary:     testBoundary(),
	})
	require.NoError(t, err)

	land, err := env.lands.GetLand(ctx, key)
	require.NoError(t, err)

	derived, err := testBoundary().AreaHectares()
	require.NoError(t, err)
	assert.InDelta(t, derived, land.AreaHectares, derived*0.001)
	assert.NotEqual(t, 999.0, land.AreaHectares)
	require.NotNil(t, land.Boundary)
	assert.Equal(t, "Polygon", land.Boundary.Type)
}

func TestCreateLand_InvalidBoundaryRejected(t *testing.T) {
	env := newTestEnv(t)

	boundary := testBoundary()
	boundary.Coordinates[0] = boundary.Coordinates[0][:4] // drop the closing coordinate

	_, err := env.lands.CreateLand(context.Background(), models.CreateLandRequest{
		FarmerID: env.farmerID,
		Name:     "Broken parcel",
		Boundary: boundary,
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateLand_UnknownFarmerRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.lands.CreateLand(context.Background(), models.CreateLandRequest{
		FarmerID: "ghost",
		Name:     "Orphan parcel",
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateLand_BoundaryRefreshesArea(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.lands.CreateLand(ctx, models.CreateLandRequest{
		FarmerID:     env.farmerID,
		Name:         "East paddy",
		AreaHectares: 1.0,
	})
	require.NoError(t, err)

	land, err := env.lands.UpdateLand(ctx, key, models.UpdateLandRequest{
		Boundary: testBoundary(),
	})
	require.NoError(t, err)

	derived, err := testBoundary().AreaHectares()
	require.NoError(t, err)
	assert.InDelta(t, derived, land.AreaHectares, derived*0.001)
}

func TestListLands_ByFarmer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.lands.CreateLand(ctx, models.CreateLandRequest{
		FarmerID: env.farmerID,
		Name:     "South paddy",
	})
	require.NoError(t, err)

	lands, err := env.lands.ListLands(ctx, env.farmerID)
	require.NoError(t, err)
	// Seeded parcel plus the one created here.
	require.Len(t, lands, 2)
	_, ok := lands[key]
	assert.True(t, ok)
}

func TestDeleteLand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	key, err := env.lands.CreateLand(ctx, models.CreateLandRequest{
		FarmerID: env.farmerID,
		Name:     "Short-lived parcel",
	})
	require.NoError(t, err)

	require.NoError(t, env.lands.DeleteLand(ctx, key))
	_, err = env.lands.GetLand(ctx, key)
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = env.lands.DeleteLand(ctx, key)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
