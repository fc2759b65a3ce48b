package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
	"github.com/cornbelt-mill/cornbelt-site-api/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGeo struct{ lat, lon float64 }

func (g staticGeo) Locate(ctx context.Context) (float64, float64, error) {
	return g.lat, g.lon, nil
}

type noGeo struct{}

func (noGeo) Locate(ctx context.Context) (float64, float64, error) {
	return 0, 0, errors.New("permission denied")
}

type staticIP struct{ ip string }

func (s staticIP) PublicIP(ctx context.Context) (string, error) {
	return s.ip, nil
}

// TestVisitorPipelineLandsInDatabase runs the full pipeline: collector to
// CRUD sink to the real endpoint to a visitor_tracking row.
func TestVisitorPipelineLandsInDatabase(t *testing.T) {
	db := setupIntegrationDB(t)
	config.SetDB(db)

	crud := crudServer()
	defer crud.Close()

	collector := tracking.NewCollector(
		staticGeo{lat: 41.59, lon: -93.62},
		staticIP{ip: "203.0.113.9"},
		&tracking.CRUDSink{BaseURL: crud.URL},
	)

	collector.Track(context.Background(), tracking.PageVisit{
		Page:        "/products",
		UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		Platform:    "Win32",
		Language:    "en-US",
		ScreenWidth: 1920,
	})

	var record models.VisitorRecord
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, collector.SessionID(), record.SessionID)
	assert.Equal(t, "/products", record.Page)
	assert.Equal(t, "Desktop", record.DeviceType)
	require.NotNil(t, record.Latitude)
	assert.InDelta(t, 41.59, *record.Latitude, 0.001)
	require.NotNil(t, record.IPAddress)
	assert.Equal(t, "203.0.113.9", *record.IPAddress)
}

// TestVisitorPipelineRecordsNullsOnDeniedGeo verifies the record is still
// written when geolocation is denied.
func TestVisitorPipelineRecordsNullsOnDeniedGeo(t *testing.T) {
	db := setupIntegrationDB(t)
	config.SetDB(db)

	crud := crudServer()
	defer crud.Close()

	collector := tracking.NewCollector(
		noGeo{},
		staticIP{ip: "203.0.113.9"},
		&tracking.CRUDSink{BaseURL: crud.URL},
	)

	collector.Track(context.Background(), tracking.PageVisit{
		Page:      "/",
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
	})

	var record models.VisitorRecord
	require.NoError(t, db.First(&record).Error)
	assert.Nil(t, record.Latitude)
	assert.Nil(t, record.Longitude)
	assert.Equal(t, "Mobile", record.DeviceType)
}

// TestVisitorPipelinePreviousPage checks the previous-page chain across two
// navigations in one session.
func TestVisitorPipelinePreviousPage(t *testing.T) {
	db := setupIntegrationDB(t)
	config.SetDB(db)

	crud := crudServer()
	defer crud.Close()

	collector := tracking.NewCollector(nil, nil, &tracking.CRUDSink{BaseURL: crud.URL})

	collector.Track(context.Background(), tracking.PageVisit{Page: "/"})
	collector.Track(context.Background(), tracking.PageVisit{Page: "/contact"})

	var records []models.VisitorRecord
	require.NoError(t, db.Order("id ASC").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[0].PreviousPage)
	assert.Equal(t, "/", records[1].PreviousPage)
	assert.Equal(t, records[0].SessionID, records[1].SessionID)
}
