package history

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"prefab-manager/core/prefab"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestAppend(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	report := &prefab.SyncReport{
		Master: "9f1c3f6e-2c54-4a57-9d1a-07a5f3a0b001",
		Instances: []prefab.InstanceReport{
			{Entity: "e1", PropertiesUpdated: []string{"Render/Mesh"}},
		},
		Summary: prefab.Summary{Instances: 1, PropertiesUpdated: 1},
	}

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `sync_records`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	record, err := store.Append(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, report.Master, record.Master)
	assert.Equal(t, 1, record.Instances)
	assert.Equal(t, 1, record.PropertiesUpdated)
	assert.Contains(t, record.Detail, "Render/Mesh")

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRecent(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "master", "instances", "components_added", "components_removed", "properties_updated", "failures", "detail"}).
		AddRow(2, "9f1c3f6e-2c54-4a57-9d1a-07a5f3a0b001", 3, 1, 0, 4, 0, "{}").
		AddRow(1, "9f1c3f6e-2c54-4a57-9d1a-07a5f3a0b001", 3, 0, 0, 0, 1, "{}")
	sqlMock.ExpectQuery("SELECT \\* FROM `sync_records` ORDER BY id DESC LIMIT .+").
		WillReturnRows(rows)

	records, err := store.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first.
	assert.Equal(t, uint(2), records[0].ID)
	assert.Equal(t, 4, records[0].PropertiesUpdated)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRecent_DefaultLimit(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "master"})
	sqlMock.ExpectQuery("SELECT \\* FROM `sync_records` ORDER BY id DESC LIMIT .+").
		WillReturnRows(rows)

	records, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
