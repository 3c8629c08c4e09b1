package orm

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shashiranjanraj/donorlink/pkg/database"
	"github.com/shashiranjanraj/donorlink/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setup(t *testing.T) context.Context {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, db.AutoMigrate(&widget{}))
	return database.WithDB(context.Background(), db)
}

func TestChainAndTerminals(t *testing.T) {
	ctx := setup(t)

	require.NoError(t, DB(ctx).Create(&[]widget{{Name: "a"}, {Name: "b"}, {Name: "c"}}))

	var all []widget
	require.NoError(t, DB(ctx).Model(&widget{}).Order("id desc").Get(&all))
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Name)

	var one widget
	require.NoError(t, DB(ctx).Model(&widget{}).Where("name = ?", "b").First(&one))
	assert.Equal(t, "b", one.Name)

	err := DB(ctx).Model(&widget{}).Where("name = ?", "z").First(&one)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	n, err := DB(ctx).Model(&widget{}).Count()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	ok, err := DB(ctx).Model(&widget{}).Where("name = ?", "z").Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, DB(ctx).Model(&widget{}).Where("id = ?", one.ID).Update("name", "bee"))
	var names []string
	require.NoError(t, DB(ctx).Table("widgets").Select("name").Order("id").Scan(&names))
	assert.Equal(t, []string{"a", "bee", "c"}, names)
}

func TestQueriesAreTimed(t *testing.T) {
	ctx := setup(t)
	_, err := DB(ctx).Model(&widget{}).Count()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.DBQueryDuration, "donorlink_db_query_duration_seconds"), 1)
}

func TestCacheFallsBackToStore(t *testing.T) {
	ctx := setup(t)
	require.NoError(t, DB(ctx).Create(&widget{Name: "kidney"}))

	var got []widget
	require.NoError(t, DB(ctx).Model(&widget{}).Cache("test:widgets", time.Minute, &got))
	assert.Len(t, got, 1)
}
