package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/model"
)

func TestActivityLogDetailsRoundTrip(t *testing.T) {
	m := NewActivityLogMapper()

	src := &entity.ActivityLog{
		Id:         uuid.New(),
		ActorId:    uuid.New(),
		Action:     "lead_stage_changed",
		ObjectType: "lead",
		ObjectId:   uuid.New(),
		Details: map[string]interface{}{
			"from": "qualified",
			"to":   "proposal",
		},
		CreatedAt: time.Now(),
	}

	got := m.ToEntity(m.ToModel(src))
	require.NotNil(t, got)

	assert.Equal(t, src.Id, got.Id)
	assert.Equal(t, src.Action, got.Action)
	assert.Equal(t, "qualified", got.Details["from"])
	assert.Equal(t, "proposal", got.Details["to"])
}

func TestActivityLogMalformedDetails(t *testing.T) {
	m := NewActivityLogMapper()

	got := m.ToEntity(&model.ActivityLog{
		Id:      uuid.New(),
		Action:  "account_created",
		Details: datatypes.JSON(`{not json`),
	})

	require.NotNil(t, got)
	assert.Nil(t, got.Details)
	assert.Equal(t, "account_created", got.Action)
}

func TestActivityLogNilSafety(t *testing.T) {
	m := NewActivityLogMapper()

	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))

	entities := m.ToEntities([]*model.ActivityLog{nil})
	require.Len(t, entities, 1)
	assert.Nil(t, entities[0])
}
