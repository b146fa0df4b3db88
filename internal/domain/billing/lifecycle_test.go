package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/billflow/billflow-api/internal/domain/billing"
	"github.com/billflow/billflow-api/internal/domain/entity"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{entity.StatusDraft, entity.StatusSent, entity.StatusPaid, entity.StatusOverdue} {
		assert.True(t, billing.ValidStatus(s), s)
	}
	assert.False(t, billing.ValidStatus("archived"))
	assert.False(t, billing.ValidStatus(""))
	assert.False(t, billing.ValidStatus("DRAFT"), "statuses are lowercase")
}

func TestCanTransition_AllowedEdges(t *testing.T) {
	allowed := [][2]string{
		{entity.StatusDraft, entity.StatusSent},
		{entity.StatusSent, entity.StatusPaid},
		{entity.StatusSent, entity.StatusOverdue},
		{entity.StatusOverdue, entity.StatusPaid},
	}
	for _, edge := range allowed {
		assert.True(t, billing.CanTransition(edge[0], edge[1]), "%s -> %s", edge[0], edge[1])
	}
}

func TestCanTransition_ForbiddenEdges(t *testing.T) {
	forbidden := [][2]string{
		{entity.StatusPaid, entity.StatusDraft},
		{entity.StatusPaid, entity.StatusSent},
		{entity.StatusPaid, entity.StatusOverdue},
		{entity.StatusSent, entity.StatusDraft},
		{entity.StatusOverdue, entity.StatusDraft},
		{entity.StatusOverdue, entity.StatusSent},
		{entity.StatusDraft, entity.StatusPaid},
		{entity.StatusDraft, entity.StatusOverdue},
		{entity.StatusDraft, entity.StatusDraft},
	}
	for _, edge := range forbidden {
		assert.False(t, billing.CanTransition(edge[0], edge[1]), "%s -> %s", edge[0], edge[1])
	}
}

func TestCanTransition_UnknownStatuses(t *testing.T) {
	assert.False(t, billing.CanTransition("archived", entity.StatusSent))
	assert.False(t, billing.CanTransition(entity.StatusDraft, "archived"))
}

func TestValidDiscountType(t *testing.T) {
	assert.True(t, billing.ValidDiscountType(entity.DiscountFixed))
	assert.True(t, billing.ValidDiscountType(entity.DiscountPercentage))
	assert.False(t, billing.ValidDiscountType("relative"))
	assert.False(t, billing.ValidDiscountType(""))
}
