package repository

import (
	"testing"

	"roster/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_RoleConstraint(t *testing.T) {
	tests := []struct {
		name        string
		role        string
		wantRole    entity.Role
		wantApplied bool
	}{
		{"default shows ordinary accounts", "", entity.RoleUser, true},
		{"all lifts the constraint", "all", "", false},
		{"explicit user", "user", entity.RoleUser, true},
		{"explicit admin", "admin", entity.RoleAdmin, true},
		{"unrecognized falls back to default", "merchant", entity.RoleUser, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, applied := ListFilter{Role: tt.role}.RoleConstraint()
			assert.Equal(t, tt.wantApplied, applied)
			if applied {
				assert.Equal(t, tt.wantRole, role)
			}
		})
	}
}

func TestListFilter_StatusConstraint(t *testing.T) {
	status, applied := ListFilter{Status: "active"}.StatusConstraint()
	assert.True(t, applied)
	assert.Equal(t, entity.StatusActive, status)

	status, applied = ListFilter{Status: "inactive"}.StatusConstraint()
	assert.True(t, applied)
	assert.Equal(t, entity.StatusInactive, status)

	_, applied = ListFilter{}.StatusConstraint()
	assert.False(t, applied)

	_, applied = ListFilter{Status: "suspended"}.StatusConstraint()
	assert.False(t, applied)
}

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Limit: 10, Skip: 0}, NewPage(0, 0))
	assert.Equal(t, Page{Limit: 10, Skip: 0}, NewPage(1, 10))
	assert.Equal(t, Page{Limit: 10, Skip: 10}, NewPage(2, 10))
	assert.Equal(t, Page{Limit: 5, Skip: 45}, NewPage(10, 5))
	assert.Equal(t, Page{Limit: 10, Skip: 0}, NewPage(-3, -1))
}
