//go:build unit

package department_test

import (
	"testing"
	"time"

	"hospital-ops/internal/domain/department"
	"hospital-ops/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)

func TestNewDepartment(t *testing.T) {
	d, err := department.NewDepartment(" Cardiology ", "Heart care", "Dr. Iyer", "Block B", now)
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", d.Name())
	assert.True(t, d.IsActive())

	tests := []struct {
		name                               string
		title, description, head, location string
		errIs                              error
	}{
		{name: "blank name", title: " ", description: "d", head: "h", location: "l", errIs: department.ErrInvalidName},
		{name: "missing description", title: "n", head: "h", location: "l", errIs: department.ErrInvalidDescription},
		{name: "missing head", title: "n", description: "d", location: "l", errIs: department.ErrInvalidHead},
		{name: "missing location", title: "n", description: "d", head: "h", errIs: department.ErrInvalidLocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := department.NewDepartment(tt.title, tt.description, tt.head, tt.location, now)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestDepartment_Apply(t *testing.T) {
	later := now.Add(time.Hour)
	d, err := department.NewDepartment("Cardiology", "Heart care", "Dr. Iyer", "Block B", now)
	require.NoError(t, err)

	require.NoError(t, d.Apply(department.Changes{IsActive: ptr.Of(false), Head: ptr.Of("Dr. Menon")}, later))
	assert.False(t, d.IsActive())
	assert.Equal(t, "Dr. Menon", d.Head())
	assert.Equal(t, later, d.UpdatedAt())

	require.ErrorIs(t, d.Apply(department.Changes{Location: ptr.Of("")}, later.Add(time.Hour)), department.ErrInvalidLocation)
	assert.Equal(t, "Block B", d.Location())
	assert.Equal(t, later, d.UpdatedAt())
}
