package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectmgmt/internal/models"
)

// testRepositories runs the same behavior checks against every store.
// missingID must be well formed for the store but never generated by it.
func testRepositories(t *testing.T, clients ClientRepository, projects ProjectRepository, missingID string) {
	ctx := context.Background()

	client := &models.Client{Name: "Acme", Email: "ops@acme.test", Phone: "555-0100"}
	require.NoError(t, clients.Create(ctx, client))
	require.NotEmpty(t, client.ID)

	t.Run("client lookup", func(t *testing.T) {
		got, err := clients.GetByID(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, client, got)

		got, err = clients.GetByID(ctx, missingID)
		require.NoError(t, err)
		assert.Nil(t, got)

		_, err = clients.GetByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("client list", func(t *testing.T) {
		list, err := clients.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Client{*client}, list)
	})

	t.Run("client update merges", func(t *testing.T) {
		phone := "555-0199"
		got, err := clients.Update(ctx, client.ID, models.ClientPatch{Phone: &phone})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Acme", got.Name)
		assert.Equal(t, "ops@acme.test", got.Email)
		assert.Equal(t, "555-0199", got.Phone)
		client.Phone = phone

		got, err = clients.Update(ctx, client.ID, models.ClientPatch{})
		require.NoError(t, err)
		assert.Equal(t, client, got)

		got, err = clients.Update(ctx, missingID, models.ClientPatch{Phone: &phone})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	project := &models.Project{Name: "Website", Description: "Rebuild", ClientID: client.ID}
	require.NoError(t, projects.Create(ctx, project))
	require.NotEmpty(t, project.ID)
	assert.Equal(t, models.ProjectStatusNotStarted, project.Status)

	t.Run("project lookup", func(t *testing.T) {
		got, err := projects.GetByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, project, got)

		got, err = projects.GetByID(ctx, missingID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("project with unknown client", func(t *testing.T) {
		orphan := &models.Project{Name: "Orphan", Description: "-", Status: models.ProjectStatusInProgress, ClientID: missingID}
		require.NoError(t, projects.Create(ctx, orphan))

		list, err := projects.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, project.ID, list[0].ID)
		assert.Equal(t, orphan.ID, list[1].ID)

		deleted, err := projects.Delete(ctx, orphan.ID)
		require.NoError(t, err)
		assert.Equal(t, orphan, deleted)

		bad := &models.Project{Name: "Bad", ClientID: "42"}
		err = projects.Create(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidID)
		assert.Empty(t, bad.ID)
		assert.Empty(t, bad.Status)
	})

	t.Run("project update merges", func(t *testing.T) {
		status := models.ProjectStatusCompleted
		got, err := projects.Update(ctx, project.ID, models.ProjectPatch{Status: &status})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Website", got.Name)
		assert.Equal(t, "Rebuild", got.Description)
		assert.Equal(t, models.ProjectStatusCompleted, got.Status)
		assert.Equal(t, client.ID, got.ClientID)
	})

	t.Run("client delete leaves projects", func(t *testing.T) {
		deleted, err := clients.Delete(ctx, client.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, client.ID, deleted.ID)

		deleted, err = clients.Delete(ctx, client.ID)
		require.NoError(t, err)
		assert.Nil(t, deleted)

		got, err := projects.GetByID(ctx, project.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, client.ID, got.ClientID)
	})

	t.Run("project delete", func(t *testing.T) {
		deleted, err := projects.Delete(ctx, project.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)

		list, err := projects.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		deleted, err = projects.Delete(ctx, project.ID)
		require.NoError(t, err)
		assert.Nil(t, deleted)
	})
}
