package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelhub/internal/models"
)

func TestCreateModelDefinition_OperatorDefaultsToShared(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	operator := models.Caller{ID: uuid.New(), IsOperator: true}

	provider, err := f.providers.CreateProvider(ctx, operator, models.ProviderCreate{Name: "openai"})
	require.NoError(t, err)

	def, err := f.models.CreateModelDefinition(ctx, operator, models.ModelDefinitionCreate{
		ProviderID: provider.ID,
		ModelName:  "gpt-4o",
	})
	require.NoError(t, err)

	assert.True(t, def.IsSystem())
	assert.Equal(t, "gpt-4o", def.Label, "label defaults to the model name")
	assert.Equal(t, 4096, def.ContextWindow)
	assert.Equal(t, models.ModelTypeLLM, def.ModelType)
	assert.Contains(t, []string(def.Features), "tool_call")
	assert.True(t, def.IsEnabled)
}

func TestCreateModelDefinition_OperatorMayAssignOwner(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	operator := models.Caller{ID: uuid.New(), IsOperator: true}
	target := uuid.New()

	provider, err := f.providers.CreateProvider(ctx, operator, models.ProviderCreate{Name: "openai"})
	require.NoError(t, err)

	def, err := f.models.CreateModelDefinition(ctx, operator, models.ModelDefinitionCreate{
		ProviderID: provider.ID,
		ModelName:  "gpt-4o",
		Owner:      &target,
	})
	require.NoError(t, err)
	assert.True(t, def.IsOwnedBy(target))
}

func TestCreateModelDefinition_UserIsAlwaysPrivate(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	operator := models.Caller{ID: uuid.New(), IsOperator: true}
	user := models.Caller{ID: uuid.New()}

	provider, err := f.providers.CreateProvider(ctx, operator, models.ProviderCreate{Name: "openai"})
	require.NoError(t, err)

	def, err := f.models.CreateModelDefinition(ctx, user, models.ModelDefinitionCreate{
		ProviderID: provider.ID,
		ModelName:  "my-finetune",
	})
	require.NoError(t, err)
	assert.True(t, def.IsOwnedBy(user.ID))

	// Private definitions never leak into someone else's resolved view.
	visible, err := f.catalog.ResolveModelsForProvider(ctx, provider.ID, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, visible)

	mine, err := f.catalog.ResolveModelsForProvider(ctx, provider.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].Custom)
}

func TestCreateModelDefinition_ForeignPrivateProviderDenied(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	owner := models.Caller{ID: uuid.New()}
	stranger := models.Caller{ID: uuid.New()}

	private, err := f.providers.CreateProvider(ctx, owner, models.ProviderCreate{Name: "their-proxy"})
	require.NoError(t, err)

	_, err = f.models.CreateModelDefinition(ctx, stranger, models.ModelDefinitionCreate{
		ProviderID: private.ID,
		ModelName:  "sneaky",
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestCreateModelDefinition_UnknownProvider(t *testing.T) {
	f := newProviderFixture(t)

	_, err := f.models.CreateModelDefinition(context.Background(), models.Caller{ID: uuid.New(), IsOperator: true}, models.ModelDefinitionCreate{
		ProviderID: uuid.New(),
		ModelName:  "orphan",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateModelDefinition_RejectsUnknownType(t *testing.T) {
	f := newProviderFixture(t)

	_, err := f.models.CreateModelDefinition(context.Background(), models.Caller{ID: uuid.New(), IsOperator: true}, models.ModelDefinitionCreate{
		ProviderID: uuid.New(),
		ModelName:  "weird",
		ModelType:  "quantum",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "model type must be one of")
}

func TestUpdateModelDefinition_OwnerEditsRow(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	user := models.Caller{ID: uuid.New()}

	provider, err := f.providers.CreateProvider(ctx, user, models.ProviderCreate{Name: "my-proxy"})
	require.NoError(t, err)
	def, err := f.models.CreateModelDefinition(ctx, user, models.ModelDefinitionCreate{
		ProviderID: provider.ID,
		ModelName:  "my-finetune",
	})
	require.NoError(t, err)

	updated, err := f.models.UpdateModelDefinition(ctx, user, def.ID, models.ModelDefinitionUpdate{
		Label:              ptr("Tuned"),
		ContextWindow:      ptr(16384),
		DefaultTemperature: ptr(0.1),
		IsEnabled:          ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Tuned", updated.Label)
	assert.Equal(t, 16384, updated.ContextWindow)
	assert.False(t, updated.IsEnabled)

	stored, err := f.store.Definitions.GetByID(ctx, def.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tuned", stored.Label)

	// No preference row, the edit went to the definition itself.
	pref, err := f.store.Preferences.GetByUserAndModel(ctx, user.ID, def.ID)
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestUpdateModelDefinition_NonOwnerRoutedToPreference(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	operator := models.Caller{ID: uuid.New(), IsOperator: true}
	user := models.Caller{ID: uuid.New()}

	provider, err := f.providers.CreateProvider(ctx, operator, models.ProviderCreate{Name: "openai"})
	require.NoError(t, err)
	def, err := f.models.CreateModelDefinition(ctx, operator, models.ModelDefinitionCreate{
		ProviderID:    provider.ID,
		ModelName:     "gpt-4o",
		Label:         "GPT-4o",
		ContextWindow: 128000,
	})
	require.NoError(t, err)

	returned, err := f.models.UpdateModelDefinition(ctx, user, def.ID, models.ModelDefinitionUpdate{
		Label:         ptr("Renamed"),
		ContextWindow: ptr(8192),
		IsEnabled:     ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "GPT-4o", returned.Label, "shared row is untouched")

	stored, err := f.store.Definitions.GetByID(ctx, def.ID)
	require.NoError(t, err)
	assert.Equal(t, "GPT-4o", stored.Label)
	assert.Equal(t, 128000, stored.ContextWindow)
	assert.True(t, stored.IsEnabled)

	pref, err := f.store.Preferences.GetByUserAndModel(ctx, user.ID, def.ID)
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.False(t, pref.IsEnabled)
	// JSON round trip through the text column turns the int into float64.
	assert.EqualValues(t, 8192, pref.CustomParameters[models.OverrideContextWindow])
	assert.NotContains(t, pref.CustomParameters, "label", "structural fields are dropped, not stored")

	// Resolved views diverge: disabled and shrunk for the caller, shared
	// defaults for everyone else.
	mine, err := f.catalog.ResolveModelsForProvider(ctx, provider.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.False(t, mine[0].Enabled)
	assert.Equal(t, 8192, mine[0].ContextWindow)

	theirs, err := f.catalog.ResolveModelsForProvider(ctx, provider.ID, uuid.New())
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.True(t, theirs[0].Enabled)
	assert.Equal(t, 128000, theirs[0].ContextWindow)
}

func TestUpdateModelDefinition_NotFound(t *testing.T) {
	f := newProviderFixture(t)

	_, err := f.models.UpdateModelDefinition(context.Background(), models.Caller{ID: uuid.New()}, uuid.New(), models.ModelDefinitionUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteModelDefinition_NonOwnerDenied(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	operator := models.Caller{ID: uuid.New(), IsOperator: true}

	provider, err := f.providers.CreateProvider(ctx, operator, models.ProviderCreate{Name: "openai"})
	require.NoError(t, err)
	def, err := f.models.CreateModelDefinition(ctx, operator, models.ModelDefinitionCreate{
		ProviderID: provider.ID,
		ModelName:  "gpt-4o",
	})
	require.NoError(t, err)

	err = f.models.DeleteModelDefinition(ctx, models.Caller{ID: uuid.New()}, def.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestDeleteModelDefinition_OwnerRemovesPreferencesToo(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	user := models.Caller{ID: uuid.New()}
	other := uuid.New()

	provider, err := f.providers.CreateProvider(ctx, user, models.ProviderCreate{Name: "my-proxy"})
	require.NoError(t, err)
	def, err := f.models.CreateModelDefinition(ctx, user, models.ModelDefinitionCreate{
		ProviderID: provider.ID,
		ModelName:  "my-finetune",
	})
	require.NoError(t, err)
	_, err = f.models.UpdateUserPreference(ctx, other, def.ID, models.PreferenceUpdate{IsEnabled: ptr(false)})
	require.NoError(t, err)

	require.NoError(t, f.models.DeleteModelDefinition(ctx, user, def.ID))

	gone, err := f.store.Definitions.GetByID(ctx, def.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	pref, err := f.store.Preferences.GetByUserAndModel(ctx, other, def.ID)
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestUpdateUserPreference_LazyRowSeedsFromDefinition(t *testing.T) {
	f := newProviderFixture(t)
	ctx := context.Background()
	operator := models.Caller{ID: uuid.New(), IsOperator: true}
	userID := uuid.New()

	provider, err := f.providers.CreateProvider(ctx, operator, models.ProviderCreate{Name: "openai"})
	require.NoError(t, err)
	def, err := f.models.CreateModelDefinition(ctx, operator, models.ModelDefinitionCreate{
		ProviderID: provider.ID,
		ModelName:  "gpt-4o",
	})
	require.NoError(t, err)

	pref, err := f.models.UpdateUserPreference(ctx, userID, def.ID, models.PreferenceUpdate{
		Temperature: ptr(0.2),
	})
	require.NoError(t, err)
	assert.True(t, pref.IsEnabled, "enablement is seeded from the definition")
	assert.Equal(t, 0.2, pref.CustomParameters[models.OverrideTemperature])

	// A later call merges into the same row.
	pref, err = f.models.UpdateUserPreference(ctx, userID, def.ID, models.PreferenceUpdate{
		ContextWindow: ptr(8192),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.2, pref.CustomParameters[models.OverrideTemperature])
	assert.Equal(t, 8192, pref.CustomParameters[models.OverrideContextWindow])
}

func TestUpdateUserPreference_UnknownModel(t *testing.T) {
	f := newProviderFixture(t)

	_, err := f.models.UpdateUserPreference(context.Background(), uuid.New(), uuid.New(), models.PreferenceUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}
