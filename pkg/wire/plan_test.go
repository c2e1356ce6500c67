package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapgate/zapgate/pkg/models"
)

func TestFromPlan_Text(t *testing.T) {
	req, err := FromPlan(models.MessagePlan{
		Kind: models.PlanKindText,
		Text: "Olá!",
	}, "+5511988887777", "key-1", "")
	require.NoError(t, err)

	assert.Equal(t, KindText, req.Kind)
	assert.Equal(t, "+5511988887777", req.To)
	assert.Equal(t, "key-1", req.IdempotencyKey)

	ok, msg := Validate(req)
	assert.True(t, ok, msg)
}

func TestFromPlan_ButtonsTruncatedToProviderBounds(t *testing.T) {
	plan := models.MessagePlan{
		Kind: models.PlanKindInteractiveButton,
		Text: "Escolha",
		Options: []models.Option{
			{ID: "o1", Title: "Um"},
			{ID: "o2", Title: "Dois"},
			{ID: "o3", Title: "Três"},
			{ID: "o4", Title: "Quatro"},
		},
	}
	req, err := FromPlan(plan, "+5511988887777", "key-1", "")
	require.NoError(t, err)
	require.NotNil(t, req.Interactive)
	assert.Len(t, req.Interactive.Buttons, maxButtons)
	assert.Equal(t, "o1", req.Interactive.Buttons[0].ID)

	ok, msg := Validate(req)
	assert.True(t, ok, msg)
}

func TestFromPlan_ButtonTitleTruncatedToRuneBound(t *testing.T) {
	long := strings.Repeat("ã", maxButtonTitle+5)
	plan := models.MessagePlan{
		Kind:    models.PlanKindInteractiveButton,
		Text:    "Escolha",
		Options: []models.Option{{ID: "o1", Title: long}},
	}
	req, err := FromPlan(plan, "+5511988887777", "key-1", "")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ã", maxButtonTitle), req.Interactive.Buttons[0].Title)
}

func TestFromPlan_List(t *testing.T) {
	options := make([]models.Option, maxListRows+2)
	for i := range options {
		options[i] = models.Option{ID: "o" + strings.Repeat("x", i+1), Title: "Opção"}
	}
	req, err := FromPlan(models.MessagePlan{
		Kind:    models.PlanKindInteractiveList,
		Text:    "Escolha uma opção",
		Options: options,
	}, "+5511988887777", "key-1", "")
	require.NoError(t, err)
	assert.Len(t, req.Interactive.Rows, maxListRows)
	assert.Equal(t, "Escolher", req.Interactive.ButtonLabel)

	ok, msg := Validate(req)
	assert.True(t, ok, msg)
}

func TestFromPlan_Reaction(t *testing.T) {
	req, err := FromPlan(models.MessagePlan{
		Kind:          models.PlanKindReaction,
		ReactionEmoji: "👍",
	}, "+5511988887777", "key-1", "wamid.target")
	require.NoError(t, err)
	assert.Equal(t, KindReaction, req.Kind)
	assert.Equal(t, "wamid.target", req.ReactionMessageID)
}

func TestFromPlan_UnknownKind(t *testing.T) {
	_, err := FromPlan(models.MessagePlan{Kind: models.PlanKind("HOLOGRAM")},
		"+5511988887777", "key-1", "")
	assert.Error(t, err)
}
