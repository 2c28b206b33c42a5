package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
)

func TestFindActionValue(t *testing.T) {
	actions := []metadomain.ActionEntry{
		{ActionType: "link_click", Value: "42"},
		{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "3"},
		{ActionType: "post_engagement", Value: "100"},
	}

	tests := []struct {
		name       string
		actionType string
		want       *string
	}{
		{
			name:       "Match exato",
			actionType: "link_click",
			want:       strPtr("42"),
		},
		{
			name:       "Match por substring - purchase casa o evento de pixel",
			actionType: "purchase",
			want:       strPtr("3"),
		},
		{
			name:       "Sem match - retorna nulo",
			actionType: "video_view",
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findActionValue(actions, tt.actionType)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFindActionValue_FirstMatchWins(t *testing.T) {
	actions := []metadomain.ActionEntry{
		{ActionType: "onsite_conversion.purchase", Value: "1"},
		{ActionType: "purchase", Value: "2"},
	}

	got := findActionValue(actions, "purchase")
	require.NotNil(t, got)
	assert.Equal(t, "1", *got)
}

func TestFirstActionValue_OrderedFallback(t *testing.T) {
	t.Run("Primeiro candidato presente prevalece", func(t *testing.T) {
		actions := []metadomain.ActionEntry{
			{ActionType: "purchase", Value: "5"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "9"},
		}

		got := firstActionValue(actions, purchaseActionTypes...)
		require.NotNil(t, got)
		assert.Equal(t, "5", *got)
	})

	t.Run("Cai para o próximo candidato quando o primeiro falta", func(t *testing.T) {
		actions := []metadomain.ActionEntry{
			{ActionType: "onsite_conversion.post_save", Value: "7"},
		}

		got := firstActionValue(actions, "purchase", "onsite_conversion")
		require.NotNil(t, got)
		assert.Equal(t, "7", *got)
	})

	t.Run("Nenhum candidato presente - retorna nulo", func(t *testing.T) {
		got := firstActionValue(nil, purchaseActionTypes...)
		assert.Nil(t, got)
	})
}

func strPtr(s string) *string {
	return &s
}
