package reporting

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-ads-mcp-server/internal/domain"
	"github.com/vfg2006/fb-ads-mcp-server/pkg/utils"
)

const (
	defaultDatePreset         = "last_30d"
	comprehensiveDefaultLimit = 100
	summaryDefaultLimit       = 50
)

// Conjunto fixo de métricas buscado pelo relatório completo
const comprehensiveInsightFields = "reach,impressions,frequency,spend," +
	"clicks,unique_clicks,ctr,unique_ctr,cpc,cpm," +
	"video_play_actions,video_thruplay_watched_actions," +
	"video_p25_watched_actions,video_p50_watched_actions," +
	"video_p75_watched_actions,video_p100_watched_actions," +
	"video_continuous_2_sec_watched_actions," +
	"actions,action_values,cost_per_action_type"

// Conjunto enxuto de métricas do relatório resumido
const summaryInsightFields = "ad_id,ad_name,campaign_id,campaign_name," +
	"adset_id,adset_name,spend,impressions,clicks,ctr,cpc,cpm," +
	"actions,cost_per_action_type"

// Service é o motor de agregação dos relatórios: junta metadados de
// anúncios com insights por ad_id, achata action lists em campos escalares
// e calcula totais
type Service struct {
	metaService *meta.MetaIntegrator
}

func NewService(metaService *meta.MetaIntegrator) *Service {
	return &Service{metaService: metaService}
}

// ComprehensiveReportInput parametriza o relatório completo
type ComprehensiveReportInput struct {
	AccountID  string
	DatePreset string            // default: last_30d
	TimeRange  *domain.TimeRange // prevalece sobre DatePreset
	CampaignID string            // opcional: escopa a busca de anúncios
	Limit      int               // default: 100
	MinSpend   float64           // filtro server-side spend > MinSpend
}

// SummaryReportInput parametriza o relatório resumido
type SummaryReportInput struct {
	AccountID  string
	DatePreset string            // default: last_30d
	TimeRange  *domain.TimeRange // prevalece sobre DatePreset
	Limit      int               // default: 50
}

// GetComprehensiveAdReport monta o relatório completo por anúncio:
//  1. busca os anúncios (da campanha, se informada, senão da conta) com o
//     conjunto fixo de metadados;
//  2. busca os insights da conta inteira com level=ad e filtro server-side
//     spend > MinSpend;
//  3. para cada anúncio com insight correspondente, deriva uma linha
//     agregada. Anúncios sem insight são descartados — é assim que o filtro
//     de spend se reflete na saída.
func (s *Service) GetComprehensiveAdReport(ctx context.Context, input ComprehensiveReportInput) (*domain.ComprehensiveReport, error) {
	datePreset := input.DatePreset
	if datePreset == "" {
		datePreset = defaultDatePreset
	}
	limit := input.Limit
	if limit <= 0 {
		limit = comprehensiveDefaultLimit
	}

	ads, err := s.metaService.GetAdsWithMetadata(ctx, input.AccountID, input.CampaignID, limit)
	if err != nil {
		return nil, err
	}

	insights, err := s.metaService.GetAccountAdInsights(ctx, input.AccountID, meta.AccountInsightQuery{
		Fields:     comprehensiveInsightFields,
		Limit:      limit,
		MinSpend:   input.MinSpend,
		DatePreset: datePreset,
		TimeRange:  input.TimeRange,
	})
	if err != nil {
		return nil, err
	}

	insightsByAdID := make(map[string]metadomain.AdInsight, len(insights))
	for _, insight := range insights {
		insightsByAdID[insight.AdID] = insight
	}

	rows := make([]domain.AggregatedRow, 0, len(ads))
	for _, ad := range ads {
		insight, ok := insightsByAdID[ad.ID]
		if !ok {
			// Sem registro de insight na janela: o filtro de spend foi
			// aplicado server-side apenas na chamada de insights
			continue
		}
		rows = append(rows, buildAggregatedRow(ad, insight))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": input.AccountID,
		"total_ads":  len(rows),
	}).Info("reporting: comprehensive ad report assembled")

	var campaignID *string
	if input.CampaignID != "" {
		campaignID = &input.CampaignID
	}

	return &domain.ComprehensiveReport{
		Data: rows,
		Summary: domain.ReportSummary{
			TotalAds:       len(rows),
			DatePreset:     datePreset,
			TimeRange:      input.TimeRange,
			AccountID:      input.AccountID,
			CampaignID:     campaignID,
			MinSpendFilter: input.MinSpend,
		},
	}, nil
}

// buildAggregatedRow deriva a linha agregada de um anúncio e seu insight
func buildAggregatedRow(ad metadomain.Ad, insight metadomain.AdInsight) domain.AggregatedRow {
	row := domain.AggregatedRow{
		AdID:     ad.ID,
		AdName:   ad.Name,
		AdStatus: ad.Status,
		Delivery: ad.EffectiveStatus,

		Reach:           strPtrOrNil(insight.Reach),
		Impressions:     strPtrOrNil(insight.Impressions),
		Frequency:       strPtrOrNil(insight.Frequency),
		ClicksAll:       strPtrOrNil(insight.Clicks),
		UniqueClicksAll: strPtrOrNil(insight.UniqueClicks),
		CTRAll:          strPtrOrNil(insight.CTR),
		UniqueCTRAll:    strPtrOrNil(insight.UniqueCTR),
		CPCAll:          strPtrOrNil(insight.CPC),
		CPM:             strPtrOrNil(insight.CPM),
		AmountSpent:     strPtrOrNil(insight.Spend),
	}

	// Sub-objetos aninhados campaign{id,name}/adset{id,name} prevalecem
	// sobre os ids "flat" quando ambos estão presentes
	row.CampaignID = ad.CampaignID
	if ad.Campaign != nil {
		row.CampaignID = ad.Campaign.ID
		row.CampaignName = strPtrOrNil(ad.Campaign.Name)
	}
	row.AdSetID = ad.AdsetID
	if ad.Adset != nil {
		row.AdSetID = ad.Adset.ID
		row.AdSetName = strPtrOrNil(ad.Adset.Name)
	}

	if ad.Creative != nil {
		row.AdCreativeID = strPtrOrNil(ad.Creative.ID)
		row.AssetURL = assetURL(ad.Creative)
	}

	row.Purchases = firstActionValue(insight.Actions, purchaseActionTypes...)
	row.CostPerPurchase = firstActionValue(insight.CostPerActionType, purchaseActionTypes...)

	row.Video3SecPlays = findActionValue(insight.VideoContinuous2SecActions, "video_view")
	row.VideoPlays25Percent = findActionValue(insight.VideoP25WatchedActions, "video_view")
	row.VideoPlays50Percent = findActionValue(insight.VideoP50WatchedActions, "video_view")
	row.VideoPlays75Percent = findActionValue(insight.VideoP75WatchedActions, "video_view")
	row.VideoPlays100Percent = findActionValue(insight.VideoP100WatchedActions, "video_view")
	row.VideoPlays = findActionValue(insight.VideoPlayActions, "video_view")
	row.ThruPlays = findActionValue(insight.VideoThruplayWatchedActions, "video_view")

	row.AddsToCart = firstActionValue(insight.Actions, "add_to_cart", "offsite_conversion.fb_pixel_add_to_cart")
	row.ContentViews = firstActionValue(insight.Actions, "view_content", "offsite_conversion.fb_pixel_view_content")
	row.CheckoutsInitiated = firstActionValue(insight.Actions, "initiate_checkout", "offsite_conversion.fb_pixel_initiate_checkout")
	row.LandingPageViews = findActionValue(insight.Actions, "landing_page_view")
	row.LinkClicks = findActionValue(insight.Actions, "link_click")
	row.OutboundClicks = findActionValue(insight.Actions, "outbound_click")

	row.PostReactions = findActionValue(insight.Actions, "post_reaction")
	row.PostComments = findActionValue(insight.Actions, "comment")
	row.PostSaves = findActionValue(insight.Actions, "post_save")
	row.PostShares = findActionValue(insight.Actions, "post_share")
	row.PostEngagement = findActionValue(insight.Actions, "post_engagement")
	row.PageLikes = findActionValue(insight.Actions, "like")

	return row
}

// assetURL deriva a URL do criativo: thumbnail, senão imagem, senão um
// marcador sintetizado com o id do vídeo, senão nulo
func assetURL(creative *metadomain.Creative) *string {
	if creative.ThumbnailURL != "" {
		return strPtrOrNil(creative.ThumbnailURL)
	}
	if creative.ImageURL != "" {
		return strPtrOrNil(creative.ImageURL)
	}
	if creative.ObjectStorySpec != nil && creative.ObjectStorySpec.VideoData != nil {
		videoID := creative.ObjectStorySpec.VideoData.VideoID
		if videoID == "" {
			videoID = "N/A"
		}
		marker := fmt.Sprintf("Video ID: %s", videoID)
		return &marker
	}
	return nil
}

// GetSummaryReport monta o relatório resumido por anúncio. Ao contrário de
// todas as demais operações, esta nunca propaga erro: falhas no fetch viram
// um payload estruturado {error, date_range}. A assimetria é herdada do
// contrato do produto e é candidata a unificação.
func (s *Service) GetSummaryReport(ctx context.Context, input SummaryReportInput) interface{} {
	datePreset := input.DatePreset
	if datePreset == "" {
		datePreset = defaultDatePreset
	}
	limit := input.Limit
	if limit <= 0 {
		limit = summaryDefaultLimit
	}

	insights, err := s.metaService.GetAccountAdInsights(ctx, input.AccountID, meta.AccountInsightQuery{
		Fields:     summaryInsightFields,
		Limit:      limit,
		MinSpend:   0,
		DatePreset: datePreset,
		TimeRange:  input.TimeRange,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": input.AccountID,
			"error":      err.Error(),
		}).Error("reporting: summary report fetch failed")

		return &domain.SummaryReportError{
			Error:     fmt.Sprintf("Failed to fetch insights: %s", err.Error()),
			DateRange: describeDateRange(datePreset, input.TimeRange),
		}
	}

	rows := make([]domain.SummaryRow, 0, len(insights))
	totalSpend := 0.0
	totalConversions := 0

	for _, insight := range insights {
		spend := parseFloatOrZero(insight.Spend)
		conversions := conversionCount(insight.Actions)
		cpa := costPerAcquisition(insight.CostPerActionType)

		totalSpend += spend
		totalConversions += conversions

		rows = append(rows, domain.SummaryRow{
			AdID:         insight.AdID,
			AdName:       insight.AdName,
			CampaignID:   insight.CampaignID,
			CampaignName: insight.CampaignName,
			AdsetID:      insight.AdsetID,
			AdsetName:    insight.AdsetName,
			Spend:        utils.RoundWithTwoDecimalPlace(spend),
			Impressions:  parseIntOrZero(insight.Impressions),
			Clicks:       parseIntOrZero(insight.Clicks),
			CTR:          parseFloatOrZero(insight.CTR),
			CPC:          parseFloatOrZero(insight.CPC),
			CPM:          parseFloatOrZero(insight.CPM),
			Conversions:  conversions,
			CPA:          cpa,
		})
	}

	averageCPA := 0.0
	if totalConversions > 0 {
		averageCPA = utils.RoundWithTwoDecimalPlace(totalSpend / float64(totalConversions))
	}

	return &domain.SummaryReport{
		Data: rows,
		Summary: domain.SummaryTotals{
			TotalAds:         len(rows),
			TotalSpend:       utils.RoundWithTwoDecimalPlace(totalSpend),
			TotalConversions: totalConversions,
			AverageCPA:       averageCPA,
			DatePreset:       datePreset,
			TimeRange:        input.TimeRange,
			AccountID:        input.AccountID,
		},
	}
}

// conversionCount extrai a contagem de conversões de compra via match por
// substring ("purchase" também casa os eventos de pixel)
func conversionCount(actions []metadomain.ActionEntry) int {
	value := findActionValue(actions, "purchase")
	if value == nil {
		return 0
	}
	return int(parseFloatOrZero(*value))
}

// costPerAcquisition extrai o CPA de compra; zero ou ausente viram nulo
func costPerAcquisition(costPerActions []metadomain.ActionEntry) *float64 {
	value := findActionValue(costPerActions, "purchase")
	if value == nil {
		return nil
	}
	cpa := parseFloatOrZero(*value)
	if cpa == 0 {
		return nil
	}
	rounded := utils.RoundWithTwoDecimalPlace(cpa)
	return &rounded
}

// describeDateRange ecoa a janela efetivamente aplicada na requisição:
// time_range prevalece sobre o preset, como em applyDateWindow
func describeDateRange(datePreset string, timeRange *domain.TimeRange) string {
	if timeRange != nil {
		return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", timeRange.Since, timeRange.Until)
	}
	return datePreset
}

func parseFloatOrZero(value string) float64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseIntOrZero(value string) int {
	return int(parseFloatOrZero(value))
}

func strPtrOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
