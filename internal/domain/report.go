package domain

// AggregatedRow é a linha por anúncio do relatório completo: identidade e
// status copiados do anúncio, métricas do insight correspondente e action
// lists achatadas em campos escalares. Toda linha corresponde a exatamente
// um anúncio com registro de insight não vazio na janela.
type AggregatedRow struct {
	AdCreativeID *string `json:"ad_creative_id"`
	AdID         string  `json:"ad_id"`
	AdName       string  `json:"ad_name"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName *string `json:"campaign_name"`
	AdSetID      string  `json:"ad_set_id"`
	AdSetName    *string `json:"ad_set_name"`
	AdStatus     string  `json:"ad_status"`
	Delivery     string  `json:"delivery"`
	AssetURL     *string `json:"asset_url"`

	Reach           *string `json:"reach"`
	Impressions     *string `json:"impressions"`
	Frequency       *string `json:"frequency"`
	Purchases       *string `json:"purchases"`
	CostPerPurchase *string `json:"cost_per_purchase"`
	ClicksAll       *string `json:"clicks_all"`
	UniqueClicksAll *string `json:"unique_clicks_all"`
	CTRAll          *string `json:"ctr_all"`
	UniqueCTRAll    *string `json:"unique_ctr_all"`
	CPCAll          *string `json:"cpc_all"`
	CPM             *string `json:"cpm"`

	Video3SecPlays       *string `json:"video_3_sec_plays"`
	VideoPlays25Percent  *string `json:"video_plays_25_percent"`
	VideoPlays50Percent  *string `json:"video_plays_50_percent"`
	VideoPlays75Percent  *string `json:"video_plays_75_percent"`
	VideoPlays100Percent *string `json:"video_plays_100_percent"`
	VideoPlays           *string `json:"video_plays"`
	ThruPlays            *string `json:"thru_plays"`

	AddsToCart         *string `json:"adds_to_cart"`
	ContentViews       *string `json:"content_views"`
	CheckoutsInitiated *string `json:"checkouts_initiated"`
	LandingPageViews   *string `json:"landing_page_views"`
	LinkClicks         *string `json:"link_clicks"`
	OutboundClicks     *string `json:"outbound_clicks"`

	PostReactions  *string `json:"post_reactions"`
	PostComments   *string `json:"post_comments"`
	PostSaves      *string `json:"post_saves"`
	PostShares     *string `json:"post_shares"`
	PostEngagement *string `json:"post_engagement"`
	PageLikes      *string `json:"page_likes"`

	AmountSpent *string `json:"amount_spent"`
}

// ComprehensiveReport é a saída do relatório completo
type ComprehensiveReport struct {
	Data    []AggregatedRow `json:"data"`
	Summary ReportSummary   `json:"summary"`
}

// ReportSummary ecoa os filtros aplicados e a contagem de linhas incluídas
type ReportSummary struct {
	TotalAds       int        `json:"total_ads"`
	DatePreset     string     `json:"date_preset"`
	TimeRange      *TimeRange `json:"time_range"`
	AccountID      string     `json:"account_id"`
	CampaignID     *string    `json:"campaign_id"`
	MinSpendFilter float64    `json:"min_spend_filter"`
}

// SummaryRow é a linha enxuta do relatório resumido, com métricas já
// convertidas para tipos numéricos (ausentes viram zero)
type SummaryRow struct {
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdsetID      string   `json:"adset_id"`
	AdsetName    string   `json:"adset_name"`
	Spend        float64  `json:"spend"`
	Impressions  int      `json:"impressions"`
	Clicks       int      `json:"clicks"`
	CTR          float64  `json:"ctr"`
	CPC          float64  `json:"cpc"`
	CPM          float64  `json:"cpm"`
	Conversions  int      `json:"conversions"`
	CPA          *float64 `json:"cpa"`
}

// SummaryReport é a saída do relatório resumido
type SummaryReport struct {
	Data    []SummaryRow  `json:"data"`
	Summary SummaryTotals `json:"summary"`
}

type SummaryTotals struct {
	TotalAds         int        `json:"total_ads"`
	TotalSpend       float64    `json:"total_spend"`
	TotalConversions int        `json:"total_conversions"`
	AverageCPA       float64    `json:"average_cpa"`
	DatePreset       string     `json:"date_preset"`
	TimeRange        *TimeRange `json:"time_range"`
	AccountID        string     `json:"account_id"`
}

// SummaryReportError é o payload estruturado devolvido quando o fetch do
// relatório resumido falha. Essa operação nunca propaga erro: o contrato
// dela é sempre devolver um objeto de resultado.
type SummaryReportError struct {
	Error     string `json:"error"`
	DateRange string `json:"date_range"`
}
