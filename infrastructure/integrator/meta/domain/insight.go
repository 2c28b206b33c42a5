package metadomain

// ActionEntry é um item de "action list": contagens heterogêneas de eventos
// (cliques, conversões, engajamento) retornadas pelo endpoint de insights.
// Os valores numéricos chegam como strings da Graph API.
type ActionEntry struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight é o registro de métricas por anúncio retornado por
// {act_id}/insights com level=ad. Métricas escalares chegam como strings;
// as demais são action lists que precisam ser achatadas por tipo.
type AdInsight struct {
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdsetID      string `json:"adset_id"`
	AdsetName    string `json:"adset_name"`

	Reach        string `json:"reach"`
	Impressions  string `json:"impressions"`
	Frequency    string `json:"frequency"`
	Spend        string `json:"spend"`
	Clicks       string `json:"clicks"`
	UniqueClicks string `json:"unique_clicks"`
	CTR          string `json:"ctr"`
	UniqueCTR    string `json:"unique_ctr"`
	CPC          string `json:"cpc"`
	CPM          string `json:"cpm"`

	Actions           []ActionEntry `json:"actions"`
	ActionValues      []ActionEntry `json:"action_values"`
	CostPerActionType []ActionEntry `json:"cost_per_action_type"`

	VideoPlayActions            []ActionEntry `json:"video_play_actions"`
	VideoThruplayWatchedActions []ActionEntry `json:"video_thruplay_watched_actions"`
	VideoP25WatchedActions      []ActionEntry `json:"video_p25_watched_actions"`
	VideoP50WatchedActions      []ActionEntry `json:"video_p50_watched_actions"`
	VideoP75WatchedActions      []ActionEntry `json:"video_p75_watched_actions"`
	VideoP100WatchedActions     []ActionEntry `json:"video_p100_watched_actions"`
	VideoContinuous2SecActions  []ActionEntry `json:"video_continuous_2_sec_watched_actions"`
}

// InsightListResponse é o envelope da listagem de insights
type InsightListResponse struct {
	Data   []AdInsight `json:"data"`
	Paging Paging      `json:"paging"`
}
