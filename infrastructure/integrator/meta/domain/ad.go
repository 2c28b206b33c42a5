package metadomain

// NamedObject é o sub-objeto {id,name} aninhado retornado pela Graph API
// em campos como campaign{id,name} e adset{id,name}
type NamedObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ad é o registro de metadados de um anúncio usado pelo relatório completo
type Ad struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Status          string       `json:"status"`
	EffectiveStatus string       `json:"effective_status"`
	CampaignID      string       `json:"campaign_id"`
	Campaign        *NamedObject `json:"campaign,omitempty"`
	AdsetID         string       `json:"adset_id"`
	Adset           *NamedObject `json:"adset,omitempty"`
	Creative        *Creative    `json:"creative,omitempty"`
}

// Creative contém os campos do criativo necessários para derivar a asset URL
type Creative struct {
	ID              string           `json:"id"`
	ThumbnailURL    string           `json:"thumbnail_url,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`
	VideoID         string           `json:"video_id,omitempty"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec,omitempty"`
}

type ObjectStorySpec struct {
	VideoData *VideoData `json:"video_data,omitempty"`
}

type VideoData struct {
	VideoID string `json:"video_id"`
}

// Paging é o bloco de paginação padrão da Graph API
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// AdListResponse é o envelope da listagem de anúncios
type AdListResponse struct {
	Data   []Ad   `json:"data"`
	Paging Paging `json:"paging"`
}
