package model

// ClashPlayer is a clan member as reported by the Clash of Clans API.
// The fields are passed through to the UI unmodified.
type ClashPlayer struct {
	Name         string `json:"name"`
	Tag          string `json:"tag"`
	Townhall     int    `json:"townHallLevel"`
	WarStars     int    `json:"warStars"`
	Trophies     int    `json:"trophies"`
	BestTrophies int    `json:"bestTrophies"`
}
