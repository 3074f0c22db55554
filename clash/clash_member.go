package clash

import (
	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

// clashMember is the wire format of one entry in the /members response.
// WarStars is not always present; it defaults to 0.
type clashMember struct {
	Name         string `json:"name"`
	Tag          string `json:"tag"`
	TownHall     int    `json:"townHallLevel"`
	WarStars     int    `json:"warStars"`
	Trophies     int    `json:"trophies"`
	BestTrophies int    `json:"bestTrophies"`
}

func (m *clashMember) toClashPlayer() *model.ClashPlayer {
	return &model.ClashPlayer{
		Name:         m.Name,
		Tag:          m.Tag,
		Townhall:     m.TownHall,
		WarStars:     m.WarStars,
		Trophies:     m.Trophies,
		BestTrophies: m.BestTrophies,
	}
}
