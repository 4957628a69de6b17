package dto

import "github.com/aquasnap/aqua_api/model"

type BuyFishRequest struct {
	SpeciesID string `json:"species_id" validate:"required"`
}

// TankView bundles the tank meters with the fish living in it.
type TankView struct {
	Tank model.TankState   `json:"tank"`
	Fish []model.OwnedFish `json:"fish"`
}

// TankActionResult reports the outcome of a paid tank action.
type TankActionResult struct {
	Tank            TankView `json:"tank"`
	PointsSpent     int      `json:"points_spent"`
	PointsRemaining int      `json:"points_remaining"`
}
