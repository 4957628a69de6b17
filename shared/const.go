package shared

const (
	UserID    = "user_id"
	AuthToken = "auth_token"

	GameSpeciesIdentification = "species_identification"
	GameHabitatMatching       = "habitat_matching"
	GameConservationStatus    = "conservation_status"
	GameMarineTrivia          = "marine_trivia"
	GameEcosystemBuilder      = "ecosystem_builder"
	GameOceanCurrents         = "ocean_currents"

	CertificateEnthusiast = "enthusiast"
	CertificateExpert     = "expert"

	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityLegendary = "legendary"

	PointsPerLevel = 1000

	MeterMin = 0
	MeterMax = 100
)
