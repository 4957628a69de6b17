package model

// Static catalog entries. These are read-only in-memory tables served by the
// catalog service; they are not persisted.

// MarineSpecies is one entry of the educational species catalog.
type MarineSpecies struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	ScientificName     string `json:"scientific_name"`
	Description        string `json:"description"`
	Habitat            string `json:"habitat"`
	Diet               string `json:"diet"`
	ConservationStatus string `json:"conservation_status"`
	ImageURL           string `json:"image_url"`
	DifficultyLevel    int    `json:"difficulty_level"` // 1-5
	FunFact            string `json:"fun_fact"`
	Size               string `json:"size"`
	Depth              string `json:"depth"`
}

// TriviaQuestion is one entry of the marine trivia database.
type TriviaQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    int      `json:"difficulty"` // 1-3
	Category      string   `json:"category"`
}

// ShopFish is a purchasable fish species in the tank shop.
type ShopFish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Price       int    `json:"price"`
	Icon        string `json:"icon"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
	FoodType    string `json:"food_type"`
	Temperament string `json:"temperament"`
	Difficulty  int    `json:"difficulty"` // care difficulty 1-5
}

// LearningResource is one entry of the learning hub catalog.
type LearningResource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	ReadingTime int    `json:"reading_time"` // minutes
}
