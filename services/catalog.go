package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/alphabatem/common/context"

	"github.com/aquasnap/aqua_api/model"
	"github.com/aquasnap/aqua_api/shared"
)

// CatalogService serves the static content tables and generates question
// sets for the quiz games. All data is in-memory and immutable after Start.
type CatalogService struct {
	context.DefaultService

	configs map[string]model.GameConfig

	mu  sync.Mutex
	rng *rand.Rand
}

const CATALOG_SVC = "catalog_svc"

func (svc CatalogService) Id() string {
	return CATALOG_SVC
}

func (svc *CatalogService) Configure(ctx *context.Context) error {
	svc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	svc.configs = defaultGameConfigs()

	return svc.DefaultService.Configure(ctx)
}

func defaultGameConfigs() map[string]model.GameConfig {
	return map[string]model.GameConfig{
		shared.GameSpeciesIdentification: {
			Type:            shared.GameSpeciesIdentification,
			Name:            "Species Identification",
			QuestionCount:   10,
			TimePerQuestion: 30 * time.Second,
			StreakStep:      25,
			TimeBonusTiers: []model.TimeBonusTier{
				{MinRemaining: 20 * time.Second, Bonus: 25},
				{MinRemaining: 10 * time.Second, Bonus: 15},
			},
			RevealDelay: 1500 * time.Millisecond,
		},
		shared.GameMarineTrivia: {
			Type:            shared.GameMarineTrivia,
			Name:            "Marine Trivia",
			QuestionCount:   15,
			TimePerQuestion: 25 * time.Second,
			StreakStep:      20,
			TimeBonusTiers: []model.TimeBonusTier{
				{MinRemaining: 15 * time.Second, Bonus: 20},
				{MinRemaining: 8 * time.Second, Bonus: 10},
			},
			RevealDelay: 2 * time.Second,
		},
		shared.GameConservationStatus: {
			Type:            shared.GameConservationStatus,
			Name:            "Conservation Status",
			QuestionCount:   12,
			TimePerQuestion: 40 * time.Second,
			BasePoints:      60,
			StreakStep:      30,
			TimeBonusTiers: []model.TimeBonusTier{
				{MinRemaining: 25 * time.Second, Bonus: 30},
				{MinRemaining: 15 * time.Second, Bonus: 20},
			},
			RevealDelay: 2500 * time.Millisecond,
		},
		shared.GameHabitatMatching: {
			Type:            shared.GameHabitatMatching,
			Name:            "Habitat Matching",
			QuestionCount:   12,
			TimePerQuestion: 45 * time.Second,
			BasePoints:      75,
			TimeBonusTiers: []model.TimeBonusTier{
				{MinRemaining: 30 * time.Second, Bonus: 25},
				{MinRemaining: 15 * time.Second, Bonus: 15},
			},
			RevealDelay: 1500 * time.Millisecond,
		},
		shared.GameEcosystemBuilder: {
			Type:            shared.GameEcosystemBuilder,
			Name:            "Ecosystem Builder",
			QuestionCount:   5,
			TimePerQuestion: 120 * time.Second,
			BasePoints:      100,
			RevealDelay:     2 * time.Second,
		},
		shared.GameOceanCurrents: {
			Type:            shared.GameOceanCurrents,
			Name:            "Ocean Currents",
			QuestionCount:   6,
			TimePerQuestion: 90 * time.Second,
			BasePoints:      150,
			TimeBonusTiers: []model.TimeBonusTier{
				{MinRemaining: 60 * time.Second, Bonus: 50},
				{MinRemaining: 30 * time.Second, Bonus: 25},
			},
			RevealDelay: 2 * time.Second,
		},
	}
}

func (svc *CatalogService) Start() error {
	return nil
}

func (svc *CatalogService) Species() []model.MarineSpecies {
	return speciesCatalog
}

func (svc *CatalogService) SpeciesByID(id string) (*model.MarineSpecies, error) {
	for i := range speciesCatalog {
		if speciesCatalog[i].ID == id {
			return &speciesCatalog[i], nil
		}
	}
	return nil, fmt.Errorf("unknown species: %s", id)
}

func (svc *CatalogService) ShopFish() []model.ShopFish {
	return shopCatalog
}

func (svc *CatalogService) ShopFishByID(id string) (*model.ShopFish, error) {
	for i := range shopCatalog {
		if shopCatalog[i].ID == id {
			return &shopCatalog[i], nil
		}
	}
	return nil, fmt.Errorf("unknown shop fish: %s", id)
}

func (svc *CatalogService) LearningResources() []model.LearningResource {
	return resourceCatalog
}

// TriviaCategories lists the distinct categories of the trivia bank, in
// first-seen order.
func (svc *CatalogService) TriviaCategories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, tq := range triviaCatalog {
		if !seen[tq.Category] {
			seen[tq.Category] = true
			out = append(out, tq.Category)
		}
	}
	return out
}

// GameConfigs returns every game config, for the library listing.
func (svc *CatalogService) GameConfigs() []model.GameConfig {
	out := make([]model.GameConfig, 0, len(svc.configs))
	for _, t := range []string{
		shared.GameSpeciesIdentification,
		shared.GameMarineTrivia,
		shared.GameConservationStatus,
		shared.GameHabitatMatching,
		shared.GameEcosystemBuilder,
		shared.GameOceanCurrents,
	} {
		out = append(out, svc.configs[t])
	}
	return out
}

func (svc *CatalogService) GameConfig(gameType string) (model.GameConfig, error) {
	cfg, ok := svc.configs[gameType]
	if !ok {
		return model.GameConfig{}, fmt.Errorf("unknown game type: %s", gameType)
	}
	return cfg, nil
}

// GenerateQuestions builds a fresh randomized question set for one session
// of the given game type.
func (svc *CatalogService) GenerateQuestions(gameType string) ([]model.Question, error) {
	cfg, err := svc.GameConfig(gameType)
	if err != nil {
		return nil, err
	}

	switch gameType {
	case shared.GameSpeciesIdentification:
		return svc.speciesQuestions(cfg), nil
	case shared.GameMarineTrivia:
		return svc.triviaQuestions(cfg, triviaCatalog, 40), nil
	case shared.GameConservationStatus:
		return svc.conservationQuestions(cfg), nil
	case shared.GameHabitatMatching:
		return svc.habitatQuestions(cfg), nil
	case shared.GameEcosystemBuilder:
		return svc.triviaQuestions(cfg, ecosystemQuestions, 0), nil
	case shared.GameOceanCurrents:
		return svc.triviaQuestions(cfg, currentQuestions, 0), nil
	}
	return nil, fmt.Errorf("unknown game type: %s", gameType)
}

// speciesQuestions asks the player to name a species from its photo. Points
// scale with the species difficulty rating.
func (svc *CatalogService) speciesQuestions(cfg model.GameConfig) []model.Question {
	picks := svc.sampleSpecies(cfg.QuestionCount)

	questions := make([]model.Question, 0, len(picks))
	for i, sp := range picks {
		options := svc.nameOptions(sp.Name, 4)
		questions = append(questions, model.Question{
			ID:            fmt.Sprintf("%s-%d", sp.ID, i),
			Prompt:        "Which species is shown here?",
			ImageURL:      sp.ImageURL,
			Options:       options,
			CorrectAnswer: sp.Name,
			Points:        sp.DifficultyLevel * 50,
			Explanation:   sp.FunFact,
			Category:      sp.Habitat,
		})
	}
	return questions
}

// triviaQuestions adapts a trivia bank to the question set. When
// pointsPerDifficulty is zero the config base points apply instead.
func (svc *CatalogService) triviaQuestions(cfg model.GameConfig, bank []model.TriviaQuestion, pointsPerDifficulty int) []model.Question {
	idx := svc.samplePerm(len(bank), cfg.QuestionCount)

	questions := make([]model.Question, 0, len(idx))
	for i, j := range idx {
		tq := bank[j]
		points := cfg.BasePoints
		if pointsPerDifficulty > 0 {
			points = tq.Difficulty * pointsPerDifficulty
		}
		questions = append(questions, model.Question{
			ID:            fmt.Sprintf("%s-%d", tq.ID, i),
			Prompt:        tq.Question,
			Options:       svc.shuffled(tq.Options),
			CorrectAnswer: tq.CorrectAnswer,
			Points:        points,
			Explanation:   tq.Explanation,
			Category:      tq.Category,
		})
	}
	return questions
}

func (svc *CatalogService) conservationQuestions(cfg model.GameConfig) []model.Question {
	picks := svc.sampleSpecies(cfg.QuestionCount)

	questions := make([]model.Question, 0, len(picks))
	for i, sp := range picks {
		options := svc.statusOptions(sp.ConservationStatus, 4)
		questions = append(questions, model.Question{
			ID:            fmt.Sprintf("%s-%d", sp.ID, i),
			Prompt:        fmt.Sprintf("What is the conservation status of the %s?", sp.Name),
			ImageURL:      sp.ImageURL,
			Options:       options,
			CorrectAnswer: sp.ConservationStatus,
			Points:        cfg.BasePoints,
			Explanation:   sp.FunFact,
			Category:      "Conservation",
		})
	}
	return questions
}

func (svc *CatalogService) habitatQuestions(cfg model.GameConfig) []model.Question {
	picks := svc.sampleSpecies(cfg.QuestionCount)

	questions := make([]model.Question, 0, len(picks))
	for i, sp := range picks {
		options := svc.habitatOptions(sp.Habitat, 4)
		questions = append(questions, model.Question{
			ID:            fmt.Sprintf("%s-%d", sp.ID, i),
			Prompt:        fmt.Sprintf("Where does the %s live?", sp.Name),
			ImageURL:      sp.ImageURL,
			Options:       options,
			CorrectAnswer: sp.Habitat,
			Points:        cfg.BasePoints,
			Explanation:   sp.Description,
			Category:      "Habitats",
		})
	}
	return questions
}

// sampleSpecies returns n species, cycling through reshuffles when n exceeds
// the catalog size.
func (svc *CatalogService) sampleSpecies(n int) []model.MarineSpecies {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	out := make([]model.MarineSpecies, 0, n)
	for len(out) < n {
		perm := svc.rng.Perm(len(speciesCatalog))
		for _, j := range perm {
			if len(out) == n {
				break
			}
			out = append(out, speciesCatalog[j])
		}
	}
	return out
}

// samplePerm returns min(n, size) distinct indexes in random order.
func (svc *CatalogService) samplePerm(size, n int) []int {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if n > size {
		n = size
	}
	return svc.rng.Perm(size)[:n]
}

func (svc *CatalogService) shuffled(options []string) []string {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	out := make([]string, len(options))
	copy(out, options)
	svc.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (svc *CatalogService) nameOptions(correct string, count int) []string {
	names := make([]string, 0, len(speciesCatalog))
	for _, sp := range speciesCatalog {
		if sp.Name != correct {
			names = append(names, sp.Name)
		}
	}
	return svc.buildOptions(correct, names, count)
}

func (svc *CatalogService) statusOptions(correct string, count int) []string {
	others := make([]string, 0, len(conservationStatuses))
	for _, st := range conservationStatuses {
		if st != correct {
			others = append(others, st)
		}
	}
	return svc.buildOptions(correct, others, count)
}

func (svc *CatalogService) habitatOptions(correct string, count int) []string {
	seen := map[string]bool{correct: true}
	others := make([]string, 0, len(speciesCatalog))
	for _, sp := range speciesCatalog {
		if !seen[sp.Habitat] {
			seen[sp.Habitat] = true
			others = append(others, sp.Habitat)
		}
	}
	return svc.buildOptions(correct, others, count)
}

// buildOptions mixes the correct answer with random distractors and shuffles
// the result.
func (svc *CatalogService) buildOptions(correct string, distractors []string, count int) []string {
	svc.mu.Lock()

	perm := svc.rng.Perm(len(distractors))
	options := []string{correct}
	for _, j := range perm {
		if len(options) == count {
			break
		}
		options = append(options, distractors[j])
	}
	svc.mu.Unlock()

	return svc.shuffled(options)
}
