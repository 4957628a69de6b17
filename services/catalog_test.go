package services

import (
	"math/rand"
	"testing"

	"github.com/aquasnap/aqua_api/shared"
)

func newTestCatalog() *CatalogService {
	return &CatalogService{
		rng:     rand.New(rand.NewSource(1)),
		configs: defaultGameConfigs(),
	}
}

func TestGenerateQuestionsMatchesConfig(t *testing.T) {
	svc := newTestCatalog()

	for _, cfg := range svc.GameConfigs() {
		questions, err := svc.GenerateQuestions(cfg.Type)
		if err != nil {
			t.Fatalf("GenerateQuestions(%s): %v", cfg.Type, err)
		}
		if len(questions) != cfg.QuestionCount {
			t.Errorf("%s: %d questions, want %d", cfg.Type, len(questions), cfg.QuestionCount)
		}

		for _, q := range questions {
			if len(q.Options) == 0 {
				t.Errorf("%s: question %s has no options", cfg.Type, q.ID)
				continue
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Errorf("%s: question %s options %v missing answer %q", cfg.Type, q.ID, q.Options, q.CorrectAnswer)
			}
		}
	}
}

func TestGenerateQuestionsUnknownType(t *testing.T) {
	svc := newTestCatalog()

	if _, err := svc.GenerateQuestions("whale_karaoke"); err == nil {
		t.Fatal("expected error for unknown game type")
	}
}

func TestSpeciesQuestionsScaleWithDifficulty(t *testing.T) {
	svc := newTestCatalog()

	questions, err := svc.GenerateQuestions(shared.GameSpeciesIdentification)
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}

	for _, q := range questions {
		if q.Points%50 != 0 || q.Points == 0 {
			t.Errorf("question %s points = %d, want a positive multiple of 50", q.ID, q.Points)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %s has %d options, want 4", q.ID, len(q.Options))
		}
		if q.ImageURL == "" {
			t.Errorf("question %s has no image", q.ID)
		}
	}
}

func TestConservationQuestionsUseStatusOptions(t *testing.T) {
	svc := newTestCatalog()

	questions, err := svc.GenerateQuestions(shared.GameConservationStatus)
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}

	valid := map[string]bool{}
	for _, st := range conservationStatuses {
		valid[st] = true
	}
	for _, q := range questions {
		for _, opt := range q.Options {
			if !valid[opt] {
				t.Errorf("question %s has non-status option %q", q.ID, opt)
			}
		}
	}
}

func TestGameConfigsStableOrder(t *testing.T) {
	svc := newTestCatalog()

	configs := svc.GameConfigs()
	if len(configs) != 6 {
		t.Fatalf("got %d configs, want 6", len(configs))
	}
	if configs[0].Type != shared.GameSpeciesIdentification {
		t.Errorf("first config = %s, want %s", configs[0].Type, shared.GameSpeciesIdentification)
	}
	for _, cfg := range configs {
		if cfg.QuestionCount == 0 || cfg.TimePerQuestion == 0 {
			t.Errorf("config %s is incomplete: %+v", cfg.Type, cfg)
		}
	}
}

func TestTriviaCategoriesDistinct(t *testing.T) {
	svc := newTestCatalog()

	categories := svc.TriviaCategories()
	if len(categories) == 0 {
		t.Fatal("no trivia categories")
	}
	seen := map[string]bool{}
	for _, cat := range categories {
		if seen[cat] {
			t.Errorf("duplicate category %q", cat)
		}
		seen[cat] = true
	}
}

func TestShopCatalogResolvable(t *testing.T) {
	svc := newTestCatalog()

	for _, entry := range svc.ShopFish() {
		got, err := svc.ShopFishByID(entry.ID)
		if err != nil {
			t.Fatalf("ShopFishByID(%s): %v", entry.ID, err)
		}
		if got.Price <= 0 {
			t.Errorf("%s has price %d", entry.ID, got.Price)
		}
	}

	if _, err := svc.ShopFishByID("nope"); err == nil {
		t.Fatal("expected error for unknown shop id")
	}
}
