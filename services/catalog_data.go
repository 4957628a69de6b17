package services

import "github.com/aquasnap/aqua_api/model"

// Static catalog tables. Content is editorial and only changes with a
// release, so it ships compiled in rather than seeded into the database.

var speciesCatalog = []model.MarineSpecies{
	{
		ID:                 "clownfish",
		Name:               "Clownfish",
		ScientificName:     "Amphiprioninae",
		Description:        "Colorful reef fish known for living in sea anemones.",
		Habitat:            "Coral reefs in warm waters",
		Diet:               "Algae, zooplankton, worms",
		ConservationStatus: "Least Concern",
		ImageURL:           "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=400&h=300&fit=crop",
		DifficultyLevel:    1,
		FunFact:            "All clownfish are born male and can change to female!",
		Size:               "7-16 cm",
		Depth:              "1-12 meters",
	},
	{
		ID:                 "great-white-shark",
		Name:               "Great White Shark",
		ScientificName:     "Carcharodon carcharias",
		Description:        "Large predatory shark found in coastal waters worldwide.",
		Habitat:            "Coastal surface waters",
		Diet:               "Seals, sea lions, fish, seabirds",
		ConservationStatus: "Vulnerable",
		ImageURL:           "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400&h=300&fit=crop",
		DifficultyLevel:    2,
		FunFact:            "Great whites can detect a single drop of blood in 25 gallons of water!",
		Size:               "4-6 meters",
		Depth:              "0-1,200 meters",
	},
	{
		ID:                 "sea-turtle",
		Name:               "Sea Turtle",
		ScientificName:     "Chelonioidea",
		Description:        "Ancient marine reptiles that migrate vast distances.",
		Habitat:            "Open oceans and coastal areas",
		Diet:               "Jellyfish, seagrass, algae, crabs",
		ConservationStatus: "Endangered",
		ImageURL:           "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400&h=300&fit=crop",
		DifficultyLevel:    2,
		FunFact:            "Sea turtles can live over 100 years and return to the same beach to nest!",
		Size:               "0.6-2 meters",
		Depth:              "0-1,000 meters",
	},
	{
		ID:                 "octopus",
		Name:               "Common Octopus",
		ScientificName:     "Octopus vulgaris",
		Description:        "Intelligent cephalopod with eight arms and color-changing abilities.",
		Habitat:            "Rocky reefs and sandy bottoms",
		Diet:               "Crabs, shrimp, fish, mollusks",
		ConservationStatus: "Least Concern",
		ImageURL:           "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=300&fit=crop",
		DifficultyLevel:    3,
		FunFact:            "Octopuses have three hearts and blue blood!",
		Size:               "0.3-1 meter",
		Depth:              "0-200 meters",
	},
	{
		ID:                 "whale-shark",
		Name:               "Whale Shark",
		ScientificName:     "Rhincodon typus",
		Description:        "The largest fish in the ocean, gentle filter feeder.",
		Habitat:            "Open oceans in tropical waters",
		Diet:               "Plankton, small fish, fish eggs",
		ConservationStatus: "Endangered",
		ImageURL:           "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=300&fit=crop",
		DifficultyLevel:    3,
		FunFact:            "Whale sharks can grow up to 12 meters long but are completely harmless!",
		Size:               "5-12 meters",
		Depth:              "0-1,928 meters",
	},
	{
		ID:                 "seahorse",
		Name:               "Seahorse",
		ScientificName:     "Hippocampus",
		Description:        "Unique fish with horse-like head and curled tail.",
		Habitat:            "Seagrass beds and coral reefs",
		Diet:               "Small crustaceans, plankton",
		ConservationStatus: "Near Threatened",
		ImageURL:           "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=300&fit=crop",
		DifficultyLevel:    2,
		FunFact:            "Male seahorses are the only males in the animal kingdom that get pregnant!",
		Size:               "2-35 cm",
		Depth:              "0-20 meters",
	},
	{
		ID:                 "manta-ray",
		Name:               "Manta Ray",
		ScientificName:     "Mobula birostris",
		Description:        "Giant ray with incredible wingspan and filter-feeding mouth.",
		Habitat:            "Open ocean and coral reefs",
		Diet:               "Plankton, small fish",
		ConservationStatus: "Vulnerable",
		ImageURL:           "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=300&fit=crop",
		DifficultyLevel:    4,
		FunFact:            "Manta rays have the largest brain-to-body ratio of any fish!",
		Size:               "3-7 meter wingspan",
		Depth:              "0-1,000 meters",
	},
	{
		ID:                 "blue-whale",
		Name:               "Blue Whale",
		ScientificName:     "Balaenoptera musculus",
		Description:        "The largest animal ever known to have lived on Earth.",
		Habitat:            "Open oceans worldwide",
		Diet:               "Krill",
		ConservationStatus: "Endangered",
		ImageURL:           "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=300&fit=crop",
		DifficultyLevel:    4,
		FunFact:            "A blue whale's heart alone can weigh as much as a car!",
		Size:               "24-27 meters",
		Depth:              "0-500 meters",
	},
	{
		ID:                 "leafy-sea-dragon",
		Name:               "Leafy Sea Dragon",
		ScientificName:     "Phycodurus eques",
		Description:        "Incredibly camouflaged relative of the seahorse.",
		Habitat:            "Kelp forests and seagrass beds",
		Diet:               "Small crustaceans, plankton",
		ConservationStatus: "Near Threatened",
		ImageURL:           "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=300&fit=crop",
		DifficultyLevel:    5,
		FunFact:            "Leafy sea dragons are so well camouflaged they look exactly like floating seaweed!",
		Size:               "20-24 cm",
		Depth:              "3-50 meters",
	},
	{
		ID:                 "anglerfish",
		Name:               "Anglerfish",
		ScientificName:     "Lophiiformes",
		Description:        "Deep-sea predator with bioluminescent lure.",
		Habitat:            "Deep ocean waters",
		Diet:               "Fish, crustaceans",
		ConservationStatus: "Least Concern",
		ImageURL:           "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=300&fit=crop",
		DifficultyLevel:    5,
		FunFact:            "Male anglerfish are much smaller and permanently attach to females!",
		Size:               "2.5 cm - 1 meter",
		Depth:              "200-2,000 meters",
	},
}

var conservationStatuses = []string{
	"Least Concern",
	"Near Threatened",
	"Vulnerable",
	"Endangered",
	"Critically Endangered",
}

var triviaCatalog = []model.TriviaQuestion{
	{
		ID:            "1",
		Question:      "What percentage of Earth's surface is covered by oceans?",
		Options:       []string{"65%", "71%", "78%", "82%"},
		CorrectAnswer: "71%",
		Explanation:   "About 71% of Earth's surface is covered by oceans, making our planet truly a \"blue planet\".",
		Difficulty:    1,
		Category:      "Ocean Facts",
	},
	{
		ID:            "2",
		Question:      "Which marine animal has three hearts?",
		Options:       []string{"Octopus", "Whale", "Dolphin", "Shark"},
		CorrectAnswer: "Octopus",
		Explanation:   "Octopuses have three hearts: two pump blood to the gills, and one pumps blood to the rest of the body.",
		Difficulty:    2,
		Category:      "Marine Biology",
	},
	{
		ID:            "3",
		Question:      "What is the deepest part of the ocean called?",
		Options:       []string{"Mariana Trench", "Puerto Rico Trench", "Japan Trench", "Tonga Trench"},
		CorrectAnswer: "Mariana Trench",
		Explanation:   "The Mariana Trench in the Pacific Ocean reaches depths of about 36,200 feet (11,034 meters).",
		Difficulty:    1,
		Category:      "Ocean Geography",
	},
	{
		ID:            "4",
		Question:      "Which whale species is known for having the longest migration?",
		Options:       []string{"Blue Whale", "Humpback Whale", "Gray Whale", "Sperm Whale"},
		CorrectAnswer: "Gray Whale",
		Explanation:   "Gray whales migrate up to 12,000 miles round trip between feeding and breeding grounds.",
		Difficulty:    2,
		Category:      "Marine Mammals",
	},
	{
		ID:            "5",
		Question:      "What do you call a group of fish swimming together?",
		Options:       []string{"Herd", "Flock", "School", "Pack"},
		CorrectAnswer: "School",
		Explanation:   "A group of fish swimming together is called a school, which helps them avoid predators and find food.",
		Difficulty:    1,
		Category:      "Marine Behavior",
	},
	{
		ID:            "6",
		Question:      "Which marine animal is known to use tools?",
		Options:       []string{"Sea Otter", "Seal", "Walrus", "Manatee"},
		CorrectAnswer: "Sea Otter",
		Explanation:   "Sea otters use rocks as tools to crack open shellfish and other hard-shelled prey.",
		Difficulty:    2,
		Category:      "Marine Intelligence",
	},
	{
		ID:            "7",
		Question:      "What causes ocean tides?",
		Options:       []string{"Wind patterns", "Moon's gravity", "Earth's rotation", "Temperature changes"},
		CorrectAnswer: "Moon's gravity",
		Explanation:   "Ocean tides are primarily caused by the gravitational pull of the Moon on Earth's water.",
		Difficulty:    1,
		Category:      "Ocean Science",
	},
	{
		ID:            "8",
		Question:      "Which fish can change its gender?",
		Options:       []string{"Clownfish", "Tuna", "Cod", "Salmon"},
		CorrectAnswer: "Clownfish",
		Explanation:   "All clownfish are born male and can change to female when needed for reproduction.",
		Difficulty:    2,
		Category:      "Fish Biology",
	},
	{
		ID:            "9",
		Question:      "What is the largest structure built by living organisms?",
		Options:       []string{"Great Barrier Reef", "Kelp Forest", "Coral Triangle", "Sargasso Sea"},
		CorrectAnswer: "Great Barrier Reef",
		Explanation:   "The Great Barrier Reef is the largest structure built by living organisms and can be seen from space.",
		Difficulty:    1,
		Category:      "Coral Reefs",
	},
	{
		ID:            "10",
		Question:      "How do dolphins navigate and hunt?",
		Options:       []string{"Echolocation", "Magnetic fields", "Star patterns", "Water currents"},
		CorrectAnswer: "Echolocation",
		Explanation:   "Dolphins use echolocation, producing clicks and interpreting the returning echoes to navigate and hunt.",
		Difficulty:    2,
		Category:      "Marine Senses",
	},
	{
		ID:            "11",
		Question:      "Which zone of the ocean receives no sunlight?",
		Options:       []string{"Sunlight Zone", "Twilight Zone", "Midnight Zone", "Abyssal Zone"},
		CorrectAnswer: "Midnight Zone",
		Explanation:   "The Midnight Zone (bathypelagic zone) begins at about 1,000 meters deep where no sunlight penetrates.",
		Difficulty:    3,
		Category:      "Ocean Zones",
	},
	{
		ID:            "12",
		Question:      "What is bioluminescence?",
		Options:       []string{"Heat production", "Light production", "Sound production", "Electricity production"},
		CorrectAnswer: "Light production",
		Explanation:   "Bioluminescence is the production of light by living organisms, common in deep-sea creatures.",
		Difficulty:    2,
		Category:      "Marine Phenomena",
	},
	{
		ID:            "13",
		Question:      "Which sea turtle species is the largest?",
		Options:       []string{"Green Sea Turtle", "Loggerhead", "Leatherback", "Hawksbill"},
		CorrectAnswer: "Leatherback",
		Explanation:   "Leatherback sea turtles can weigh up to 2,000 pounds and are the largest of all sea turtle species.",
		Difficulty:    2,
		Category:      "Sea Turtles",
	},
	{
		ID:            "14",
		Question:      "What creates the \"midnight zone\" in the ocean?",
		Options:       []string{"Cold temperatures", "High pressure", "Lack of sunlight", "Lack of oxygen"},
		CorrectAnswer: "Lack of sunlight",
		Explanation:   "The midnight zone is defined by the complete absence of sunlight below 1,000 meters depth.",
		Difficulty:    3,
		Category:      "Ocean Physics",
	},
	{
		ID:            "15",
		Question:      "Which marine animal has the most powerful bite?",
		Options:       []string{"Great White Shark", "Saltwater Crocodile", "Orca", "Giant Squid"},
		CorrectAnswer: "Saltwater Crocodile",
		Explanation:   "Saltwater crocodiles have the strongest bite force of any marine animal at over 3,700 PSI.",
		Difficulty:    3,
		Category:      "Marine Predators",
	},
	{
		ID:            "16",
		Question:      "How many chambers does a whale's heart have?",
		Options:       []string{"2", "3", "4", "5"},
		CorrectAnswer: "4",
		Explanation:   "Like all mammals, whales have four-chambered hearts that efficiently pump blood throughout their massive bodies.",
		Difficulty:    2,
		Category:      "Whale Anatomy",
	},
	{
		ID:            "17",
		Question:      "What is the fastest marine animal?",
		Options:       []string{"Sailfish", "Marlin", "Tuna", "Dolphin"},
		CorrectAnswer: "Sailfish",
		Explanation:   "Sailfish can reach speeds of up to 68 mph, making them the fastest fish in the ocean.",
		Difficulty:    2,
		Category:      "Marine Speed",
	},
	{
		ID:            "18",
		Question:      "Which coral type builds most coral reefs?",
		Options:       []string{"Soft coral", "Hard coral", "Sea fans", "Brain coral"},
		CorrectAnswer: "Hard coral",
		Explanation:   "Hard corals with calcium carbonate skeletons are the primary reef builders in tropical oceans.",
		Difficulty:    2,
		Category:      "Coral Biology",
	},
	{
		ID:            "19",
		Question:      "What do baleen whales primarily eat?",
		Options:       []string{"Fish", "Squid", "Krill", "Seals"},
		CorrectAnswer: "Krill",
		Explanation:   "Baleen whales filter-feed primarily on krill and other small planktonic organisms.",
		Difficulty:    1,
		Category:      "Whale Diet",
	},
	{
		ID:            "20",
		Question:      "Which ocean current helps regulate Earth's climate?",
		Options:       []string{"Gulf Stream", "California Current", "Kuroshio Current", "Antarctic Current"},
		CorrectAnswer: "Gulf Stream",
		Explanation:   "The Gulf Stream carries warm water northward, significantly influencing climate in the North Atlantic.",
		Difficulty:    3,
		Category:      "Ocean Currents",
	},
}

var shopCatalog = []model.ShopFish{
	{ID: "clownfish", Name: "Clownfish", Species: "Amphiprioninae", Price: 50, Icon: "🐠", Rarity: "common", Description: "A hardy reef favorite that thrives in pairs.", FoodType: "Flakes", Temperament: "Peaceful", Difficulty: 1},
	{ID: "angelfish", Name: "Angelfish", Species: "Pomacanthidae", Price: 100, Icon: "🐟", Rarity: "common", Description: "Graceful swimmer with striking vertical stripes.", FoodType: "Flakes", Temperament: "Semi-aggressive", Difficulty: 2},
	{ID: "seahorse", Name: "Seahorse", Species: "Hippocampus", Price: 200, Icon: "🦄", Rarity: "uncommon", Description: "Delicate drifter that anchors to seagrass.", FoodType: "Brine shrimp", Temperament: "Peaceful", Difficulty: 3},
	{ID: "pufferfish", Name: "Pufferfish", Species: "Tetraodontidae", Price: 150, Icon: "🐡", Rarity: "uncommon", Description: "Inflates when startled, needs careful tank mates.", FoodType: "Shellfish", Temperament: "Semi-aggressive", Difficulty: 3},
	{ID: "octopus", Name: "Octopus", Species: "Octopoda", Price: 400, Icon: "🐙", Rarity: "rare", Description: "Brilliant escape artist, keep the lid closed.", FoodType: "Crustaceans", Temperament: "Solitary", Difficulty: 4},
	{ID: "baby-shark", Name: "Baby Shark", Species: "Carcharhinus", Price: 300, Icon: "🦈", Rarity: "rare", Description: "Small but confident apex predator in training.", FoodType: "Fish", Temperament: "Aggressive", Difficulty: 4},
	{ID: "mini-whale", Name: "Miniature Whale", Species: "Balaenoptera", Price: 800, Icon: "🐋", Rarity: "legendary", Description: "The crown jewel of any collector's aquarium.", FoodType: "Krill", Temperament: "Gentle", Difficulty: 5},
	{ID: "moon-jellyfish", Name: "Moon Jellyfish", Species: "Aurelia aurita", Price: 120, Icon: "🪼", Rarity: "uncommon", Description: "Translucent beauty that pulses with the current.", FoodType: "Plankton", Temperament: "Passive", Difficulty: 2},
}

var resourceCatalog = []model.LearningResource{
	{ID: "coral-bleaching", Title: "Understanding Coral Bleaching: Climate Change Impact", Description: "Learn how rising ocean temperatures are affecting coral reef ecosystems worldwide.", Category: "video", URL: "https://www.youtube.com/watch?v=sEDmJZhYLEA", ReadingTime: 13},
	{ID: "trench-biodiversity", Title: "Recent Study: Marine Biodiversity in Deep Ocean Trenches", Description: "New discoveries reveal unexpectedly high biodiversity in the deepest parts of our oceans.", Category: "study", URL: "https://www.nature.com/articles/s41467-019-09678-z", ReadingTime: 20},
	{ID: "whale-migration", Title: "Whale Migration Patterns: Latest Research Findings", Description: "Tracking technology reveals surprising new whale migration routes and behaviors.", Category: "research", URL: "https://www.science.org/doi/10.1126/science.aaz9044", ReadingTime: 15},
	{ID: "plastic-cleanup", Title: "Ocean Plastic Pollution: Breaking News on Cleanup Technologies", Description: "Latest developments in innovative technologies to remove plastic waste from our oceans.", Category: "news", URL: "https://theoceancleanup.com/", ReadingTime: 8},
	{ID: "seahorse-conservation", Title: "Seahorse Conservation: Success Stories from Marine Protected Areas", Description: "Documentary showcasing successful seahorse conservation programs around the world.", Category: "video", URL: "https://www.youtube.com/watch?v=vN7Il8Om2WA", ReadingTime: 29},
	{ID: "ocean-acidification", Title: "Ocean Acidification: New Data from Global Monitoring Stations", Description: "Comprehensive analysis of ocean pH changes and their impact on marine ecosystems.", Category: "study", URL: "https://www.pnas.org/doi/10.1073/pnas.1210201110", ReadingTime: 25},
	{ID: "schooling-behavior", Title: "Schooling Fish Behavior: AI Analysis of Collective Intelligence", Description: "Machine learning reveals the complex decision-making processes in fish schools.", Category: "research", URL: "https://www.science.org/doi/10.1126/science.aay8049", ReadingTime: 18},
	{ID: "marine-sanctuaries", Title: "New Marine Protected Areas Established in Pacific Ocean", Description: "Government announces creation of largest marine sanctuary to protect endangered species.", Category: "news", URL: "https://www.noaa.gov/news-release/biden-harris-administration-announces-first-new-national-marine-sanctuaries-in-10-years", ReadingTime: 6},
}

// Authored question banks for the scenario games.

var ecosystemQuestions = []model.TriviaQuestion{
	{
		ID:            "eco-1",
		Question:      "A healthy coral reef is losing its algae-eating fish. What happens next?",
		Options:       []string{"Coral grows faster", "Algae overgrows and smothers the coral", "Water gets clearer", "More predators arrive immediately"},
		CorrectAnswer: "Algae overgrows and smothers the coral",
		Explanation:   "Grazing fish keep algae in check. Without them algae outcompetes coral for light and space.",
		Difficulty:    2,
		Category:      "Reef Dynamics",
	},
	{
		ID:            "eco-2",
		Question:      "Which organism forms the base of most open-ocean food webs?",
		Options:       []string{"Phytoplankton", "Krill", "Small fish", "Jellyfish"},
		CorrectAnswer: "Phytoplankton",
		Explanation:   "Phytoplankton convert sunlight into energy and feed nearly everything above them in the web.",
		Difficulty:    1,
		Category:      "Food Webs",
	},
	{
		ID:            "eco-3",
		Question:      "Sea otters were removed from a kelp forest. What is the likely result?",
		Options:       []string{"Kelp thrives", "Urchins multiply and graze the kelp down", "Fish populations explode", "The water warms"},
		CorrectAnswer: "Urchins multiply and graze the kelp down",
		Explanation:   "Otters are a keystone predator of sea urchins. Without them urchin barrens replace kelp forests.",
		Difficulty:    2,
		Category:      "Keystone Species",
	},
	{
		ID:            "eco-4",
		Question:      "What role do mangrove forests play for reef fish?",
		Options:       []string{"Nursery habitat for juveniles", "Main hunting ground for adults", "Spawning site for coral", "Source of plankton"},
		CorrectAnswer: "Nursery habitat for juveniles",
		Explanation:   "Mangrove roots shelter juvenile fish from predators until they are large enough for the reef.",
		Difficulty:    2,
		Category:      "Coastal Habitats",
	},
	{
		ID:            "eco-5",
		Question:      "Which addition would most improve a struggling seagrass meadow?",
		Options:       []string{"More grazing urchins", "Reduced water turbidity", "Warmer water", "Fewer herbivorous turtles"},
		CorrectAnswer: "Reduced water turbidity",
		Explanation:   "Seagrass needs sunlight. Clearer water lets more light reach the meadow so it can recover.",
		Difficulty:    3,
		Category:      "Restoration",
	},
}

var currentQuestions = []model.TriviaQuestion{
	{
		ID:            "cur-1",
		Question:      "A sea turtle riding from Florida toward Europe would follow which current?",
		Options:       []string{"Gulf Stream", "Humboldt Current", "California Current", "Agulhas Current"},
		CorrectAnswer: "Gulf Stream",
		Explanation:   "The Gulf Stream sweeps warm water from the Gulf of Mexico up the US east coast and across the Atlantic.",
		Difficulty:    1,
		Category:      "Surface Currents",
	},
	{
		ID:            "cur-2",
		Question:      "What drives the global \"conveyor belt\" of deep ocean circulation?",
		Options:       []string{"Differences in temperature and salinity", "Tidal forces", "Surface winds alone", "Earthquakes"},
		CorrectAnswer: "Differences in temperature and salinity",
		Explanation:   "Cold salty water sinks and warm fresher water rises, driving thermohaline circulation worldwide.",
		Difficulty:    2,
		Category:      "Deep Circulation",
	},
	{
		ID:            "cur-3",
		Question:      "Upwelling zones are rich fishing grounds because they bring up what?",
		Options:       []string{"Nutrients from the deep", "Warmer water", "Dissolved gold", "Fresh water"},
		CorrectAnswer: "Nutrients from the deep",
		Explanation:   "Upwelling lifts nutrient-rich deep water to the surface, fueling plankton blooms that feed fisheries.",
		Difficulty:    2,
		Category:      "Upwelling",
	},
	{
		ID:            "cur-4",
		Question:      "Which current keeps the Galapagos Islands cool despite sitting on the equator?",
		Options:       []string{"Humboldt Current", "Gulf Stream", "Kuroshio Current", "Canary Current"},
		CorrectAnswer: "Humboldt Current",
		Explanation:   "The cold Humboldt Current flows north along South America and bathes the Galapagos in cool water.",
		Difficulty:    3,
		Category:      "Surface Currents",
	},
	{
		ID:            "cur-5",
		Question:      "Rotating ocean current systems like the North Atlantic's are called what?",
		Options:       []string{"Gyres", "Eddies", "Rips", "Swells"},
		CorrectAnswer: "Gyres",
		Explanation:   "Wind and the Coriolis effect spin basin-scale loops of current called gyres.",
		Difficulty:    2,
		Category:      "Ocean Physics",
	},
	{
		ID:            "cur-6",
		Question:      "During El Nino, what happens to the Pacific trade winds?",
		Options:       []string{"They weaken or reverse", "They double in strength", "They turn northward", "Nothing changes"},
		CorrectAnswer: "They weaken or reverse",
		Explanation:   "Weakened trade winds let warm water slosh east across the Pacific, disrupting weather worldwide.",
		Difficulty:    3,
		Category:      "Climate",
	},
}
