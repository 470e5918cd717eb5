package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"catdistribution/backend/models"

	"github.com/google/uuid"
)

// maxNameAttempts bounds the search for a free name before a random suffix is used
const maxNameAttempts = 20

var firstNames = []string{
	"Oliver", "Bella", "Leo", "Lily", "Milo", "Nala", "Simba",
	"Chloe", "Max", "Lucy", "Charlie", "Willow", "Jasper", "Ruby", "Oscar",
	"Sophie", "Jack", "Stella", "Felix", "Cleo", "Loki", "Zoe", "Toby",
	"Emma", "George", "Penny", "Gus", "Rosie", "Finn", "Molly", "Tucker",
	"Daisy", "Winston", "Maggie", "Sam", "Mittens", "Louie", "Ellie", "Apollo",
	"Gracie", "Henry", "Sadie", "Buddy", "Hazel", "Mochi", "Lola", "Rocky",
}

var personalityTraits = []string{
	"playful and full of energy",
	"calm and affectionate",
	"curious about everything",
	"a little mischievous but very loving",
	"shy at first, but warms up quickly",
	"always looking for a warm lap to sit on",
	"a big talker who loves attention",
	"an independent spirit with a gentle heart",
	"a little clumsy but incredibly sweet",
	"a brave explorer who loves adventure",
}

var breeds = []string{
	"Domestic Shorthair", "Siamese", "Maine Coon", "Persian", "Ragdoll",
	"Bengal", "British Shorthair", "Abyssinian", "Sphynx", "Norwegian Forest",
}

// NameTaken reports whether a cat already uses name
type NameTaken func(ctx context.Context, name string) (bool, error)

// CatFactory builds random cats. It is safe for concurrent use.
type CatFactory struct {
	mu     sync.Mutex
	rng    *rand.Rand
	taken  NameTaken
	images ImageSource
	now    func() time.Time
}

// NewCatFactory returns a factory seeded from seed. taken and images may be
// nil, meaning every name is free and cats get no picture.
func NewCatFactory(seed uint64, taken NameTaken, images ImageSource) *CatFactory {
	if images == nil {
		images = StaticImage("")
	}
	return &CatFactory{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		taken:  taken,
		images: images,
		now:    time.Now,
	}
}

// Generate satisfies Factory
func (f *CatFactory) Generate(ctx context.Context) (models.Cat, error) {
	name, err := f.uniqueName(ctx)
	if err != nil {
		return models.Cat{}, err
	}

	f.mu.Lock()
	cat := models.Cat{
		Name:   name,
		Gender: "F",
		Age:    f.rng.IntN(21),
		Breed:  breeds[f.rng.IntN(len(breeds))],
		Weight: math.Round((2.5+f.rng.Float64()*5.5)*10) / 10,
	}
	if f.rng.IntN(2) == 0 {
		cat.Gender = "M"
	}
	trait := personalityTraits[f.rng.IntN(len(personalityTraits))]
	f.mu.Unlock()

	cat.Description = Describe(cat.Name, cat.Gender, cat.Age, trait)
	cat.Image = f.images.RandomImage(ctx)
	return cat, nil
}

// uniqueName picks a first name suffixed with the current second until it
// finds one nobody uses
func (f *CatFactory) uniqueName(ctx context.Context) (string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		f.mu.Lock()
		first := firstNames[f.rng.IntN(len(firstNames))]
		f.mu.Unlock()

		name := first + strconv.Itoa(f.now().Second())
		if f.taken == nil {
			return name, nil
		}

		taken, err := f.taken(ctx, name)
		if err != nil {
			return "", fmt.Errorf("failed to check generated name: %w", err)
		}
		if !taken {
			return name, nil
		}
	}

	f.mu.Lock()
	first := firstNames[f.rng.IntN(len(firstNames))]
	f.mu.Unlock()
	return first + "-" + uuid.NewString()[:8], nil
}

// Describe writes the profile text shown on a cat card
func Describe(name, gender string, age int, trait string) string {
	pronoun, object, possessive := "She", "her", "her"
	if gender == "M" {
		pronoun, object, possessive = "He", "him", "his"
	}

	description := name + " is a " + trait + " cat. "
	switch {
	case age <= 2:
		description += pronoun + " is still very young and loves to play all day long."
	case age <= 5:
		description += pronoun + " enjoys both playtime and naps, making " + object + " the perfect companion."
	case age <= 10:
		description += pronoun + " has a gentle personality and loves cuddles but also appreciates " + possessive + " space."
	default:
		description += pronoun + " is a wise and relaxed cat who enjoys quiet moments and cozy spots."
	}
	return description
}
