package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DataGenerator draws every random field value from a single injected source,
// so a fixed seed reproduces the same dataset.
type DataGenerator struct {
	rand    *rand.Rand
	counter int
	title   cases.Caser
}

func NewDataGenerator(rng *rand.Rand) *DataGenerator {
	return &DataGenerator{
		rand:  rng,
		title: cases.Title(language.English),
	}
}

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth",
		"William", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Karen",
		"Daniel", "Lisa", "Matthew", "Nancy", "Anthony", "Sandra", "Mark", "Ashley", "Priya", "Emily",
		"Kenji", "Fatima", "Omar", "Sofia", "Liam", "Chloe", "Noah", "Aisha", "Mateo", "Hannah",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
		"Nakamura", "Okafor", "Kowalski", "Novak", "Singh", "Haddad", "Costa", "Schmidt", "Rossi", "Dubois",
	}
	genders     = []string{"Female", "Male", "Non-binary"}
	mailDomains = []string{"example.com", "example.net", "example.org", "mail.test", "shop.test"}
	streets     = []string{
		"Main Street", "Oak Avenue", "Pine Road", "Maple Drive", "Cedar Lane", "Elm Street", "Lakeview Boulevard",
		"Hillcrest Way", "Sunset Avenue", "River Road", "Park Place", "Washington Street", "Highland Court",
	}
	cities = []string{
		"Springfield", "Riverside", "Franklin", "Greenville", "Fairview", "Madison", "Georgetown", "Clinton",
		"Arlington", "Salem", "Ashland", "Burlington", "Milton", "Newport", "Oxford", "Bristol",
	}
	states = []string{
		"California", "Texas", "Florida", "New York", "Illinois", "Ohio", "Georgia", "Washington",
		"Oregon", "Colorado", "Arizona", "Michigan", "Virginia", "Massachusetts", "Nevada", "Utah",
	}
	countries = []string{
		"United States", "Canada", "United Kingdom", "Germany", "France", "Spain", "Italy", "Netherlands",
		"Australia", "Japan", "Brazil", "Mexico", "India", "Sweden", "Ireland", "New Zealand",
	}
	companySuffixes = []string{"Inc", "LLC", "Group", "Ltd", "and Sons", "Trading Co", "Supply", "Partners"}
	words           = []string{
		"alpha", "amber", "atlas", "bold", "bright", "cedar", "clear", "coral", "crest", "delta",
		"ember", "fable", "falcon", "fresh", "golden", "harbor", "iron", "jade", "lunar", "maple",
		"nova", "orbit", "pearl", "pixel", "prime", "quartz", "rapid", "solar", "summit", "swift",
		"terra", "urban", "vivid", "willow", "zenith", "echo", "lotus", "nimbus", "onyx", "vector",
	}
	sentenceWords = []string{
		"quality", "great", "value", "product", "arrived", "quickly", "works", "as", "expected", "would",
		"recommend", "packaging", "was", "solid", "easy", "to", "use", "the", "design", "feels",
		"durable", "and", "light", "price", "fair", "for", "everyday", "daily", "customer", "service",
		"helpful", "color", "matches", "photos", "size", "fits", "well", "simple", "setup", "reliable",
	}
)

// IntBetween returns a uniform integer in [min, max].
func (g *DataGenerator) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rand.Intn(max-min+1)
}

// Chance returns true with probability p.
func (g *DataGenerator) Chance(p float64) bool {
	return g.rand.Float64() < p
}

func (g *DataGenerator) pick(values []string) string {
	return values[g.rand.Intn(len(values))]
}

func (g *DataGenerator) FirstName() string {
	return g.pick(firstNames)
}

func (g *DataGenerator) LastName() string {
	return g.pick(lastNames)
}

func (g *DataGenerator) Gender() string {
	return g.pick(genders)
}

func (g *DataGenerator) Name() string {
	return g.FirstName() + " " + g.LastName()
}

// Email builds an address from the given name parts. A running counter keeps addresses unique.
func (g *DataGenerator) Email(first, last string) string {
	g.counter++
	local := strings.ToLower(first + "." + last)
	local = strings.ReplaceAll(local, " ", "")
	return fmt.Sprintf("%s%d@%s", local, g.counter, g.pick(mailDomains))
}

func (g *DataGenerator) Phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", g.IntBetween(200, 999), g.rand.Intn(1000), g.rand.Intn(10000))
}

func (g *DataGenerator) StreetAddress() string {
	return fmt.Sprintf("%d %s", g.IntBetween(1, 9999), g.pick(streets))
}

func (g *DataGenerator) City() string {
	return g.pick(cities)
}

func (g *DataGenerator) State() string {
	return g.pick(states)
}

func (g *DataGenerator) Country() string {
	return g.pick(countries)
}

// FullAddress is a single-line postal address.
func (g *DataGenerator) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %05d", g.StreetAddress(), g.City(), g.State(), g.rand.Intn(100000))
}

func (g *DataGenerator) Company() string {
	return g.LastName() + " " + g.pick(companySuffixes)
}

// Word returns a random word with its first letter upper-cased.
func (g *DataGenerator) Word() string {
	return g.title.String(g.pick(words))
}

func (g *DataGenerator) Sentence() string {
	n := g.IntBetween(6, 10)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.pick(sentenceWords)
	}
	parts[0] = g.title.String(parts[0])
	return strings.Join(parts, " ") + "."
}

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Lexify replaces every '?' in pattern with a random ASCII letter of either case.
func (g *DataGenerator) Lexify(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		if r == '?' {
			b.WriteByte(asciiLetters[g.rand.Intn(len(asciiLetters))])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UUID returns a version 4 UUID whose bytes come from the seeded source.
func (g *DataGenerator) UUID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return "", fmt.Errorf("failed to draw uuid: %w", err)
	}
	return id.String(), nil
}

// Amount returns a uniform amount in [min, max] rounded to cents.
func (g *DataGenerator) Amount(min, max float64) decimal.Decimal {
	v := min + g.rand.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(2)
}

// DateBetween returns a uniform calendar day in [start, end].
func (g *DataGenerator) DateBetween(start, end time.Time) time.Time {
	start, end = Day(start), Day(end)
	if !end.After(start) {
		return start
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.rand.Intn(days+1))
}

// DateWithin returns a uniform calendar day in [start, start+days].
func (g *DataGenerator) DateWithin(start time.Time, days int) time.Time {
	start = Day(start)
	return start.AddDate(0, 0, g.rand.Intn(days+1))
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
