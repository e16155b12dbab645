// Package codename produces cosmetic two-word gadget codenames. Codenames
// are display-only and deliberately not unique; collisions are acceptable.
package codename

import (
	"fmt"
	"math/rand"
	"strings"
)

var adjectives = []string{
	"Silent", "Crimson", "Phantom", "Midnight", "Iron",
	"Shadow", "Golden", "Rogue", "Arctic", "Obsidian",
	"Velvet", "Stealth", "Emerald", "Lunar", "Vagrant",
	"Hollow", "Scarlet", "Nimble", "Feral", "Covert",
}

var nouns = []string{
	"Falcon", "Viper", "Kraken", "Specter", "Mongoose",
	"Cobra", "Raven", "Jackal", "Panther", "Scorpion",
	"Osprey", "Mantis", "Wolverine", "Basilisk", "Condor",
	"Lynx", "Hornet", "Python", "Badger", "Cougar",
}

// Generate returns an adjective plus theme-word pair, e.g. "Silent Falcon".
func Generate() string {
	return adjectives[rand.Intn(len(adjectives))] + " " + nouns[rand.Intn(len(nouns))]
}

// ConfirmationCode returns the numeric code included in decommission
// responses. Cosmetic, not persisted.
func ConfirmationCode() int {
	return rand.Intn(459853)
}

// SuccessProbability returns a random "NN%" string attached to gadget reads.
func SuccessProbability() string {
	return fmt.Sprintf("%d%%", rand.Intn(100)+1)
}

// Valid reports whether s looks like a generated codename (used in tests).
func Valid(s string) bool {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return false
	}
	return contains(adjectives, parts[0]) && contains(nouns, parts[1])
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
