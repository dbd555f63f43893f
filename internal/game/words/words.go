// Package words provides the shared word list other games sample from.
package words

import "math/rand"

// list groups animals, food, colors, and everyday objects so text games
// draw from familiar vocabulary across a wide range of lengths.
var list = []string{
	// Animals
	"ant", "bat", "bear", "beaver", "bee", "bison", "butterfly", "camel",
	"cat", "cheetah", "chicken", "cobra", "crab", "crocodile", "crow",
	"deer", "dog", "dolphin", "donkey", "duck", "eagle", "elephant",
	"falcon", "ferret", "flamingo", "fox", "frog", "giraffe", "goat",
	"goose", "gorilla", "hamster", "hawk", "hedgehog", "heron", "hippo",
	"horse", "hyena", "jaguar", "jellyfish", "kangaroo", "koala",
	"lemur", "leopard", "lion", "llama", "lobster", "magpie", "meerkat",
	"mole", "mongoose", "monkey", "moose", "mouse", "octopus", "ostrich",
	"otter", "owl", "panda", "panther", "parrot", "pelican", "penguin",
	"pig", "pigeon", "porcupine", "rabbit", "raccoon", "rat", "raven",
	"reindeer", "rhinoceros", "salamander", "salmon", "scorpion", "seal",
	"shark", "sheep", "snail", "snake", "sparrow", "spider", "squirrel",
	"swan", "tiger", "toad", "turtle", "vulture", "walrus", "weasel",
	"whale", "wolf", "wombat", "woodpecker", "zebra",
	// Fruits and vegetables
	"apple", "apricot", "avocado", "banana", "blackberry", "blueberry",
	"broccoli", "cabbage", "carrot", "cherry", "coconut", "cranberry",
	"cucumber", "eggplant", "fig", "garlic", "ginger", "grape",
	"grapefruit", "kiwi", "lemon", "lettuce", "lime", "mango", "melon",
	"mushroom", "nectarine", "olive", "onion", "orange", "papaya",
	"peach", "pear", "pineapple", "plum", "pomegranate", "potato",
	"pumpkin", "radish", "raspberry", "spinach", "strawberry",
	"tangerine", "tomato", "watermelon", "zucchini",
	// Colors
	"red", "yellow", "green", "blue", "indigo", "violet",
	"purple", "magenta", "cyan", "pink", "brown", "white", "gray",
	"black", "gold", "silver", "bronze", "maroon", "navy", "teal",
	"crimson", "lavender", "turquoise",
	// Objects
	"computer", "keyboard", "monitor", "printer", "speaker", "camera",
	"phone", "tablet", "battery", "charger", "lamp", "mirror", "candle",
	"kettle", "bottle", "basket", "bucket", "pencil", "notebook",
	"calendar", "clock", "watch", "guitar", "violin", "trumpet", "drum",
	"bicycle", "scooter", "bridge", "tunnel", "window", "garden",
	"library", "museum", "stadium", "hospital", "mountain", "island",
	"river", "forest", "desert", "valley", "harbor", "castle",
	"lighthouse", "umbrella", "backpack", "compass", "lantern",
	"telescope",
}

// ByLength returns the words whose length falls within [minLen, maxLen].
// When the band is empty the full list is returned so callers always have
// something to sample.
func ByLength(minLen, maxLen int) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if len(w) >= minLen && len(w) <= maxLen {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return list
	}
	return out
}

// Sample draws count words (with replacement) from the given pool.
func Sample(rng *rand.Rand, pool []string, count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = pool[rng.Intn(len(pool))]
	}
	return out
}
