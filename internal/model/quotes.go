package model

import "math/rand/v2"

type Quote struct {
	Text   string
	Author string
}

var quotes = []Quote{
	{"The way to get started is to quit talking and begin doing.", "Walt Disney"},
	{"Your time is limited, so don't waste it living someone else's life.", "Steve Jobs"},
	{"The future depends on what you do today.", "Mahatma Gandhi"},
	{"It always seems impossible until it's done.", "Nelson Mandela"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"Productivity is never an accident. It is always the result of a commitment to excellence, intelligent planning, and focused effort.", "Paul J. Meyer"},
}

// Quotes returns the motivation quotes shown next to the timer.
func Quotes() []Quote { return append([]Quote(nil), quotes...) }

// RandomQuote picks one quote.
func RandomQuote() Quote { return quotes[rand.IntN(len(quotes))] }
