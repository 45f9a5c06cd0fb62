package dashboard

import "time"

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "La lecture est une amitié.", Author: "Marcel Proust"},
	{Text: "Un livre est un ami qui ne trompe jamais.", Author: "Prosper Mérimée"},
	{Text: "La lecture, c'est le voyage de ceux qui ne peuvent prendre le train.", Author: "Francis de Croisset"},
	{Text: "Un livre qu'on quitte sans en avoir extrait quelque chose est un livre qu'on n'a pas lu.", Author: "Antoine Albalat"},
}

// QuoteOfTheDay rotates through the quotes by day of year.
func QuoteOfTheDay(now time.Time) Quote {
	return quotes[now.YearDay()%len(quotes)]
}
