package main

import (
	"time"

	"github.com/samber/lo"

	"cafedeslettres/internal/book"
)

type seedBook struct {
	Key         string
	Title       string
	Author      string
	Category    string
	Description string
}

func (s seedBook) toBook() book.Book {
	return book.Book{
		Title:       s.Title,
		Author:      s.Author,
		Category:    lo.ToPtr(s.Category),
		Description: lo.EmptyableToPtr(s.Description),
		ExternalKey: lo.ToPtr("seed:" + s.Key),
	}
}

var catalogue = []seedBook{
	{"madame-bovary", "Madame Bovary", "Gustave Flaubert", "Roman", "Emma rêve d'une vie que la province normande ne lui donnera jamais."},
	{"le-rouge-et-le-noir", "Le Rouge et le Noir", "Stendhal", "Roman", "L'ascension et la chute de Julien Sorel."},
	{"les-miserables", "Les Misérables", "Victor Hugo", "Roman", ""},
	{"l-etranger", "L'Étranger", "Albert Camus", "Roman", "Meursault, un été à Alger."},
	{"du-cote-de-chez-swann", "Du côté de chez Swann", "Marcel Proust", "Roman", "Le premier volume de la Recherche."},
	{"les-fleurs-du-mal", "Les Fleurs du mal", "Charles Baudelaire", "Poésie", ""},
	{"alcools", "Alcools", "Guillaume Apollinaire", "Poésie", "Recueil paru en 1913."},
	{"paroles", "Paroles", "Jacques Prévert", "Poésie", ""},
	{"le-deuxieme-sexe", "Le Deuxième Sexe", "Simone de Beauvoir", "Essai", ""},
	{"les-essais", "Les Essais", "Michel de Montaigne", "Philosophie", "Que sais-je ?"},
	{"pensees", "Pensées", "Blaise Pascal", "Philosophie", ""},
	{"l-ombre-du-quai", "L'Ombre du Quai", "Julien Marchand", "Roman Noir", ""},
	{"les-brumes-d-antan", "Les Brumes d'Antan", "Julien Marchand", "Thriller", ""},
	{"le-silence-des-pages", "Le Silence des Pages", "Julien Marchand", "Essai", ""},
	{"echos-du-soir", "Échos du Soir", "Julien Marchand", "Poésie", ""},
	{"memoires-d-hadrien", "Mémoires d'Hadrien", "Marguerite Yourcenar", "Histoire", "Un empereur écrit à Marc Aurèle."},
}

type seedClub struct {
	Name         string
	Abbreviation string
	Description  string
}

var clubs = []seedClub{
	{"Les Amis de Proust", "AP", "Une lecture lente de la Recherche, un volume par saison."},
	{"Cercle Polar", "CP", "Romans noirs et enquêtes, du quai des Orfèvres à Stockholm."},
	{"Poésie du Mardi", "PM", "On lit à voix haute, on discute ensuite."},
	{"Philosophie au Café", "PC", "Un texte court, une question, deux heures de débat."},
}

type seedEvent struct {
	Title       string
	Description string
	InDays      int
	Hour        int
	Location    *string
	MeetingURL  *string
	EventType   *string
}

func (e seedEvent) date(now time.Time) time.Time {
	d := now.AddDate(0, 0, e.InDays)
	return time.Date(d.Year(), d.Month(), d.Day(), e.Hour, 0, 0, 0, now.Location())
}

var events = []seedEvent{
	{
		Title:       "Rencontre avec Julien Marchand",
		Description: "Lecture et dédicace de L'Ombre du Quai.",
		InDays:      5, Hour: 19,
		Location:  lo.ToPtr("Café des Lettres, Paris 6e"),
		EventType: lo.ToPtr("in_person"),
	},
	{
		Title:       "Club de lecture en ligne : Madame Bovary",
		Description: "Discussion des trois premières parties.",
		InDays:      9, Hour: 20,
		Location:   lo.ToPtr("En ligne"),
		MeetingURL: lo.ToPtr("https://meet.example.org/bovary"),
		EventType:  lo.ToPtr("virtual"),
	},
	{
		Title:  "Atelier d'écriture poétique",
		InDays: 16, Hour: 18,
		Location: lo.ToPtr("Café des Lettres, salle du fond"),
	},
	{
		Title:       "Soirée Baudelaire",
		Description: "Lectures croisées des Fleurs du mal.",
		InDays:      -12, Hour: 19,
		Location: lo.ToPtr("Café des Lettres, Paris 6e"),
	},
}
