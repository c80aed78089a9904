package movie

// builtin is the static catalog shipped with reelview. Order is display order.
var builtin = []Movie{
	{ID: 1, Title: "The Gorge", Date: "2025-02-13", Genre: GenreRomance, Poster: poster("gorge")},
	{ID: 2, Title: "Flight Risk", Date: "2025-01-22", Genre: GenreAction, Poster: poster("flight")},
	{ID: 3, Title: "High Rollers", Date: "2025-03-14", Genre: GenreAction, Poster: poster("rollers")},
	{ID: 4, Title: "Cupcakes, Lonely Cats", Date: "2025-03-14", Genre: GenreComedy, Poster: poster("cupcakes")},
	{ID: 5, Title: "A Murder In Oakland: Beauty Is Deadly", Date: "2025-03-14", Genre: GenreThriller, Poster: poster("oakland")},
	{ID: 6, Title: "Skarlett", Date: "2025-03-14", Genre: GenreDrama, Poster: poster("skarlett")},
	{ID: 7, Title: "Sister Midnight", Date: "2025-03-14", Genre: GenreHorror, Poster: poster("midnight")},
	{ID: 8, Title: "Penguin Girl", Date: "2025-03-14", Genre: GenreAnimation, Poster: poster("penguin")},
	{ID: 9, Title: "Be Happy", Date: "2025-02-16", Genre: GenreComedy, Poster: poster("happy")},
	{ID: 10, Title: "Sweet Heart", Date: "2025-02-14", Genre: GenreRomance, Poster: poster("sweet")},
	{ID: 11, Title: "Meanwhile", Date: "2025-03-14", Genre: GenreComedy, Poster: poster("meanwhile")},
	{ID: 12, Title: "The World Will Tremble", Date: "2025-03-14", Genre: GenreAction, Poster: poster("tremble")},
	{ID: 13, Title: "State Vs. A Nobody", Date: "2025-03-14", Genre: GenreDrama, Poster: poster("state")},
	{ID: 14, Title: "Racing Hearts", Date: "2025-04-20", Genre: GenreAction, Poster: poster("racing")},
	{ID: 15, Title: "Midnight City", Date: "2025-05-15", Genre: GenreThriller, Poster: poster("city")},
	{ID: 16, Title: "Ocean Dreams", Date: "2025-06-10", Genre: GenreRomance, Poster: poster("ocean")},
	{ID: 17, Title: "Space Warriors", Date: "2025-07-22", Genre: GenreSciFi, Poster: poster("space")},
	{ID: 18, Title: "Lost Chronicles", Date: "2025-08-05", Genre: GenreAdventure, Poster: poster("chronicles")},
}

func poster(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/300/450"
}

// Catalog returns a copy of the built-in catalog.
func Catalog() []Movie {
	out := make([]Movie, len(builtin))
	copy(out, builtin)
	return out
}
