package model

// Movie defines a catalogue movie record as served by the backend.
type Movie struct {
	IMDBID        string   `json:"imdbId"`
	Title         string   `json:"title"`
	ReleaseDate   string   `json:"releaseDate,omitempty"`
	Poster        string   `json:"poster,omitempty"`
	Backdrops     []string `json:"backdrops,omitempty"`
	Genres        []string `json:"genres,omitempty"`
	Cast          []string `json:"cast,omitempty"`
	Director      string   `json:"director,omitempty"`
	TrailerLink   *string  `json:"trailerLink,omitempty"`
	AverageRating *float64 `json:"averageRating,omitempty"`
	RatingCount   int      `json:"ratingCount"`
}

// IsZero reports whether m carries no data, which is what a malformed
// response body decodes to.
func (m *Movie) IsZero() bool {
	return m == nil || (m.IMDBID == "" && m.Title == "")
}

// Clone returns a deep copy of m.
func (m *Movie) Clone() *Movie {
	if m == nil {
		return nil
	}
	c := *m
	c.Backdrops = cloneStrings(m.Backdrops)
	c.Genres = cloneStrings(m.Genres)
	c.Cast = cloneStrings(m.Cast)
	if m.TrailerLink != nil {
		v := *m.TrailerLink
		c.TrailerLink = &v
	}
	if m.AverageRating != nil {
		v := *m.AverageRating
		c.AverageRating = &v
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// Page is one page of catalogue movies.
type Page struct {
	Content []Movie `json:"content"`
}
