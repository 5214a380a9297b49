package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a release date as stored in the catalog. Catalog files carry dates
// either as plain "2006-01-02" strings or as full RFC 3339 timestamps; Date
// normalizes both to a structured value on read and always writes RFC 3339.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Movie is a catalog record owned by the content catalog; this service only
// reads it.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	ReleaseDate Date     `json:"releaseDate"`
	Director    string   `json:"director"`
	Actors      []string `json:"actors"`
	PosterURL   string   `json:"posterUrl,omitempty"`
	BackdropURL string   `json:"backdropUrl,omitempty"`
}

// Episode is a single episode of a TVShow.
type Episode struct {
	EpisodeNumber int      `json:"episodeNumber"`
	SeasonNumber  int      `json:"seasonNumber"`
	ReleaseDate   Date     `json:"releaseDate"`
	Director      string   `json:"director"`
	Actors        []string `json:"actors"`
}

// TVShow is a catalog record owned by the content catalog; read-only here.
type TVShow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genres      []string  `json:"genres"`
	PosterURL   string    `json:"posterUrl,omitempty"`
	BackdropURL string    `json:"backdropUrl,omitempty"`
	Episodes    []Episode `json:"episodes"`
}

// Content is the tagged union of the two catalog record kinds. Exactly one of
// Movie or TVShow is non-nil, matching Type.
type Content struct {
	Type   ContentType
	Movie  *Movie
	TVShow *TVShow
}

// MovieContent wraps a movie record as Content.
func MovieContent(m *Movie) *Content {
	return &Content{Type: ContentTypeMovie, Movie: m}
}

// TVShowContent wraps a TV show record as Content.
func TVShowContent(s *TVShow) *Content {
	return &Content{Type: ContentTypeTVShow, TVShow: s}
}

// ID returns the identifier of the wrapped record.
func (c *Content) ID() string {
	switch c.Type {
	case ContentTypeMovie:
		return c.Movie.ID
	case ContentTypeTVShow:
		return c.TVShow.ID
	default:
		return ""
	}
}

// Title returns the display title of the wrapped record.
func (c *Content) Title() string {
	switch c.Type {
	case ContentTypeMovie:
		return c.Movie.Title
	case ContentTypeTVShow:
		return c.TVShow.Title
	default:
		return ""
	}
}

// MarshalJSON flattens the wrapped record and adds a contentType discriminant
// so the union survives a cache round trip.
func (c Content) MarshalJSON() ([]byte, error) {
	var inner any
	switch c.Type {
	case ContentTypeMovie:
		inner = c.Movie
	case ContentTypeTVShow:
		inner = c.TVShow
	default:
		return nil, fmt.Errorf("unknown content type %q", c.Type)
	}

	raw, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["contentType"], err = json.Marshal(c.Type)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// UnmarshalJSON reads the contentType discriminant and decodes the matching
// variant.
func (c *Content) UnmarshalJSON(data []byte) error {
	var probe struct {
		ContentType ContentType `json:"contentType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.ContentType {
	case ContentTypeMovie:
		var m Movie
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		c.Type = ContentTypeMovie
		c.Movie = &m
		c.TVShow = nil
	case ContentTypeTVShow:
		var s TVShow
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Type = ContentTypeTVShow
		c.TVShow = &s
		c.Movie = nil
	default:
		return fmt.Errorf("unknown content type %q", probe.ContentType)
	}
	return nil
}
