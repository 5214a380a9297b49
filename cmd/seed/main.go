// Command seed populates the data directory with a small fixed catalog and a
// demo user so the API can be exercised immediately.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ottstream/mylist/internal/config"
	"github.com/ottstream/mylist/internal/domain/model"
	"github.com/ottstream/mylist/internal/infrastructure/jsonstore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := jsonstore.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open data dir: %w", err)
	}

	if err := jsonstore.WriteAll(store, jsonstore.MoviesCollection, seedMovies()); err != nil {
		return err
	}
	if err := jsonstore.WriteAll(store, jsonstore.TVShowsCollection, seedTVShows()); err != nil {
		return err
	}
	if err := jsonstore.WriteAll(store, jsonstore.UsersCollection, seedUsers()); err != nil {
		return err
	}
	if err := jsonstore.WriteAll(store, jsonstore.WatchlistCollection, []struct{}{}); err != nil {
		return err
	}

	fmt.Printf("seeded catalog and users into %s\n", store.Dir())
	return nil
}

func date(value string) model.Date {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return model.Date{Time: t}
}

func seedMovies() []model.Movie {
	return []model.Movie{
		{
			ID:          "13a07c8d-f360-42ff-80ff-59db8e779c1f",
			Title:       "The Matrix",
			Description: "A computer programmer discovers that reality as he knows it is a simulation.",
			Genres:      []string{"Action", "SciFi"},
			ReleaseDate: date("1999-03-31"),
			Director:    "The Wachowskis",
			Actors:      []string{"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss"},
		},
		{
			ID:          "e1ad42f6-f0bf-470a-8820-b79eef7c1fe7",
			Title:       "The Shawshank Redemption",
			Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption.",
			Genres:      []string{"Drama"},
			ReleaseDate: date("1994-09-23"),
			Director:    "Frank Darabont",
			Actors:      []string{"Tim Robbins", "Morgan Freeman"},
		},
		{
			ID:          "f2be53c7-e1c8-4a1b-9f3d-8e4a5b6c7d8e",
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing technology is given an inverse task.",
			Genres:      []string{"Action", "SciFi"},
			ReleaseDate: date("2010-07-16"),
			Director:    "Christopher Nolan",
			Actors:      []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"},
		},
	}
}

func seedTVShows() []model.TVShow {
	return []model.TVShow{
		{
			ID:          "a7c31b2e-9d45-4f8a-b6e1-0c2d3e4f5a6b",
			Title:       "Breaking Bad",
			Description: "A chemistry teacher turned methamphetamine producer navigates the drug trade.",
			Genres:      []string{"Drama"},
			Episodes: []model.Episode{
				{EpisodeNumber: 1, SeasonNumber: 1, ReleaseDate: date("2008-01-20"), Director: "Vince Gilligan", Actors: []string{"Bryan Cranston", "Aaron Paul"}},
				{EpisodeNumber: 2, SeasonNumber: 1, ReleaseDate: date("2008-01-27"), Director: "Adam Bernstein", Actors: []string{"Bryan Cranston", "Aaron Paul"}},
			},
		},
		{
			ID:          "b8d42c3f-0e56-4a9b-c7f2-1d3e4f5a6b7c",
			Title:       "Stranger Things",
			Description: "A group of kids uncover supernatural mysteries in their small town.",
			Genres:      []string{"SciFi", "Horror"},
			Episodes: []model.Episode{
				{EpisodeNumber: 1, SeasonNumber: 1, ReleaseDate: date("2016-07-15"), Director: "The Duffer Brothers", Actors: []string{"Millie Bobby Brown", "Finn Wolfhard"}},
			},
		},
	}
}

func seedUsers() []model.User {
	return []model.User{
		{
			ID:        "demo-user-1",
			Username:  "demo",
			Email:     "demo@example.com",
			Password:  "password123",
			Name:      "Demo User",
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID:        "demo-user-2",
			Username:  "movie_buff",
			Email:     "buff@example.com",
			Password:  "password123",
			Name:      "Movie Buff",
			CreatedAt: "2024-01-01T00:00:00Z",
		},
	}
}
