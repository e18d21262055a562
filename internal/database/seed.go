// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/cinefilter/internal/database/query"
	"github.com/tomtom215/cinefilter/internal/logging"
)

type seedMovie struct {
	id          int
	title       string
	releaseDate *string
	runTime     *int
	allowedAge  *string
	country     string
	genres      []int
	directors   []int
	otts        []int
}

type seedDirector struct {
	id          int
	name        string
	gender      string
	nationality string
	birthYear   int
}

type seedUser struct {
	id        int
	name      string
	birthYear int
	gender    string
	favorites []int
}

type seedReview struct {
	movieID int
	userID  int
	rating  float64
	comment string
	daysAgo int
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// nullable turns a missing optional value into an untyped nil argument.
func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

var (
	sampleGenres = []string{"드라마", "코미디", "액션", "로맨스", "스릴러", "범죄", "판타지", "뮤지컬", "공포", "SF"}
	sampleOTTs   = []string{"넷플릭스", "티빙", "디즈니플러스", "왓챠", "웨이브", "쿠팡플레이"}

	sampleDirectors = []seedDirector{
		{1, "봉준호", "M", "KOR", 1969},
		{2, "Christopher Nolan", "M", "GBR", 1970},
		{3, "이병헌", "M", "KOR", 1980},
		{4, "Chris Buck", "M", "USA", 1958},
		{5, "Jennifer Lee", "F", "USA", 1971},
		{6, "박찬욱", "M", "KOR", 1963},
		{7, "Lana Wachowski", "F", "USA", 1965},
		{8, "김지운", "M", "KOR", 1964},
	}

	// Genre, director and OTT references are 1-based positions in the lists above.
	sampleMovies = []seedMovie{
		{1, "기생충", strPtr("2019-05-30"), intPtr(132), strPtr("15+"), "KOR", []int{1, 5}, []int{1}, []int{1, 4}},
		{2, "인터스텔라", strPtr("2014-11-06"), intPtr(169), strPtr("12+"), "USA", []int{10, 1}, []int{2}, []int{2}},
		{3, "극한직업", strPtr("2019-01-23"), intPtr(111), strPtr("15+"), "KOR", []int{2, 3}, []int{3}, []int{1}},
		{4, "겨울왕국", strPtr("2013-11-27"), intPtr(108), strPtr("ALL"), "USA", []int{8, 7}, []int{4, 5}, []int{3}},
		{5, "살인의 추억", strPtr("2003-05-02"), intPtr(132), strPtr("15+"), "KOR", []int{6, 5}, []int{1}, []int{5}},
		{6, "올드보이", strPtr("2003-11-21"), intPtr(120), strPtr("19+"), "KOR", []int{5, 3}, []int{6}, []int{4}},
		{7, "매트릭스", strPtr("1999-03-31"), intPtr(136), strPtr("15+"), "USA", []int{3, 10}, []int{7}, []int{1}},
		{8, "다크 나이트", strPtr("2008-07-18"), intPtr(152), strPtr("15+"), "USA", []int{3, 6}, []int{2}, []int{1, 6}},
		{9, "헤어질 결심", strPtr("2022-06-29"), intPtr(138), strPtr("15+"), "KOR", []int{4, 6}, []int{6}, []int{6}},
		{10, "개봉 미정", nil, nil, nil, "KOR", []int{1}, []int{3}, nil},
		{11, "오펜하이머", strPtr("2023-08-15"), intPtr(180), strPtr("15+"), "USA", []int{1}, []int{2}, nil},
		{12, "반칙왕", strPtr("2000-02-04"), intPtr(112), strPtr("15+"), "KOR", []int{2}, []int{8}, []int{4}},
	}

	sampleUsers = []seedUser{
		{1, "김민준", 2000, "M", []int{3, 10}},
		{2, "이서준", 1999, "M", []int{3, 5}},
		{3, "박도윤", 2003, "M", []int{3, 2}},
		{4, "최지우", 2001, "F", []int{4, 1}},
		{5, "정서연", 1998, "F", []int{1, 8}},
		{6, "강하은", 1985, "F", []int{5, 6}},
		{7, "조현우", 1988, "M", []int{6, 5}},
		{8, "윤지민", 1975, "M", []int{1}},
		{9, "한지호", 2005, "M", []int{3, 1}},
	}

	// Review times are relative to the seed clock so recency rankings stay meaningful.
	sampleReviews = []seedReview{
		{1, 8, 5.0, "완벽한 영화", 400},
		{1, 1, 4.0, "다시 봐도 좋다", 10},
		{1, 4, 5.0, "", 5},
		{2, 2, 5.0, "압도적", 500},
		{2, 5, 4.0, "", 300},
		{3, 3, 3.0, "가볍게 보기 좋음", 20},
		{3, 9, 3.0, "", 3},
		{4, 5, 5.0, "노래가 좋다", 700},
		{5, 6, 4.0, "", 100},
		{5, 7, 5.0, "명작", 90},
		{6, 2, 4.0, "", 30},
		{7, 7, 2.0, "", 200},
		{7, 1, 3.0, "고전", 1},
		{8, 8, 5.0, "", 800},
		{8, 2, 4.0, "", 15},
		{8, 9, 4.0, "", 12},
		{8, 1, 5.0, "최고의 히어로 영화", 2},
		{9, 4, 4.0, "", 7},
		{12, 3, 3.0, "", 250},
	}
)

// SeedSampleData loads a small sample catalog with users, favorite genres
// and reviews dated relative to now, creating the schema first if needed.
// It does nothing if the store already holds movies, so it is safe to call
// on every startup.
func (db *DB) SeedSampleData(ctx context.Context, now time.Time) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	existing, err := queryInt(ctx, db, "seed_check", query.Statement{SQL: "SELECT COUNT(*) FROM movie"})
	if err != nil {
		return err
	}
	if existing > 0 {
		logging.Debug().Int("movies", existing).Msg("Store already populated, skipping sample seed")
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	s := &seeder{tx: tx, dialect: db.dialect}

	for i, name := range sampleGenres {
		s.exec(ctx, "INSERT INTO genre (genre_id, genre_name) VALUES (?, ?)", i+1, name)
	}
	for i, name := range sampleOTTs {
		s.exec(ctx, "INSERT INTO ott (ott_id, ott_name) VALUES (?, ?)", i+1, name)
	}
	for _, d := range sampleDirectors {
		s.exec(ctx, "INSERT INTO director (director_id, name, gender, nationality, birth_year) VALUES (?, ?, ?, ?, ?)",
			d.id, d.name, d.gender, d.nationality, d.birthYear)
	}
	for _, m := range sampleMovies {
		s.exec(ctx, "INSERT INTO movie (movie_id, title, release_date, run_time, allowed_age, country) VALUES (?, ?, CAST(? AS DATE), ?, ?, ?)",
			m.id, m.title, nullable(m.releaseDate), nullable(m.runTime), nullable(m.allowedAge), m.country)
		for _, g := range m.genres {
			s.exec(ctx, "INSERT INTO movie_genre (movie_id, genre_id) VALUES (?, ?)", m.id, g)
		}
		for _, d := range m.directors {
			s.exec(ctx, "INSERT INTO movie_director (movie_id, director_id) VALUES (?, ?)", m.id, d)
		}
		for _, o := range m.otts {
			s.exec(ctx, "INSERT INTO movie_ott (movie_id, ott_id) VALUES (?, ?)", m.id, o)
		}
	}
	for _, u := range sampleUsers {
		s.exec(ctx, "INSERT INTO users (user_id, name, birth_year, gender) VALUES (?, ?, ?, ?)",
			u.id, u.name, u.birthYear, u.gender)
		for _, g := range u.favorites {
			s.exec(ctx, "INSERT INTO user_fav_genre (user_id, genre_id) VALUES (?, ?)", u.id, g)
		}
	}
	for i, r := range sampleReviews {
		var comment interface{}
		if r.comment != "" {
			comment = r.comment
		}
		createdAt := now.UTC().AddDate(0, 0, -r.daysAgo)
		s.exec(ctx, "INSERT INTO review (review_id, movie_id, user_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			i+1, r.movieID, r.userID, r.rating, comment, createdAt)
	}

	if s.err != nil {
		return fmt.Errorf("failed to seed sample data: %w", s.err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sample data: %w", err)
	}

	logging.Info().
		Int("movies", len(sampleMovies)).
		Int("users", len(sampleUsers)).
		Int("reviews", len(sampleReviews)).
		Msg("Seeded sample catalog")
	return nil
}

// seeder runs inserts in a transaction and keeps the first error.
type seeder struct {
	tx      *sql.Tx
	dialect query.Dialect
	err     error
}

func (s *seeder) exec(ctx context.Context, stmt string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = s.tx.ExecContext(ctx, query.Rebind(s.dialect, stmt), args...)
}
