// Package server exposes the catalog's read operations (and the two
// fire-and-forget job endpoints) as a JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linernotes/credits/db"
)

func Run(ctx context.Context, database *db.DB, addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	s := &server{db: database}

	r.GET("/producers", s.listProducers)
	r.GET("/producers/:id", s.getProducer)
	r.GET("/producers/:id/credits", s.producerCredits)
	r.GET("/producers/:id/artists", s.producerArtists)
	r.GET("/artists/:id", s.getArtist)
	r.GET("/artists/:id/producers", s.artistProducers)
	r.GET("/albums/:id", s.getAlbum)
	r.GET("/tracks/:id", s.getTrack)
	r.GET("/search", s.search)
	r.GET("/stats", s.stats)
	r.POST("/jobs", s.enqueueJob)
	r.POST("/procedures/:name", s.invokeProcedure)

	srv := http.Server{Addr: addr, Handler: r}

	errs := make(chan error)
	go func() { errs <- srv.ListenAndServe() }()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		return <-errs
	}
}

type server struct{ db *db.DB }

// fail maps the error taxonomy onto status codes, passing the store's
// message through untouched for diagnosability.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, db.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// listColumns is the orderable-column whitelist for the plain list
// endpoints.
var listColumns = map[string]bool{
	"id":           true,
	"name":         true,
	"release_date": true,
	"followers":    true,
	"popularity":   true,
}

func listOptions(c *gin.Context) db.ListOptions {
	opts := db.ListOptions{
		Page:      intQuery(c, "page", 1),
		PageSize:  intQuery(c, "page_size", db.DefaultPageSize),
		Ascending: c.Query("dir") == "asc",
	}
	if column := c.Query("order"); listColumns[column] {
		opts.OrderBy = column
	}
	return opts
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}

func (s *server) listProducers(c *gin.Context) {
	producers, err := s.db.ListProducers(c.Request.Context(), listOptions(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, producers)
}

func (s *server) getProducer(c *gin.Context) {
	producer, err := s.db.GetProducer(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, producer)
}

func (s *server) producerCredits(c *gin.Context) {
	opts := db.CreditOptions{
		Page:      intQuery(c, "page", 1),
		PageSize:  intQuery(c, "page_size", db.DefaultPageSize),
		OrderBy:   c.Query("order"),
		Ascending: c.Query("dir") == "asc",
		Filters: db.CreditFilters{
			Year:     intQuery(c, "year", 0),
			ArtistID: c.Query("artist_id"),
			AlbumID:  c.Query("album_id"),
		},
	}
	credits, err := s.db.ProducerCredits(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, credits)
}

func (s *server) producerArtists(c *gin.Context) {
	artists, err := s.db.ProducerArtists(c.Request.Context(), c.Param("id"), listOptions(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (s *server) getArtist(c *gin.Context) {
	artist, err := s.db.GetArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (s *server) artistProducers(c *gin.Context) {
	producers, err := s.db.ArtistProducers(c.Request.Context(), c.Param("id"), listOptions(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, producers)
}

func (s *server) getAlbum(c *gin.Context) {
	album, err := s.db.GetAlbum(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

func (s *server) getTrack(c *gin.Context) {
	track, err := s.db.GetTrack(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

func (s *server) search(c *gin.Context) {
	var kinds []db.Kind
	if param := c.Query("kinds"); param != "" {
		for _, name := range strings.Split(param, ",") {
			kinds = append(kinds, db.Kind(strings.TrimSpace(name)))
		}
	} else {
		kinds = db.Kinds()
	}

	results := s.db.SearchAcross(
		c.Request.Context(), c.Query("q"), kinds, intQuery(c, "limit", 10))
	c.JSON(http.StatusOK, results)
}

func (s *server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.db.Stats(c.Request.Context()))
}

func (s *server) enqueueJob(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Payload string `json:"payload"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := s.db.EnqueueJob(body.Name, body.Payload)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

func (s *server) invokeProcedure(c *gin.Context) {
	if err := s.db.InvokeProcedure(c.Param("name")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
