package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/linernotes/credits/data"
	"github.com/linernotes/credits/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// open returns a migrated in-memory database seeded with a small
// catalog:
//
//	Drake   — al1 (2020-06-19): Alpha, Bravo; al2 (2021-03-05): Charlie
//	Rihanna — al3 (2020-01-30): Delta
//
// pr1 is credited on all four tracks; pr2 only on Alpha. One credit
// points at a producer that doesn't exist.
func open(t *testing.T) *db.DB {
	t.Helper()

	d, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	for _, artist := range []data.Artist{
		{ID: "ar1", Name: "Drake", Followers: 1000, Popularity: 99},
		{ID: "ar2", Name: "Rihanna", Followers: 2000, Popularity: 98},
	} {
		artist := artist
		require.NoError(t, d.InsertArtist(&artist))
	}
	for _, album := range []data.Album{
		{ID: "al1", Name: "One Dance", ReleaseDate: "2020-06-19", ArtistID: "ar1"},
		{ID: "al2", Name: "Two Step", ReleaseDate: "2021-03-05", ArtistID: "ar1"},
		{ID: "al3", Name: "Anti", ReleaseDate: "2020-01-30", ArtistID: "ar2"},
	} {
		album := album
		require.NoError(t, d.InsertAlbum(&album))
	}
	for _, track := range []data.Track{
		{ID: "t1", Name: "Alpha", AlbumID: "al1"},
		{ID: "t2", Name: "Bravo", AlbumID: "al1"},
		{ID: "t3", Name: "Charlie", AlbumID: "al2"},
		{ID: "t4", Name: "Delta", AlbumID: "al3"},
	} {
		track := track
		require.NoError(t, d.InsertTrack(&track))
	}
	for _, producer := range []data.Producer{
		{ID: "pr1", Name: "Noah Shebib", Handle: "40"},
		{ID: "pr2", Name: "Boi-1da"},
	} {
		producer := producer
		require.NoError(t, d.InsertProducer(&producer))
	}
	for _, credit := range []data.Credit{
		{ID: "c1", TrackID: "t1", ProducerID: "pr1"},
		{ID: "c2", TrackID: "t2", ProducerID: "pr1"},
		{ID: "c3", TrackID: "t3", ProducerID: "pr1"},
		{ID: "c4", TrackID: "t4", ProducerID: "pr1"},
		{ID: "c5", TrackID: "t1", ProducerID: "pr2"},
		{ID: "c6", TrackID: "t2", ProducerID: "ghost"},
	} {
		credit := credit
		require.NoError(t, d.InsertCredit(&credit))
	}

	return d
}

func TestGetProducer(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	producer, err := d.GetProducer(ctx, "pr1")
	require.NoError(t, err)
	assert.Equal(t, "Noah Shebib", producer.Name)
	assert.Equal(t, "40", producer.Handle)

	_, err = d.GetProducer(ctx, "nope")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestMetadataRoundTrip(t *testing.T) {
	d := open(t)

	in := data.Producer{
		ID:   "pr9",
		Name: "Metro",
		Metadata: data.Metadata{
			ImageURL: "https://example.com/metro.jpg",
			Genres:   []string{"trap", "hip hop"},
			Extra:    map[string]string{"alias": "Young Metro"},
		},
	}
	require.NoError(t, d.InsertProducer(&in))

	out, err := d.GetProducer(context.Background(), "pr9")
	require.NoError(t, err)
	assert.Equal(t, in.Metadata, out.Metadata)
}

func TestListProducersWindow(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		producer := data.Producer{
			ID:   fmt.Sprintf("w%d", i),
			Name: fmt.Sprintf("windowed %d", i),
		}
		require.NoError(t, d.InsertProducer(&producer))
	}

	// 9 producers total (2 seeded + 7 here); pages of 3 ordered by
	// id: [pr1 pr2 w0] [w1 w2 w3] [w4 w5 w6] [].
	page := func(p int) []string {
		producers, err := d.ListProducers(ctx, db.ListOptions{
			Page: p, PageSize: 3, OrderBy: "id", Ascending: true,
		})
		require.NoError(t, err)
		out := make([]string, len(producers))
		for i, producer := range producers {
			out[i] = producer.ID
		}
		return out
	}

	assert.Equal(t, []string{"pr1", "pr2", "w0"}, page(1))
	assert.Equal(t, []string{"w1", "w2", "w3"}, page(2))
	assert.Equal(t, []string{"w4", "w5", "w6"}, page(3))
	assert.Empty(t, page(4))

	// pages below 1 read the first page
	assert.Equal(t, page(1), page(0))
}

func TestProducerCredits(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	credits, err := d.ProducerCredits(ctx, "pr1", db.CreditOptions{})
	require.NoError(t, err)
	require.Len(t, credits, 4)

	// default order is album release date descending
	assert.Equal(t, "Charlie", credits[0].Track.Name)
	assert.Equal(t, "Delta", credits[3].Track.Name)

	// the joined chain rides along
	assert.Equal(t, "Two Step", credits[0].Track.Album.Name)
	assert.Equal(t, "Drake", credits[0].Track.Album.Artist.Name)
	assert.Equal(t, "pr1", credits[0].ProducerID)
}

func TestProducerCreditsFilters(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	names := func(opts db.CreditOptions) []string {
		credits, err := d.ProducerCredits(ctx, "pr1", opts)
		require.NoError(t, err)
		out := make([]string, len(credits))
		for i, credit := range credits {
			out[i] = credit.Track.Name
		}
		return out
	}

	// year is a half-open range on the album's release date
	assert.ElementsMatch(t, []string{"Alpha", "Bravo", "Delta"},
		names(db.CreditOptions{Filters: db.CreditFilters{Year: 2020}}))
	assert.Equal(t, []string{"Charlie"},
		names(db.CreditOptions{Filters: db.CreditFilters{Year: 2021}}))
	assert.Empty(t, names(db.CreditOptions{Filters: db.CreditFilters{Year: 2019}}))

	assert.Equal(t, []string{"Delta"},
		names(db.CreditOptions{Filters: db.CreditFilters{ArtistID: "ar2"}}))
	assert.ElementsMatch(t, []string{"Alpha", "Bravo"},
		names(db.CreditOptions{Filters: db.CreditFilters{AlbumID: "al1"}}))

	// filters combine with AND
	assert.ElementsMatch(t, []string{"Alpha", "Bravo"},
		names(db.CreditOptions{Filters: db.CreditFilters{Year: 2020, ArtistID: "ar1"}}))
}

func TestProducerCreditsOrderRouting(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	// a dot path orders by the joined table's column
	credits, err := d.ProducerCredits(ctx, "pr1", db.CreditOptions{
		OrderBy: "album.artist.name", Ascending: true,
	})
	require.NoError(t, err)
	require.Len(t, credits, 4)
	assert.Equal(t, "Drake", credits[0].Track.Album.Artist.Name)
	assert.Equal(t, "Rihanna", credits[3].Track.Album.Artist.Name)

	credits, err = d.ProducerCredits(ctx, "pr1", db.CreditOptions{
		OrderBy: "name", Ascending: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", credits[0].Track.Name)
	assert.Equal(t, "Delta", credits[3].Track.Name)

	// unknown paths fall back to the default order
	credits, err = d.ProducerCredits(ctx, "pr1", db.CreditOptions{
		OrderBy: "no.such.path",
	})
	require.NoError(t, err)
	assert.Equal(t, "Charlie", credits[0].Track.Name)
}

func TestProducerCreditsDanglingDropped(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	// a credit whose track is gone never surfaces
	credit := data.Credit{ID: "c7", TrackID: "missing", ProducerID: "pr2"}
	require.NoError(t, d.InsertCredit(&credit))

	credits, err := d.ProducerCredits(ctx, "pr2", db.CreditOptions{})
	require.NoError(t, err)
	require.Len(t, credits, 1)
	assert.Equal(t, "Alpha", credits[0].Track.Name)
}

func TestArtistProducers(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	// Drake's albums carry three pr1 credits, one pr2 credit, and
	// one credit whose producer doesn't resolve. The dangling one
	// is dropped, not counted.
	producers, err := d.ArtistProducers(ctx, "ar1", db.ListOptions{})
	require.NoError(t, err)
	require.Len(t, producers, 2)

	assert.Equal(t, "pr1", producers[0].ID)
	assert.Equal(t, int64(3), producers[0].TrackCount)
	assert.Equal(t, "pr2", producers[1].ID)
	assert.Equal(t, int64(1), producers[1].TrackCount)
}

func TestProducerArtists(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	artists, err := d.ProducerArtists(ctx, "pr1", db.ListOptions{})
	require.NoError(t, err)
	require.Len(t, artists, 2)

	assert.Equal(t, "Drake", artists[0].Name)
	assert.Equal(t, int64(3), artists[0].TrackCount)
	assert.Equal(t, "Rihanna", artists[1].Name)
	assert.Equal(t, int64(1), artists[1].TrackCount)
}

func TestSearch(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	// substring match is case-insensitive
	producers, err := d.SearchProducers(ctx, "shEb", 10)
	require.NoError(t, err)
	require.Len(t, producers, 1)
	assert.Equal(t, "Noah Shebib", producers[0].Name)

	// blank queries return nothing and hit nothing
	producers, err = d.SearchProducers(ctx, "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, producers)

	tracks, err := d.SearchTracks(ctx, "a", 2)
	require.NoError(t, err)
	assert.Len(t, tracks, 2)
}

func TestSearchAcross(t *testing.T) {
	d := open(t)
	ctx := context.Background()

	results := d.SearchAcross(ctx, "an", db.Kinds(), 10)

	assert.Len(t, results.Artists, 1) // Rihanna
	assert.Len(t, results.Albums, 2)  // One Dance, Anti
	assert.Empty(t, results.Producers)
	assert.False(t, results.Empty())

	// unrequested kinds stay empty
	results = d.SearchAcross(ctx, "an", []db.Kind{db.KindAlbum}, 10)
	assert.Empty(t, results.Artists)
	assert.Len(t, results.Albums, 2)
}

func TestSearchAcrossSubSearchFailure(t *testing.T) {
	d := open(t)
	require.NoError(t, d.Exec("drop table albums").Error)

	// the broken kind degrades to empty; the rest still answer
	results := d.SearchAcross(context.Background(), "an", db.Kinds(), 10)
	assert.Empty(t, results.Albums)
	assert.Len(t, results.Artists, 1)
}

func TestStats(t *testing.T) {
	d := open(t)

	stats := d.Stats(context.Background())
	assert.Equal(t, int64(2), stats.Producers)
	assert.Equal(t, int64(2), stats.Artists)
	assert.Equal(t, int64(4), stats.Tracks)
}

func TestStatsCountFailure(t *testing.T) {
	d := open(t)
	require.NoError(t, d.Exec("drop table tracks").Error)

	stats := d.Stats(context.Background())
	assert.Zero(t, stats.Tracks)
	assert.Equal(t, int64(2), stats.Producers)
	assert.Equal(t, int64(2), stats.Artists)
}

func TestJobs(t *testing.T) {
	d := open(t)

	id, err := d.EnqueueJob("discover-artist", `{"name":"Drake"}`)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	pending, err := d.CountPendingJobs()
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	jobs, err := d.GetPendingJobs(10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "discover-artist", jobs[0].Name)

	require.NoError(t, d.MarkJobDone(id))
	pending, err = d.CountPendingJobs()
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestInvokeProcedure(t *testing.T) {
	d := open(t)

	assert.NoError(t, d.InvokeProcedure("analyze"))
	assert.Error(t, d.InvokeProcedure("drop everything"))
}
