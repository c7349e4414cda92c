package reconcile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xriskon/librarian/internal/assets"
	assetsmocks "github.com/xriskon/librarian/internal/assets/mocks"
	"github.com/xriskon/librarian/internal/library"
	"github.com/xriskon/librarian/internal/reconcile"
	"github.com/xriskon/librarian/internal/reconcile/mocks"
	"github.com/xriskon/librarian/internal/resolve"
	resolvemocks "github.com/xriskon/librarian/internal/resolve/mocks"
	"github.com/xriskon/librarian/internal/tmdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// env wires a Driver over a temp-dir movie library with mocked remote
// collaborators.
type env struct {
	root      string
	sections  *mocks.MockSectionSource
	searchCat *resolvemocks.MockCatalog
	assetCat  *assetsmocks.MockCatalog
	fetcher   *mocks.MockFetcher
	finder    *mocks.MockFinder
	driver    *reconcile.Driver
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)

	e := &env{
		root:      t.TempDir(),
		sections:  mocks.NewMockSectionSource(ctrl),
		searchCat: resolvemocks.NewMockCatalog(ctrl),
		assetCat:  assetsmocks.NewMockCatalog(ctrl),
		fetcher:   mocks.NewMockFetcher(ctrl),
		finder:    mocks.NewMockFinder(ctrl),
	}
	log := testLogger()
	e.driver = reconcile.NewDriver(reconcile.Deps{
		Sections: e.sections,
		Scanner:  library.NewScanner(log),
		Resolver: resolve.New(e.searchCat, log),
		Selector: assets.New(e.assetCat, log),
		Fetcher:  e.fetcher,
		Finder:   e.finder,
		Log:      log,
	})
	return e
}

func (e *env) expectMovieSection() {
	e.sections.EXPECT().
		Sections(gomock.Any()).
		Return([]library.Section{{Kind: library.KindMovie, ID: "1", Roots: []string{e.root}}}, nil)
}

func (e *env) addMovie(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(e.root, name)
	require.NoError(t, os.Mkdir(dir, 0o755))
	return dir
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestRun_NothingMissing(t *testing.T) {
	e := newEnv(t)
	dir := e.addMovie(t, "Movie Name (2020)")
	writeFile(t, filepath.Join(dir, "poster.jpg"), []byte("img"))
	e.expectMovieSection()
	// No catalog or fetcher expectations: nothing should be contacted.

	report, err := e.driver.Run(context.Background(), reconcile.AssetPoster)

	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestRun_PosterDownloaded(t *testing.T) {
	e := newEnv(t)
	dir := e.addMovie(t, "Movie Name (2020)")
	e.expectMovieSection()
	e.searchCat.EXPECT().
		Search(gomock.Any(), "Movie Name", 2020, library.KindMovie).
		Return([]int64{42}, nil)
	e.assetCat.EXPECT().
		Images(gomock.Any(), int64(42), library.KindMovie).
		Return(&tmdb.ImageSet{Posters: []tmdb.Image{{FilePath: "/p1.png"}}}, nil)
	e.fetcher.EXPECT().
		Image(gomock.Any(), "https://image.tmdb.org/t/p/original/p1.png", filepath.Join(dir, "poster.png")).
		Return(nil)

	report, err := e.driver.Run(context.Background(), reconcile.AssetPoster)

	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestRun_EmbeddedIDSkipsSearch(t *testing.T) {
	e := newEnv(t)
	dir := e.addMovie(t, "Movie Name (2020) {tmdb-603}")
	e.expectMovieSection()
	// No Search expectation: the embedded id must be trusted as-is.
	e.assetCat.EXPECT().
		Images(gomock.Any(), int64(603), library.KindMovie).
		Return(&tmdb.ImageSet{Posters: []tmdb.Image{{FilePath: "/p.jpg"}}}, nil)
	e.fetcher.EXPECT().
		Image(gomock.Any(), gomock.Any(), filepath.Join(dir, "poster.jpg")).
		Return(nil)

	report, err := e.driver.Run(context.Background(), reconcile.AssetPoster)

	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestRun_ResolveFailureRecorded(t *testing.T) {
	e := newEnv(t)
	e.addMovie(t, "Movie Name (2020)")
	e.expectMovieSection()
	e.searchCat.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	report, err := e.driver.Run(context.Background(), reconcile.AssetPoster)

	require.NoError(t, err, "resolver failures never abort the run")
	require.Len(t, report.Failures, 1)
	f := report.Failures[0]
	assert.Equal(t, "Movie Name", f.Title)
	assert.Equal(t, 2020, f.Year)
	assert.Zero(t, f.TMDBID, "no TMDB id is known for an unresolved item")
	assert.Equal(t, library.KindMovie, f.Kind)
}

func TestRun_ParseFailureContinuesWithNextItem(t *testing.T) {
	e := newEnv(t)
	e.addMovie(t, "???")
	dir := e.addMovie(t, "Movie Name (2020)")
	e.expectMovieSection()
	e.searchCat.EXPECT().
		Search(gomock.Any(), "Movie Name", 2020, library.KindMovie).
		Return([]int64{42}, nil)
	e.assetCat.EXPECT().
		Images(gomock.Any(), int64(42), library.KindMovie).
		Return(&tmdb.ImageSet{Posters: []tmdb.Image{{FilePath: "/p.jpg"}}}, nil)
	e.fetcher.EXPECT().
		Image(gomock.Any(), gomock.Any(), filepath.Join(dir, "poster.jpg")).
		Return(nil)

	report, err := e.driver.Run(context.Background(), reconcile.AssetPoster)

	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "???", report.Failures[0].Title)
	assert.Equal(t, "name not recognized", report.Failures[0].Reason)
}

func TestRun_NoAssetRecorded(t *testing.T) {
	e := newEnv(t)
	e.addMovie(t, "Movie Name (2020)")
	e.expectMovieSection()
	e.searchCat.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]int64{42}, nil)
	e.assetCat.EXPECT().
		Images(gomock.Any(), int64(42), library.KindMovie).
		Return(&tmdb.ImageSet{}, nil)

	report, err := e.driver.Run(context.Background(), reconcile.AssetPoster)

	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "no poster available", report.Failures[0].Reason)
	assert.Equal(t, int64(42), report.Failures[0].TMDBID)
}

func TestRun_FetchFailureRecorded(t *testing.T) {
	e := newEnv(t)
	e.addMovie(t, "Movie Name (2020)")
	e.expectMovieSection()
	e.searchCat.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]int64{42}, nil)
	e.assetCat.EXPECT().
		Images(gomock.Any(), int64(42), library.KindMovie).
		Return(&tmdb.ImageSet{Posters: []tmdb.Image{{FilePath: "/p.jpg"}}}, nil)
	e.fetcher.EXPECT().
		Image(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	report, err := e.driver.Run(context.Background(), reconcile.AssetPoster)

	require.NoError(t, err, "fetch failures never abort the run")
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "download failed", report.Failures[0].Reason)
}

func TestRun_TrailerPlacement(t *testing.T) {
	e := newEnv(t)
	dir := e.addMovie(t, "Movie Name (2020)")
	e.expectMovieSection()
	e.searchCat.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]int64{42}, nil)
	e.assetCat.EXPECT().
		Videos(gomock.Any(), int64(42), library.KindMovie).
		Return([]tmdb.Video{{Type: "Trailer", Name: "Official Trailer", Size: 1080, Key: "abc123"}}, nil)
	e.fetcher.EXPECT().
		Trailer(gomock.Any(), "https://www.youtube.com/watch?v=abc123", filepath.Join(dir, "Trailers")).
		Return(nil)

	report, err := e.driver.Run(context.Background(), reconcile.AssetTrailer)

	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestRun_SectionsUnavailable(t *testing.T) {
	e := newEnv(t)
	e.sections.EXPECT().
		Sections(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := e.driver.Run(context.Background(), reconcile.AssetPoster)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sections available")
}

// recordingObserver captures the progress callback sequence.
type recordingObserver struct {
	events []string
}

func (o *recordingObserver) Start(kind library.Kind, total int) {
	o.events = append(o.events, "start")
}
func (o *recordingObserver) Advance() { o.events = append(o.events, "advance") }
func (o *recordingObserver) Finish()  { o.events = append(o.events, "finish") }

func TestRun_ObserverSequence(t *testing.T) {
	e := newEnv(t)
	e.addMovie(t, "Movie One (2020)")
	e.addMovie(t, "Movie Two (2021)")
	e.expectMovieSection()
	e.searchCat.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)

	obs := &recordingObserver{}
	log := testLogger()
	driver := reconcile.NewDriver(reconcile.Deps{
		Sections: e.sections,
		Scanner:  library.NewScanner(log),
		Resolver: resolve.New(e.searchCat, log),
		Selector: assets.New(e.assetCat, log),
		Fetcher:  e.fetcher,
		Finder:   e.finder,
		Observer: obs,
		Log:      log,
	})

	_, err := driver.Run(context.Background(), reconcile.AssetPoster)

	require.NoError(t, err)
	assert.Equal(t, []string{"start", "advance", "advance", "finish"}, obs.events)
}

func TestClearImages(t *testing.T) {
	e := newEnv(t)
	dir := e.addMovie(t, "Movie Name (2020)")
	writeFile(t, filepath.Join(dir, "poster.jpg"), []byte("img"))
	writeFile(t, filepath.Join(dir, "movie.mkv"), []byte("vid"))
	e.expectMovieSection()

	require.NoError(t, e.driver.ClearImages(context.Background()))

	assert.NoFileExists(t, filepath.Join(dir, "poster.jpg"))
	assert.FileExists(t, filepath.Join(dir, "movie.mkv"))
}

func TestClearTrailers(t *testing.T) {
	e := newEnv(t)
	dir := e.addMovie(t, "Movie Name (2020)")
	writeFile(t, filepath.Join(dir, "Trailers", "Official Trailer.mp4"), []byte("vid"))
	e.expectMovieSection()

	require.NoError(t, e.driver.ClearTrailers(context.Background()))

	assert.NoDirExists(t, filepath.Join(dir, "Trailers"))
}
