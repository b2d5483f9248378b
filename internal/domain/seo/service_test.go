package seo

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceBuildHeadRecordsObservation(t *testing.T) {
	t.Parallel()

	recorder := &stubRecorder{}
	service, err := NewService(testConfig(), recorder, silentLogger())
	require.NoError(t, err)

	head, err := service.BuildHead(context.Background(), PageInput{Location: " blog/a ", Type: ContentTypeArticle, Title: "A"})
	require.NoError(t, err)
	require.Equal(t, "Pellerex | A", head.Title())

	url, ok := head.Lookup("og:url")
	require.True(t, ok)
	require.Equal(t, "https://pellerex.com/blog/a", url.Content)

	require.Equal(t, []string{"Article"}, recorder.observed())
}

func TestServiceBuildHeadNormalisesType(t *testing.T) {
	t.Parallel()

	service, err := NewService(testConfig(), nil, nil)
	require.NoError(t, err)

	head, err := service.BuildHead(context.Background(), PageInput{Location: "blog/a", Type: "article"})
	require.NoError(t, err)
	require.Equal(t, ContentTypeArticle, head.Type)
}

func TestServiceBuildHeadValidatesInput(t *testing.T) {
	t.Parallel()

	recorder := &stubRecorder{}
	service, err := NewService(testConfig(), recorder, silentLogger())
	require.NoError(t, err)

	_, err = service.BuildHead(context.Background(), PageInput{Location: "  ", Type: ContentTypeWebsite})
	require.ErrorIs(t, err, ErrLocationRequired)

	_, err = service.BuildHead(context.Background(), PageInput{Location: "a", Type: ""})
	require.ErrorIs(t, err, ErrInvalidContentType)

	require.Empty(t, recorder.observed())
}

func TestServiceBuildHeadHonoursCancellation(t *testing.T) {
	t.Parallel()

	service, err := NewService(testConfig(), nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = service.BuildHead(ctx, PageInput{Location: "a", Type: ContentTypeWebsite})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewServiceRequiresDomain(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Domain = ""

	_, err := NewService(cfg, nil, nil)
	require.Error(t, err)
}

func TestServiceIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	recorder := &stubRecorder{}
	service, err := NewService(testConfig(), recorder, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, buildErr := service.BuildHead(context.Background(), PageInput{Location: "blog/a", Type: ContentTypeArticle})
			assert.NoError(t, buildErr)
		}()
	}
	wg.Wait()

	require.Len(t, recorder.observed(), 16)
}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubRecorder struct {
	mu    sync.Mutex
	types []string
}

func (r *stubRecorder) ObserveHead(contentType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, contentType)
}

func (r *stubRecorder) observed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.types...)
}
