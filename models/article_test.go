package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleBeforeSaveDerivesSlug(t *testing.T) {
	article := &Article{Title: "Hello, World! A Test"}
	require.NoError(t, article.BeforeSave(nil))
	assert.Equal(t, "hello-world-a-test", article.Slug)

	// An explicit slug wins over derivation.
	article = &Article{Title: "Hello, World!", Slug: "custom-slug"}
	require.NoError(t, article.BeforeSave(nil))
	assert.Equal(t, "custom-slug", article.Slug)
}

func TestArticleCalculateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"one word", "hello", 1},
		{"short", strings.Repeat("word ", 50), 1},
		{"two minutes", strings.Repeat("word ", 400), 2},
		{"rounds up", strings.Repeat("word ", 450), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := &Article{Content: tt.content}
			assert.Equal(t, tt.want, article.CalculateReadTime())
		})
	}
}

func TestArticleStatusTransitions(t *testing.T) {
	article := &Article{Status: StatusDraft}

	article.Publish()
	assert.Equal(t, StatusPublished, article.Status)
	require.NotNil(t, article.PublishedAt)
	assert.Nil(t, article.ScheduledAt)

	at := time.Now().UTC().Add(24 * time.Hour)
	article.Schedule(at)
	assert.Equal(t, StatusScheduled, article.Status)
	require.NotNil(t, article.ScheduledAt)
	assert.Equal(t, at, *article.ScheduledAt)

	article.Draft()
	assert.Equal(t, StatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)
	assert.Nil(t, article.ScheduledAt)
}

func TestArticleEmbeddingText(t *testing.T) {
	article := &Article{Title: "Title", Summary: "Summary", Content: "Body"}
	assert.Equal(t, "Title\n\nSummary\n\nBody", article.EmbeddingText())
}

func TestSubscriberLifecycle(t *testing.T) {
	sub := &Subscriber{Email: "reader@example.com"}
	require.NoError(t, sub.BeforeCreate(nil))
	assert.NotEmpty(t, sub.VerificationToken)
	assert.False(t, sub.SubscribedAt.IsZero())

	sub.Verify()
	assert.True(t, sub.IsVerified)
	assert.Empty(t, sub.VerificationToken)
	require.NotNil(t, sub.VerifiedAt)

	sub.Unsubscribe()
	assert.False(t, sub.IsActive)
	require.NotNil(t, sub.UnsubscribedAt)

	sub.Resubscribe()
	assert.True(t, sub.IsActive)
	assert.Nil(t, sub.UnsubscribedAt)
	// Already verified, so no new token is issued.
	assert.Empty(t, sub.VerificationToken)
}
