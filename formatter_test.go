package seofetch_test

import (
	"testing"

	"github.com/fwojciec/seofetch"
	"github.com/stretchr/testify/assert"
)

func TestFormatResults(t *testing.T) {
	t.Parallel()

	t.Run("formats blocked result with reason", func(t *testing.T) {
		t.Parallel()

		results := []*seofetch.Result{
			seofetch.NewBlocked("https://amazon.com/x", seofetch.KindPolicy, seofetch.ReasonDomainProhibited),
		}

		got := seofetch.FormatResults(results)

		assert.Equal(t, "1. [blocked] https://amazon.com/x\n   domain prohibited", got)
	})

	t.Run("formats successful result with headings and sizes", func(t *testing.T) {
		t.Parallel()

		results := []*seofetch.Result{
			seofetch.NewSuccess("https://example.com/a", &seofetch.Document{
				Title:    "Guide",
				Headings: seofetch.Headings{1: {"Intro"}, 2: {"Setup", "Usage"}},
				BodyText: "hello",
				Images:   []seofetch.Image{{Src: "https://example.com/p.png"}},
			}),
		}

		got := seofetch.FormatResults(results)

		expected := "1. [ok] Guide\n   https://example.com/a\n   h1: Intro\n   h2: Setup | Usage\n   5 chars, 1 images"
		assert.Equal(t, expected, got)
	})

	t.Run("uses URL when title is empty", func(t *testing.T) {
		t.Parallel()

		results := []*seofetch.Result{
			seofetch.NewSuccess("https://example.com/a", &seofetch.Document{}),
		}

		got := seofetch.FormatResults(results)

		assert.Contains(t, got, "1. [ok] https://example.com/a\n")
	})

	t.Run("separates results with blank line", func(t *testing.T) {
		t.Parallel()

		results := []*seofetch.Result{
			seofetch.NewBlocked("https://a.example", seofetch.KindAccessDenied, seofetch.StatusReason(404)),
			seofetch.NewBlocked("https://b.example", seofetch.KindAccessDenied, seofetch.StatusReason(500)),
		}

		got := seofetch.FormatResults(results)

		assert.Equal(t, "1. [blocked] https://a.example\n   status code 404\n\n2. [blocked] https://b.example\n   status code 500", got)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, seofetch.FormatResults(nil))
	})
}
