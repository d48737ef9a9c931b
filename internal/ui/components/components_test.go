package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeRendersText(t *testing.T) {
	t.Parallel()

	badge := SuccessBadge("passing")
	assert.Equal(t, "passing", badge.Text())
	assert.Contains(t, badge.View(), "passing")
}

func TestAlertIncludesIconAndMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		alert *Alert
		icon  string
	}{
		{"success", SuccessAlert("saved"), "✓"},
		{"warning", WarningAlert("careful"), "⚠"},
		{"error", ErrorAlert("broken"), "✗"},
		{"info", InfoAlert("fyi"), "ℹ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := tt.alert.View()
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, tt.alert.Message())
		})
	}
}

func TestCardRendersTitleAndFooter(t *testing.T) {
	t.Parallel()

	card := NewCard(NewText("body")).
		WithTitle("Title").
		WithFooter(CaptionText("footer"))

	out := card.View()
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "footer")
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	out := HorizontalDivider().WithWidth(8).View()
	assert.Equal(t, 8, len([]rune(strings.Split(out, "\n")[0])))
}

func TestHeaderWithSubtitle(t *testing.T) {
	t.Parallel()

	header := NewHeader("Main").WithSubtitle("context")
	require.Equal(t, "Main", header.Title())
	out := header.View()
	assert.Contains(t, out, "Main")
	assert.Contains(t, out, "context")
}

func TestTextHelpers(t *testing.T) {
	t.Parallel()

	assert.Contains(t, TitleText("t").View(), "t")
	assert.Contains(t, CodeText("go test").View(), "go test")
	assert.Equal(t, "plain", NewText("plain").Content())
}
