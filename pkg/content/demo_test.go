package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_Tweet(t *testing.T) {
	tests := []struct {
		name string
		req  TweetRequest
		want string
	}{
		{
			name: "professional has no emoji",
			req:  TweetRequest{Topic: "AI Trends", Niche: "Tech Startups", Tone: "professional"},
			want: "🚀 Exciting insights on AI Trends in the Tech Startups space!  #TechStartups #AITrends",
		},
		{
			name: "humorous",
			req:  TweetRequest{Topic: "Go", Niche: "dev", Tone: "humorous"},
			want: "🚀 Exciting insights on Go in the dev space! 😄 #dev #Go",
		},
		{
			name: "inspirational",
			req:  TweetRequest{Topic: "Go", Niche: "dev", Tone: "inspirational"},
			want: "🚀 Exciting insights on Go in the dev space! ✨ #dev #Go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Demo{}.Tweet(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDemo_Fixed(t *testing.T) {
	ctx := context.Background()

	img, err := Demo{}.Image(ctx, ImageRequest{Prompt: "anything"})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderImageURL, img)

	comment, err := Demo{}.Comment(ctx, CommentRequest{Tweet: "hi", Tone: "casual"})
	require.NoError(t, err)
	assert.Equal(t, "Great insights! Thanks for sharing this perspective. 💡", comment)
}

func TestDemo_PersonalizeDM(t *testing.T) {
	ctx := context.Background()

	msg, err := Demo{}.PersonalizeDM(ctx, DMRequest{Username: "alice", Template: "Let's talk."})
	require.NoError(t, err)
	assert.Equal(t, "Hi alice! Let's talk.", msg)

	long := strings.Repeat("é", 250)
	msg, err = Demo{}.PersonalizeDM(ctx, DMRequest{Username: "bob", Template: long})
	require.NoError(t, err)
	assert.Equal(t, "Hi bob! "+strings.Repeat("é", 200), msg)
}

func TestImagePrompt(t *testing.T) {
	assert.Equal(t, "AI Trends for the Tech audience, casual mood", ImagePrompt("AI Trends", "Tech", "casual"))
	assert.Equal(t, "AI Trends", ImagePrompt(" AI Trends ", "", ""))
}

func TestToneInstruction(t *testing.T) {
	assert.Equal(t, "Write with humor and wit", ToneInstruction("humorous"))
	assert.Equal(t, "Write in a sarcastic tone", ToneInstruction("sarcastic"))
	assert.Equal(t, "Write in a neutral tone", ToneInstruction(""))
}
