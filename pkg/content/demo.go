package content

import (
	"context"
	"fmt"
	"strings"
)

// PlaceholderImageURL is the image returned in demo mode.
const PlaceholderImageURL = "https://via.placeholder.com/1024x1024/4F46E5/FFFFFF?text=AI+Generated+Image"

// Demo implements Generator without any network access. The server uses it
// when no OpenAI key is configured.
type Demo struct{}

// Tweet implements Generator.
func (Demo) Tweet(ctx context.Context, req TweetRequest) (string, error) {
	emoji := ""
	switch req.Tone {
	case "humorous":
		emoji = "😄"
	case "inspirational":
		emoji = "✨"
	}
	return fmt.Sprintf("🚀 Exciting insights on %s in the %s space! %s #%s #%s",
		req.Topic, req.Niche, emoji, hashtag(req.Niche), hashtag(req.Topic)), nil
}

// Image implements Generator.
func (Demo) Image(ctx context.Context, req ImageRequest) (string, error) {
	return PlaceholderImageURL, nil
}

// Comment implements Generator.
func (Demo) Comment(ctx context.Context, req CommentRequest) (string, error) {
	return "Great insights! Thanks for sharing this perspective. 💡", nil
}

// PersonalizeDM implements Generator. The template is cut to 200 characters.
func (Demo) PersonalizeDM(ctx context.Context, req DMRequest) (string, error) {
	template := []rune(req.Template)
	if len(template) > 200 {
		template = template[:200]
	}
	return fmt.Sprintf("Hi %s! %s", req.Username, string(template)), nil
}

func hashtag(s string) string {
	return strings.Join(strings.Fields(s), "")
}
