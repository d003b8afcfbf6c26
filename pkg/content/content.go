// Package content generates the text and images that a built workflow posts.
//
// The workflow document itself only references the generation endpoints;
// this package backs those endpoints. Generators are safe for concurrent use.
package content

import (
	"context"
	"fmt"
	"strings"
)

// Kind names one generation operation. It labels metrics and cache keys.
type Kind string

const (
	KindTweet   Kind = "tweet"
	KindImage   Kind = "image"
	KindComment Kind = "comment"
	KindDM      Kind = "dm"
)

// TweetRequest asks for a tweet about Topic, written for Niche in Tone.
type TweetRequest struct {
	Topic string `json:"topic"`
	Niche string `json:"niche"`
	Tone  string `json:"tone"`
}

// ImageRequest asks for an image illustrating Prompt.
type ImageRequest struct {
	Prompt string `json:"prompt"`
}

// CommentRequest asks for a reply to Tweet in Tone.
type CommentRequest struct {
	Tweet string `json:"tweet"`
	Tone  string `json:"tone"`
}

// DMRequest asks for Template personalized for Username.
type DMRequest struct {
	Username string `json:"username"`
	Template string `json:"template"`
	Niche    string `json:"niche"`
}

// Generator produces content for the workflow endpoints.
type Generator interface {
	Tweet(ctx context.Context, req TweetRequest) (string, error)
	Image(ctx context.Context, req ImageRequest) (string, error)
	Comment(ctx context.Context, req CommentRequest) (string, error)
	PersonalizeDM(ctx context.Context, req DMRequest) (string, error)
}

// ImagePrompt derives an image prompt from the fields the image node sends.
func ImagePrompt(topic, niche, tone string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", strings.TrimSpace(topic))
	if niche = strings.TrimSpace(niche); niche != "" {
		fmt.Fprintf(&b, " for the %s audience", niche)
	}
	if tone = strings.TrimSpace(tone); tone != "" {
		fmt.Fprintf(&b, ", %s mood", tone)
	}
	return b.String()
}

var toneInstructions = map[string]string{
	"professional":  "Write in a professional, authoritative tone",
	"casual":        "Write in a casual, friendly conversational tone",
	"humorous":      "Write with humor and wit",
	"inspirational": "Write in an inspirational, motivating tone",
	"educational":   "Write in an educational, informative tone",
}

// ToneInstruction returns the system-prompt sentence for tone.
func ToneInstruction(tone string) string {
	if s, ok := toneInstructions[tone]; ok {
		return s
	}
	if tone == "" {
		return "Write in a neutral tone"
	}
	return fmt.Sprintf("Write in a %s tone", tone)
}
