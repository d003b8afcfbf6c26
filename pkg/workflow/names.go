package workflow

// Node names. Connections address nodes by these names.
const (
	NodeScheduleTrigger    = "Schedule Trigger"
	NodeGenerateTweet      = "Generate Tweet"
	NodeGenerateImage      = "Generate AI Image"
	NodePostTweet          = "Post Tweet"
	NodePostTweetWithImage = "Post Tweet with Image"

	NodeSearch          = "Search Relevant Tweets"
	NodeLike            = "Like Tweet"
	NodeGenerateComment = "Generate Comment"
	NodeReply           = "Reply to Tweet"
	NodeRetweet         = "Retweet"

	NodeTargetAccounts = "Target Accounts"
	NodePersonalizeDM  = "Personalize DM"
	NodeSendDM         = "Send DM"
)

// Content endpoints called by the HTTP nodes, relative to the service base URL.
const (
	PathGenerateTweet   = "/api/generate-tweet"
	PathGenerateImage   = "/api/generate-image"
	PathGenerateComment = "/api/generate-comment"
	PathPersonalizeDM   = "/api/personalize-dm"
)

// SearchLimit is the number of tweets fetched by the engagement search.
const SearchLimit = 10
