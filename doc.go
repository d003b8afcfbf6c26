/*
Package tweetflow builds n8n workflow documents that automate a Twitter account.

A flat configuration (topic, niche, tone, schedule and three feature flags)
goes in; a directed acyclic graph of nodes and connections comes out, ready
to be imported by the workflow engine. Building is pure and deterministic:
the same configuration always yields byte-identical JSON.

# Concept

The document is assembled by four phases applied in a fixed order, each
returning an extended copy of the workflow:

  - Base pipeline: schedule trigger and tweet generation.
  - Image branch: optional image generation before posting.
  - Engagement branch: search, like, comment, reply and retweet.
  - DM branch: target accounts, personalization and sending.

Data between nodes flows through deferred references ("={{$json.tweet}}")
that the engine resolves at run time. Content endpoints are addressed
relative to the APP_URL environment variable of the engine.

# Usage

	cfg, err := workflow.DecodeJSON(body)
	if err != nil {
		log.Fatal(err) // wraps domain.ErrInvalidConfig
	}
	doc, err := tweetflow.Marshal(cfg)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(doc)

The cmd/tweetflow binary wraps the same builder with a CLI, an HTTP API
serving the content endpoints, and an MCP server.
*/
package tweetflow
