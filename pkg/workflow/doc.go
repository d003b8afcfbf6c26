/*
Package workflow builds the automation graph document from a configuration.

Construction is a left-to-right fold over four pure phases:

 1. BasePipeline: schedule trigger -> content generation (always).
 2. ImageBranch: optional image generation, then the single posting node.
 3. EngagementBranch: search fanning out to like, comment -> reply, and retweet.
 4. DMBranch: account list expansion -> personalize -> send.

Each phase takes the graph built so far plus the configuration and returns an
extended copy. Node ids continue across whichever phases emit nodes, so the id of
a given role depends on the configuration. The result is checked for integrity
before it is returned; a partially built graph is never handed out.

	cfg, err := workflow.DecodeJSON(body)
	if err != nil {
		// malformed shape: report as a client error
	}
	doc, err := workflow.Build(cfg)
*/
package workflow
