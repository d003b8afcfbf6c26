/*
Package dsl provides a fluent builder for workflow nodes and small helpers to
wire them into a domain.Workflow.

Each constructor starts a node of one kind with that kind's parameter shape,
so callers only fill in what differs:

	post := dsl.Action("Post Tweet", "tweet").
		Param("text", domain.Ref("Generate Tweet", "tweet")).
		At(dsl.Spine.At(2)).
		Build()

	w = dsl.Chain(w, "Generate Tweet", post)

Helpers never mutate their input workflow; they return an extended copy.
*/
package dsl
