package dsl

import (
	"testing"

	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_DefaultShape(t *testing.T) {
	n := HTTP("Generate Tweet", "/api/generate-tweet").
		Body("topic", "AI").
		Body("tone", "casual").
		At(Spine.At(1)).
		Build()

	assert.Equal(t, domain.KindHTTP, n.Kind)
	assert.Equal(t, domain.Env("APP_URL", "/api/generate-tweet"), n.Parameters["url"])
	assert.Equal(t, "POST", n.Parameters["method"])
	assert.Equal(t, map[string]any{"topic": "AI", "tone": "casual"}, n.Parameters["bodyParameters"])
	assert.Equal(t, domain.Position{450, 300}, n.Position)
	assert.Empty(t, n.ID, "ids are assigned on append")
}

func TestBuilders_DoNotShareParameters(t *testing.T) {
	a := Action("Like Tweet", "like").Param("tweetId", domain.Ref("S", "id")).Build()
	b := Action("Retweet", "retweet").Build()

	assert.Equal(t, "like", a.Parameters["operation"])
	assert.Equal(t, "retweet", b.Parameters["operation"])
	assert.NotContains(t, b.Parameters, "tweetId")

	f := Function("Target Accounts", "return []").Build()
	assert.Equal(t, domain.KindTransform, f.Kind)
	assert.Equal(t, "return []", f.Parameters["functionCode"])

	tr := Trigger("Schedule Trigger").Param("rule", map[string]any{}).Build()
	assert.Equal(t, domain.KindTrigger, tr.Kind)
}

func TestBody_OnNonHTTPNode(t *testing.T) {
	n := Action("x", "tweet").Body("k", "v").Build()
	assert.Equal(t, map[string]any{"k": "v"}, n.Parameters["bodyParameters"])
}

func TestChain(t *testing.T) {
	w := domain.NewWorkflow("t").Append(Trigger("T").Build())
	w = Chain(w, "T",
		HTTP("A", "/a").Build(),
		HTTP("B", "/b").Build(),
	)

	require.Len(t, w.Nodes, 3)
	assert.Equal(t, "3", w.Nodes[2].ID)
	assert.Equal(t, "A", w.Outgoing("T")[0].Node)
	assert.Equal(t, "B", w.Outgoing("A")[0].Node)

	detached := Chain(domain.NewWorkflow("t"), "", Function("F", "").Build(), HTTP("G", "/g").Build())
	assert.Len(t, detached.Connections, 1)
	assert.Empty(t, detached.Incoming("F"))
}

func TestFanOut(t *testing.T) {
	w := Chain(domain.NewWorkflow("t"), "",
		Action("S", "search").Build(),
	)
	w = w.Append(Action("X", "like").Build()).Append(Action("Y", "retweet").Build())
	w = FanOut(w, "S", "X", "Y")

	targets := w.Outgoing("S")
	require.Len(t, targets, 2)
	assert.Equal(t, "X", targets[0].Node)
	assert.Equal(t, "Y", targets[1].Node)
}

func TestLane(t *testing.T) {
	assert.Equal(t, domain.Position{250, 300}, Spine.At(0))
	assert.Equal(t, domain.Position{850, 300}, Spine.At(3))

	fan := Engagement.Offset(1, -50)
	assert.Equal(t, domain.Position{1250, 150}, fan.At(0))
	assert.Equal(t, domain.Position{1450, 450}, DM.At(2))
}
