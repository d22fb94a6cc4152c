package llm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/reflect-journal/internal/model"
)

type fakeCompletions struct {
	resp     *openai.ChatCompletion
	err      error
	captured openai.ChatCompletionNewParams
}

func (f *fakeCompletions) New(_ context.Context, params openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	f.captured = params
	return f.resp, f.err
}

func TestOpenAIClient_Complete(t *testing.T) {
	fake := &fakeCompletions{resp: &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "1. Inner Reflection Summary\nok"}}},
	}}
	c := &OpenAIClient{completions: fake, model: "test-model"}

	out, err := c.Complete(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "1. Inner Reflection Summary\nok", out)
	require.Equal(t, "test-model", string(fake.captured.Model))
	require.Len(t, fake.captured.Messages, 1)
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	c := &OpenAIClient{completions: &fakeCompletions{resp: &openai.ChatCompletion{}}, model: "m"}

	_, err := c.Complete(context.Background(), "hello")
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIClient_Error(t *testing.T) {
	boom := errors.New("connection refused")
	c := &OpenAIClient{completions: &fakeCompletions{err: boom}, model: "m"}

	_, err := c.Complete(context.Background(), "hello")
	require.ErrorIs(t, err, boom)
}

func TestStaticClient(t *testing.T) {
	out, err := StaticClient{Response: "fixed"}.Complete(context.Background(), "anything")
	require.NoError(t, err)
	require.Equal(t, "fixed", out)

	_, err = StaticClient{}.Complete(context.Background(), "anything")
	require.ErrorIs(t, err, ErrEmptyResponse)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = StaticClient{Response: "fixed"}.Complete(ctx, "anything")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	c, err := New(Config{APIKey: "k"})
	require.NoError(t, err)
	oc, ok := c.(*OpenAIClient)
	require.True(t, ok)
	require.Equal(t, DefaultTogetherModel, oc.model)

	c, err = New(Config{Provider: "OpenAI", APIKey: "k"})
	require.NoError(t, err)
	require.Equal(t, DefaultOpenAIModel, c.(*OpenAIClient).model)

	_, err = New(Config{Provider: ProviderTogether})
	require.Error(t, err, "remote provider without key")

	_, err = New(Config{Provider: "carrier-pigeon"})
	require.Error(t, err)

	c, err = New(Config{Provider: ProviderStatic, StaticResponse: "canned"})
	require.NoError(t, err)
	require.Equal(t, StaticClient{Response: "canned"}, c)
}

func TestNew_StaticFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resp.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o644))

	c, err := New(Config{Provider: ProviderStatic, StaticResponse: "@" + path})
	require.NoError(t, err)
	out, err := c.Complete(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "from file", out)

	_, err = New(Config{Provider: ProviderStatic, StaticResponse: "@" + path + ".missing"})
	require.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(model.Input{
		Journal:    "Slept poorly",
		Intention:  "Stay calm",
		Dream:      "Flying over a city",
		Priorities: "Work, rest, call mom",
	})

	for _, want := range []string{
		"Morning Journal: Slept poorly",
		"Intention: Stay calm",
		"Dream: Flying over a city",
		"Top 3 Priorities: Work, rest, call mom",
		"1. Inner Reflection Summary",
		"2. Dream Interpretation Summary",
		"3. Energy/Mindset Insight",
		"4. Suggested Day Strategy (time-aligned tasks)",
	} {
		require.Contains(t, p, want)
	}
	require.Less(t, strings.Index(p, "INPUT:"), strings.Index(p, "OUTPUT:"))
}

func TestBuildPrompt_NoEscaping(t *testing.T) {
	p := BuildPrompt(model.Input{Journal: "<b>tired</b> & \"sad\""})
	require.Contains(t, p, "Morning Journal: <b>tired</b> & \"sad\"")
}
