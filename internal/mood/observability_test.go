package mood

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver_WritesEvents(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(zerolog.New(&buf).Level(zerolog.DebugLevel))

	obs.OnDetect(DetectEvent{Kind: KindImage, Latency: time.Second, Mood: domain.MoodHappy})
	obs.OnDetect(DetectEvent{Kind: KindVoice, Err: context.Canceled})

	dec := json.NewDecoder(&buf)
	var first, second map[string]any
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "mood", first["component"])
	assert.Equal(t, "image", first["kind"])
	assert.Equal(t, "happy", first["mood"])
	assert.Equal(t, "debug", first["level"])

	assert.Equal(t, "voice", second["kind"])
	assert.Equal(t, "warn", second["level"])
	assert.Equal(t, "context canceled", second["error"])
}
