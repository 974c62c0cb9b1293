package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glhost/internal/adapters/telemetry"
	"go.trai.ch/glhost/internal/core/domain"
)

func TestRecorder_RecordAndComplete(t *testing.T) {
	rec := telemetry.NewTapeRecorder()

	ctx, vertex := rec.Record(context.Background(), "cache /usr/lib")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)

	vertex.Log(domain.LogLevelInfo, "copying 4 libraries")
	vertex.Complete(nil)

	_, failed := rec.Record(context.Background(), "cache /opt/lib")
	failed.Complete(errors.New("patch failed"))

	_, hit := rec.Record(context.Background(), "cache /usr/lib64")
	hit.Cached()

	assert.NoError(t, rec.Close())
}
