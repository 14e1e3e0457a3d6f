package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCtx_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	got := Ctx(NewContext(context.Background(), p))
	assert.Same(t, p, got)

	got.Successf("added %s", "France")
	got.Printf("plain")
	assert.Contains(t, buf.String(), "added France")
	assert.Contains(t, buf.String(), "plain\n")
}

func TestCtx_DefaultsToStderr(t *testing.T) {
	assert.NotNil(t, Ctx(context.Background()))
}
