package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/ompkit/wikidoc/cmd/wikidoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "wikidoc")
	assert.Contains(t, stdout.String(), "serve")
	assert.Contains(t, stdout.String(), "search")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_SearchRequiresQuery(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"search"}, &stdout, &stderr)

	assert.Error(t, err)
}
