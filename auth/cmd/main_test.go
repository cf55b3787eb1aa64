package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishek622/moviereviews/auth/internal/controller/auth"
	authgateway "github.com/abhishek622/moviereviews/auth/internal/gateway/http"
	"github.com/abhishek622/moviereviews/auth/pkg/testutil"
	"github.com/abhishek622/moviereviews/internal/httputil"
	movietestutil "github.com/abhishek622/moviereviews/movie/pkg/testutil"
)

func TestRunAccountLifecycle(t *testing.T) {
	b := movietestutil.NewBackend(t)
	s := testutil.NewTestSession("")
	ctrl := auth.New(authgateway.New(movietestutil.NewTestClient(b)), s, nil)
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, run(ctx, ctrl, options{register: true, email: "me@example.com", password: "secret"}, &out))
	assert.False(t, s.IsAuthenticated())

	err := run(ctx, ctrl, options{login: true, email: "me@example.com", password: "wrong"}, &out)
	assert.EqualError(t, err, "Invalid email or password")

	require.NoError(t, run(ctx, ctrl, options{login: true, email: "me@example.com", password: "secret"}, &out))
	assert.True(t, s.IsAuthenticated())

	out.Reset()
	require.NoError(t, run(ctx, ctrl, options{whoami: true}, &out))
	assert.Equal(t, "me@example.com\n", out.String())

	require.NoError(t, run(ctx, ctrl, options{logout: true}, &out))
	assert.ErrorIs(t, run(ctx, ctrl, options{whoami: true}, &out), httputil.ErrUnauthenticated)
}

func TestRunRegisterTwice(t *testing.T) {
	b := movietestutil.NewBackend(t)
	b.AddUser("me@example.com", "secret")
	ctrl := auth.New(authgateway.New(movietestutil.NewTestClient(b)), testutil.NewTestSession(""), nil)

	err := run(context.Background(), ctrl, options{register: true, email: "me@example.com", password: "secret"}, &bytes.Buffer{})
	var reqErr *httputil.RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 409, reqErr.Status)
	assert.Equal(t, "Email already registered", reqErr.Message)
}
