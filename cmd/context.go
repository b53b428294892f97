// Copyright The Forgejo Authors.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"io"
	"os"
)

type key int

const (
	noExitKey key = iota + 1
	stdoutKey
	stderrKey
	stdinKey
)

func ContextSetNoExit(ctx context.Context, value bool) context.Context {
	return context.WithValue(ctx, noExitKey, value)
}

func ContextGetNoExit(ctx context.Context) bool {
	value, ok := ctx.Value(noExitKey).(bool)
	return ok && value
}

func ContextSetStderr(ctx context.Context, value io.Writer) context.Context {
	return context.WithValue(ctx, stderrKey, value)
}

func ContextGetStderr(ctx context.Context) io.Writer {
	value, ok := ctx.Value(stderrKey).(io.Writer)
	if !ok {
		return os.Stderr
	}
	return value
}

func ContextSetStdout(ctx context.Context, value io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey, value)
}

func ContextGetStdout(ctx context.Context) io.Writer {
	value, ok := ctx.Value(stdoutKey).(io.Writer)
	if !ok {
		return os.Stdout
	}
	return value
}

func ContextSetStdin(ctx context.Context, value io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey, value)
}

func ContextGetStdin(ctx context.Context) io.Reader {
	value, ok := ctx.Value(stdinKey).(io.Reader)
	if !ok {
		return os.Stdin
	}
	return value
}
