package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mwantia/textutil/log"
)

type fakeCommand struct {
	name string
	ran  []string
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "a fake command" }

func (f *fakeCommand) Run(ctx context.Context, env *Env, args []string) error {
	f.ran = args
	return nil
}

func newTestEnv(buf *bytes.Buffer) *Env {
	return &Env{
		Logger: log.New("test", log.WithTerminal(buf)),
		Stdout: buf,
	}
}

func TestDispatch(t *testing.T) {
	fake := &fakeCommand{name: "run"}
	r := NewRegistry(fake)

	var buf bytes.Buffer
	err := r.Dispatch(context.Background(), newTestEnv(&buf), []string{"run", "--fast", "x"})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(fake.ran) != 2 || fake.ran[0] != "--fast" || fake.ran[1] != "x" {
		t.Errorf("command got args %v", fake.ran)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	r := NewRegistry(&fakeCommand{name: "run"})

	var buf bytes.Buffer
	err := r.Dispatch(context.Background(), newTestEnv(&buf), []string{"nope"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(buf.String(), "Commands:") {
		t.Errorf("usage not printed: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "run") {
		t.Errorf("command listing missing: %q", buf.String())
	}
}

func TestDispatchNoArgs(t *testing.T) {
	r := NewRegistry(&fakeCommand{name: "run"})

	var buf bytes.Buffer
	if err := r.Dispatch(context.Background(), newTestEnv(&buf), nil); err == nil {
		t.Fatal("expected error when no command given")
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry(&fakeCommand{name: "zeta"}, &fakeCommand{name: "alpha"})
	names := r.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("Names = %v", names)
	}
}
