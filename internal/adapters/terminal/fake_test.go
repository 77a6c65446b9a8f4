package terminal

import (
	"context"
	"sync"
)

// sent is one SendText call recorded by fakeTerminal
type sent struct {
	Text    string
	NewLine bool
}

type fakeTerminal struct {
	mu      sync.Mutex
	name    string
	sent    []sent
	shows   int
	closed  bool
	sendErr error
}

func (f *fakeTerminal) Name() string { return f.name }

func (f *fakeTerminal) SendText(text string, addNewLine bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sent{text, addNewLine})
	return nil
}

func (f *fakeTerminal) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shows++
}

func (f *fakeTerminal) Close(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeTerminal) Sent() []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sent(nil), f.sent...)
}

// fakeFactory records every terminal it creates
type fakeFactory struct {
	created []*fakeTerminal
	err     error
}

func (f *fakeFactory) New(name string) (Terminal, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := &fakeTerminal{name: name}
	f.created = append(f.created, t)
	return t, nil
}
