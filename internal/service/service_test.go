package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/mykafka"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
	"github.com/Skotchmaster/shop_catalog/internal/testutil"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []mykafka.Event
	topics []string
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, _ string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	if ev, ok := event.(mykafka.Event); ok {
		p.events = append(p.events, ev)
	}
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type services struct {
	Auth    *AuthService
	Catalog *CatalogService
	Users   *UserService
	Items   *ItemService
	Events  *recordingPublisher
	F       testutil.Fixture
}

func newServices(t *testing.T) *services {
	t.Helper()
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb)
	r := repo.New(gdb)
	ev := &recordingPublisher{}

	return &services{
		Auth:    &AuthService{Repo: r, Secret: []byte("test-secret"), TTL: time.Hour, Events: ev},
		Catalog: &CatalogService{Repo: r},
		Users:   &UserService{Repo: r},
		Items:   &ItemService{Repo: r, Events: ev},
		Events:  ev,
		F:       f,
	}
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, apperr.KindOf(err), err.Error())
}
