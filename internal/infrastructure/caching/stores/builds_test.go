package stores

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(ttl time.Duration, max int) (*BuildsStore, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	bs := NewBuildsStore(ttl, max)
	bs.now = c.now
	return bs, c
}

func TestBuildsStore_PutGet(t *testing.T) {
	bs, _ := newTestStore(time.Hour, 10)
	id := bs.Put(&Build{ProjectID: "p", Files: []builder.GeneratedFile{builder.TextFile("index.html", "x")}})

	_, err := ulid.Parse(id)
	require.NoError(t, err)

	build, ok := bs.Get(id)
	require.True(t, ok)
	assert.Equal(t, "p", build.ProjectID)

	f, ok := build.File("index.html")
	require.True(t, ok)
	assert.Equal(t, "x", string(f.Content))
	_, ok = build.File("missing")
	assert.False(t, ok)

	_, ok = bs.Get("nope")
	assert.False(t, ok)
}

func TestBuildsStore_TTL(t *testing.T) {
	bs, c := newTestStore(time.Minute, 0)
	old := bs.Put(&Build{})
	c.t = c.t.Add(45 * time.Second)
	fresh := bs.Put(&Build{})
	c.t = c.t.Add(30 * time.Second)

	_, ok := bs.Get(old)
	assert.False(t, ok)
	_, ok = bs.Get(fresh)
	assert.True(t, ok)
	assert.Len(t, bs.List(), 1)

	assert.Equal(t, 1, bs.PurgeExpired())
	assert.Equal(t, 1, bs.Len())
	assert.Zero(t, bs.PurgeExpired())
}

func TestBuildsStore_Capacity(t *testing.T) {
	bs, _ := newTestStore(0, 2)
	first := bs.Put(&Build{ProjectID: "1"})
	bs.Put(&Build{ProjectID: "2"})
	bs.Put(&Build{ProjectID: "3"})

	assert.Equal(t, 2, bs.Len())
	_, ok := bs.Get(first)
	assert.False(t, ok)

	list := bs.List()
	require.Len(t, list, 2)
	assert.Equal(t, "3", list[0].ProjectID)
	assert.Equal(t, "2", list[1].ProjectID)
}
